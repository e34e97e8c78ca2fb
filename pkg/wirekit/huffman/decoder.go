package huffman

import "bytes"

// Decode decodes a Huffman-encoded src into dst, reading speed bits per
// matrix lookup.
//
// The decoder keeps an accumulator of unconsumed bits. While at least
// one chunk is buffered, the top chunk keys into the matrix: a symbol
// cell emits the byte, resets the walk to state 0 and returns the
// chunk's leftover bits to the accumulator; a state cell consumes the
// whole chunk. At end of input the accumulator is padded on the right
// with one-bits to a chunk boundary and one more step is attempted.
//
// A stream is rejected if a lookup lands on a dead cell, if it decodes
// the EOS symbol, if a symbol's code would extend into the decoder's
// own padding, or if the bits past the last complete symbol are not a
// valid encoder padding: all ones, at most 7 of them (RFC 7541 §5.2).
func Decode(src []byte, dst *bytes.Buffer, speed Speed) error {
	if speed < OneBit || speed > FiveBits {
		return ErrInvalidSpeed
	}

	matrix := decodeMatrices[speed-1]
	s := uint8(speed)
	mask := uint32(1)<<s - 1

	var (
		bits     uint32 // accumulator, oldest bits on top
		nbits    uint8  // buffered bit count
		state    int16  // current matrix state
		tail     uint8  // bits consumed since the last symbol
		tailOnes = true // whether those bits were all ones
	)

	step := func(pad uint8) error {
		key := bits >> (nbits - s) & mask
		cell := matrix[state][key]

		switch {
		case cell.Sym >= 0:
			if cell.Sym == eos {
				return ErrInvalidInput
			}
			// A code ending inside the padding would be built from
			// bits the input never contained.
			if cell.Leftover < pad {
				return ErrInvalidInput
			}
			dst.WriteByte(byte(cell.Sym))
			nbits -= s - cell.Leftover
			bits &= 1<<nbits - 1
			state = 0
			tail = 0
			tailOnes = true
		case cell.Next >= 0:
			nbits -= s
			bits &= 1<<nbits - 1
			state = cell.Next
			tail += s
			tailOnes = tailOnes && key == mask
		default:
			return ErrInvalidInput
		}
		return nil
	}

	for _, b := range src {
		bits = bits<<8 | uint32(b)
		nbits += 8
		for nbits >= s {
			if err := step(0); err != nil {
				return err
			}
		}
	}

	// Fewer than s bits remain. Pad them on the right with one-bits to
	// a full chunk and run the final step.
	var pad uint8
	if nbits > 0 {
		pad = s - nbits
		bits = bits<<pad | (1<<pad - 1)
		nbits = s
		if err := step(pad); err != nil {
			return err
		}
	}

	// Whatever follows the final symbol must be an EOS prefix: all
	// ones, and fewer than 8 of them once the decoder's own padding is
	// discounted.
	if !tailOnes || bits != 1<<nbits-1 {
		return ErrInvalidInput
	}
	if real := int(tail) + int(nbits) - int(pad); real > 7 {
		return ErrInvalidInput
	}
	return nil
}
