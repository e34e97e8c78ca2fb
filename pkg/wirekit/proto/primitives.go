package proto

import (
	"encoding/binary"
	"io"
)

// Wire primitives shared by the encoder and decoder: LEB128 varints,
// field keys, ZigZag and the fixed-width little-endian forms.

// maxVarintOctets bounds a LEB128 continuation at what a 64-bit value
// can need.
const maxVarintOctets = 10

// appendVarint writes v to w in LEB128 form: 7 data bits per octet,
// least significant group first, high bit set on all but the last
// octet. Returns the number of octets written.
func appendVarint(w io.Writer, v uint64) int {
	var tmp [maxVarintOctets]byte
	n := 0
	for v >= 0x80 {
		tmp[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	tmp[n] = byte(v)
	n++
	w.Write(tmp[:n])
	return n
}

// DecodeVarint reads a LEB128 value from the front of buf and reports
// the octets consumed. A continuation running past 10 octets is
// ErrIntegerOverflow; a buffer ending mid-continuation is
// ErrInputUnderflow.
func DecodeVarint(buf []byte) (uint64, int, error) {
	var value uint64
	for i := 0; ; i++ {
		if i == maxVarintOctets {
			return 0, 0, ErrIntegerOverflow
		}
		if i == len(buf) {
			return 0, 0, ErrInputUnderflow
		}

		b := buf[i]
		value |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}
}

// appendKey writes the field key (tag << 3 | wire type) after
// validating the tag range.
func appendKey(w io.Writer, tag uint32, typ Typ) (int, error) {
	if tag < TagMin || tag > TagMax {
		return 0, ErrInvalidTag
	}
	return appendVarint(w, uint64(tag)<<3|uint64(typ)), nil
}

// decodeKey reads a field key from the front of buf. The key must fit
// an unsigned 32-bit value, carry a known wire type and a tag of at
// least 1.
func decodeKey(buf []byte) (uint32, Typ, int, error) {
	key, n, err := DecodeVarint(buf)
	if err != nil {
		return 0, typUnknown, 0, err
	}
	if key > 1<<32-1 {
		return 0, typUnknown, 0, ErrInvalidInput
	}

	typ := Typ(key & 0x7)
	tag := uint32(key >> 3)
	if !typ.valid() {
		return 0, typUnknown, 0, ErrInvalidInput
	}
	if tag < TagMin {
		return 0, typUnknown, 0, ErrInvalidTag
	}

	return tag, typ, n, nil
}

// zigzag32 maps a signed value onto an unsigned one so that small
// magnitudes of either sign stay small on the wire: 0, -1, 1, -2, ...
// become 0, 1, 2, 3, ...
func zigzag32(v int32) uint64 {
	return uint64(uint32(v<<1) ^ uint32(v>>31))
}

func unzigzag32(v uint64) int32 {
	return int32(uint32(v)>>1) ^ -int32(uint32(v)&1)
}

func zigzag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func unzigzag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// appendFixed32 writes v in little-endian order, no prefix.
func appendFixed32(w io.Writer, v uint32) int {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.Write(tmp[:])
	return 4
}

func decodeFixed32(buf []byte) (uint32, int, error) {
	if len(buf) < 4 {
		return 0, 0, ErrInputUnderflow
	}
	return binary.LittleEndian.Uint32(buf), 4, nil
}

// appendFixed64 writes v in little-endian order, no prefix.
func appendFixed64(w io.Writer, v uint64) int {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.Write(tmp[:])
	return 8
}

func decodeFixed64(buf []byte) (uint64, int, error) {
	if len(buf) < 8 {
		return 0, 0, ErrInputUnderflow
	}
	return binary.LittleEndian.Uint64(buf), 8, nil
}
