package hpack

import (
	"bytes"

	"github.com/yourusername/wirekit/pkg/wirekit/huffman"
)

// HPACK primitive codecs (RFC 7541 §5): prefix integers and
// length-delimited strings. Everything on the wire is built from these
// two.

// maxIntegerOctets caps a prefix integer at the first octet plus four
// continuation octets. That bounds decoded values near 2^28 and stops a
// malicious continuation from being read forever.
const maxIntegerOctets = 5

// encodeInteger appends value with an N-bit prefix (RFC 7541 §5.1).
// flags occupies the top 8-N bits of the first octet. Values that do
// not fit the prefix continue in 7-bit groups, least significant first,
// with the high bit marking continuation.
func encodeInteger(value uint32, flags byte, prefix uint8, dst *bytes.Buffer) error {
	if prefix < 1 || prefix > 8 {
		return ErrInvalidPrefix
	}

	max := uint32(1)<<prefix - 1
	if value < max {
		dst.WriteByte(flags | byte(value))
		return nil
	}

	dst.WriteByte(flags | byte(max))
	value -= max
	for value >= 0x80 {
		dst.WriteByte(byte(value) | 0x80)
		value >>= 7
	}
	dst.WriteByte(byte(value))
	return nil
}

// decodeInteger reads an N-bit-prefix integer from the front of buf and
// reports the octets consumed.
func decodeInteger(buf []byte, prefix uint8) (uint32, int, error) {
	if prefix < 1 || prefix > 8 {
		return 0, 0, ErrInvalidPrefix
	}
	if len(buf) == 0 {
		return 0, 0, ErrIntegerUnderflow
	}

	max := uint32(1)<<prefix - 1
	value := uint32(buf[0]) & max
	if value < max {
		return value, 1, nil
	}

	consumed := 1
	shift := uint(0)
	for {
		if consumed == maxIntegerOctets {
			return 0, 0, ErrIntegerOverflow
		}
		if consumed == len(buf) {
			return 0, 0, ErrIntegerUnderflow
		}

		b := buf[consumed]
		consumed++
		value += uint32(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			return value, consumed, nil
		}
	}
}

// encodeString appends a length-delimited string (RFC 7541 §5.2). The
// length is a 7-bit-prefix integer whose top bit flags Huffman coding
// of the payload.
func encodeString(src []byte, huff bool, dst *bytes.Buffer) error {
	if huff {
		if err := encodeInteger(uint32(huffman.EncodeLen(src)), 0x80, 7, dst); err != nil {
			return err
		}
		huffman.Encode(src, dst)
		return nil
	}

	if err := encodeInteger(uint32(len(src)), 0x00, 7, dst); err != nil {
		return err
	}
	dst.Write(src)
	return nil
}

// decodeString reads a length-delimited string from the front of buf
// into dst and reports the octets consumed. Huffman payloads are
// decoded with the given read width.
func decodeString(buf []byte, speed huffman.Speed, dst *bytes.Buffer) (int, error) {
	if len(buf) == 0 {
		return 0, ErrIntegerUnderflow
	}

	huff := buf[0]&0x80 != 0
	length, consumed, err := decodeInteger(buf, 7)
	if err != nil {
		return 0, err
	}
	if uint32(len(buf)-consumed) < length {
		return 0, ErrIntegerUnderflow
	}

	payload := buf[consumed : consumed+int(length)]
	if huff {
		if err := huffman.Decode(payload, dst, speed); err != nil {
			return 0, err
		}
	} else {
		dst.Write(payload)
	}
	return consumed + int(length), nil
}
