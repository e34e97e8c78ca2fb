package proto

import "errors"

var (
	ErrInvalidInput    = errors.New("proto: malformed field data")
	ErrInvalidTag      = errors.New("proto: field tag out of range")
	ErrIntegerOverflow = errors.New("proto: varint exceeds the 10-octet limit")

	// ErrInputUnderflow means the buffer ended mid-value. The streaming
	// Decoder absorbs it and waits for more input; it surfaces only
	// from direct primitive and projection calls.
	ErrInputUnderflow = errors.New("proto: buffer exhausted while decoding")
)
