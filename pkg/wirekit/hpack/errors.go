package hpack

import "errors"

var (
	ErrInvalidIndex          = errors.New("hpack: index out of table range")
	ErrInvalidPrefix         = errors.New("hpack: integer prefix must be between 1 and 8 bits")
	ErrIntegerUnderflow      = errors.New("hpack: buffer exhausted while decoding")
	ErrIntegerOverflow       = errors.New("hpack: integer exceeds the 5-octet limit")
	ErrInvalidMaxDynamicSize = errors.New("hpack: dynamic table size update exceeds the allowed maximum")
)
