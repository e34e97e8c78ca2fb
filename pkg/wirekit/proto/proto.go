package proto

// Protocol Buffers wire format (proto3)
// https://developers.google.com/protocol-buffers/docs/encoding
//
// The package speaks the schemaless layer of proto3: keyed, typed,
// length-prefixed binary fields. The Encoder turns typed values into
// keyed fields; the Decoder extracts (tag, type, bytes) triples and
// leaves the typed interpretation to the projection methods on Field,
// since the wire alone cannot distinguish int32 from sint32 from bool.

// Typ is the 3-bit wire type carried in a field key.
type Typ uint8

const (
	TypVarint          Typ = 0
	TypBit64           Typ = 1
	TypLengthDelimited Typ = 2
	TypBit32           Typ = 5

	// typUnknown marks a decoder that is between fields, expecting a
	// key next. It never appears on the wire.
	typUnknown Typ = 0xff
)

// valid reports whether t is one of the wire types proto3 emits.
// Groups (3 and 4) are long gone and everything else is undefined.
func (t Typ) valid() bool {
	switch t {
	case TypVarint, TypBit64, TypLengthDelimited, TypBit32:
		return true
	}
	return false
}

// String returns the wire type's name as used by the protobuf docs.
func (t Typ) String() string {
	switch t {
	case TypVarint:
		return "VARINT"
	case TypBit64:
		return "I64"
	case TypLengthDelimited:
		return "LEN"
	case TypBit32:
		return "I32"
	default:
		return "UNKNOWN"
	}
}

// Field tags live in the upper bits of a key above the 3-bit wire type;
// tag 0 is reserved as invalid.
const (
	TagMin uint32 = 1
	TagMax uint32 = 1<<29 - 1
)

// Field is one decoded field: its tag, wire type and the raw value
// octets exactly as they appeared on the wire (key and length prefix
// excluded). Projection methods interpret Bytes as a logical type.
type Field struct {
	Tag   uint32
	Typ   Typ
	Bytes []byte
}
