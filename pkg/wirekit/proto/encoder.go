package proto

import (
	"bytes"
	"math"

	"github.com/valyala/bytebufferpool"
)

// Encoder emits proto3 fields in wire order. It is stateless; a single
// instance can serve any number of messages, one field at a time.
//
// Each method appends one keyed field for its logical type and returns
// the number of octets written. Slice methods emit the packed
// representation: one length-delimited field whose payload is the
// concatenated element encodings, in order, with no inner keys.
type Encoder struct{}

// NewEncoder creates a proto3 field encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// varintField appends a key and a varint value.
func (e *Encoder) varintField(tag uint32, v uint64, dst *bytes.Buffer) (int, error) {
	n, err := appendKey(dst, tag, TypVarint)
	if err != nil {
		return 0, err
	}
	return n + appendVarint(dst, v), nil
}

// bytesField appends a key, a varint length and the payload.
func (e *Encoder) bytesField(tag uint32, payload []byte, dst *bytes.Buffer) (int, error) {
	n, err := appendKey(dst, tag, TypLengthDelimited)
	if err != nil {
		return 0, err
	}
	n += appendVarint(dst, uint64(len(payload)))
	dst.Write(payload)
	return n + len(payload), nil
}

// packedField assembles a packed payload in a pooled scratch buffer and
// appends it as one length-delimited field.
func (e *Encoder) packedField(tag uint32, count int, each func(*bytebufferpool.ByteBuffer, int), dst *bytes.Buffer) (int, error) {
	payload := bytebufferpool.Get()
	defer bytebufferpool.Put(payload)

	for i := 0; i < count; i++ {
		each(payload, i)
	}
	return e.bytesField(tag, payload.B, dst)
}

// EncodeBool appends a bool field: a varint of 0 or 1.
func (e *Encoder) EncodeBool(tag uint32, v bool, dst *bytes.Buffer) (int, error) {
	var u uint64
	if v {
		u = 1
	}
	return e.varintField(tag, u, dst)
}

// EncodeInt32 appends an int32 field. Negative values are
// sign-extended to 64 bits first, which is why they always cost ten
// octets; sint32 is the compact alternative.
func (e *Encoder) EncodeInt32(tag uint32, v int32, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, uint64(int64(v)), dst)
}

// EncodeInt64 appends an int64 field.
func (e *Encoder) EncodeInt64(tag uint32, v int64, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, uint64(v), dst)
}

// EncodeUInt32 appends a uint32 field.
func (e *Encoder) EncodeUInt32(tag uint32, v uint32, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, uint64(v), dst)
}

// EncodeUInt64 appends a uint64 field.
func (e *Encoder) EncodeUInt64(tag uint32, v uint64, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, v, dst)
}

// EncodeSInt32 appends a sint32 field: ZigZag, then varint.
func (e *Encoder) EncodeSInt32(tag uint32, v int32, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, zigzag32(v), dst)
}

// EncodeSInt64 appends a sint64 field: ZigZag, then varint.
func (e *Encoder) EncodeSInt64(tag uint32, v int64, dst *bytes.Buffer) (int, error) {
	return e.varintField(tag, zigzag64(v), dst)
}

// EncodeFixed32 appends a fixed32 field: four octets, little-endian.
func (e *Encoder) EncodeFixed32(tag uint32, v uint32, dst *bytes.Buffer) (int, error) {
	n, err := appendKey(dst, tag, TypBit32)
	if err != nil {
		return 0, err
	}
	return n + appendFixed32(dst, v), nil
}

// EncodeFixed64 appends a fixed64 field: eight octets, little-endian.
func (e *Encoder) EncodeFixed64(tag uint32, v uint64, dst *bytes.Buffer) (int, error) {
	n, err := appendKey(dst, tag, TypBit64)
	if err != nil {
		return 0, err
	}
	return n + appendFixed64(dst, v), nil
}

// EncodeSFixed32 appends an sfixed32 field.
func (e *Encoder) EncodeSFixed32(tag uint32, v int32, dst *bytes.Buffer) (int, error) {
	return e.EncodeFixed32(tag, uint32(v), dst)
}

// EncodeSFixed64 appends an sfixed64 field.
func (e *Encoder) EncodeSFixed64(tag uint32, v int64, dst *bytes.Buffer) (int, error) {
	return e.EncodeFixed64(tag, uint64(v), dst)
}

// EncodeFloat appends a float field: IEEE-754 bits, little-endian.
func (e *Encoder) EncodeFloat(tag uint32, v float32, dst *bytes.Buffer) (int, error) {
	return e.EncodeFixed32(tag, math.Float32bits(v), dst)
}

// EncodeDouble appends a double field: IEEE-754 bits, little-endian.
func (e *Encoder) EncodeDouble(tag uint32, v float64, dst *bytes.Buffer) (int, error) {
	return e.EncodeFixed64(tag, math.Float64bits(v), dst)
}

// EncodeBytes appends a length-delimited bytes field.
func (e *Encoder) EncodeBytes(tag uint32, v []byte, dst *bytes.Buffer) (int, error) {
	return e.bytesField(tag, v, dst)
}

// EncodeString appends a length-delimited string field.
func (e *Encoder) EncodeString(tag uint32, v string, dst *bytes.Buffer) (int, error) {
	n, err := appendKey(dst, tag, TypLengthDelimited)
	if err != nil {
		return 0, err
	}
	n += appendVarint(dst, uint64(len(v)))
	dst.WriteString(v)
	return n + len(v), nil
}

// EncodeBoolSlice appends a packed repeated bool field.
func (e *Encoder) EncodeBoolSlice(tag uint32, v []bool, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		var u uint64
		if v[i] {
			u = 1
		}
		appendVarint(p, u)
	}, dst)
}

// EncodeInt32Slice appends a packed repeated int32 field.
func (e *Encoder) EncodeInt32Slice(tag uint32, v []int32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, uint64(int64(v[i])))
	}, dst)
}

// EncodeInt64Slice appends a packed repeated int64 field.
func (e *Encoder) EncodeInt64Slice(tag uint32, v []int64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, uint64(v[i]))
	}, dst)
}

// EncodeUInt32Slice appends a packed repeated uint32 field.
func (e *Encoder) EncodeUInt32Slice(tag uint32, v []uint32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, uint64(v[i]))
	}, dst)
}

// EncodeUInt64Slice appends a packed repeated uint64 field.
func (e *Encoder) EncodeUInt64Slice(tag uint32, v []uint64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, v[i])
	}, dst)
}

// EncodeSInt32Slice appends a packed repeated sint32 field.
func (e *Encoder) EncodeSInt32Slice(tag uint32, v []int32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, zigzag32(v[i]))
	}, dst)
}

// EncodeSInt64Slice appends a packed repeated sint64 field.
func (e *Encoder) EncodeSInt64Slice(tag uint32, v []int64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendVarint(p, zigzag64(v[i]))
	}, dst)
}

// EncodeFixed32Slice appends a packed repeated fixed32 field.
func (e *Encoder) EncodeFixed32Slice(tag uint32, v []uint32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed32(p, v[i])
	}, dst)
}

// EncodeFixed64Slice appends a packed repeated fixed64 field.
func (e *Encoder) EncodeFixed64Slice(tag uint32, v []uint64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed64(p, v[i])
	}, dst)
}

// EncodeSFixed32Slice appends a packed repeated sfixed32 field.
func (e *Encoder) EncodeSFixed32Slice(tag uint32, v []int32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed32(p, uint32(v[i]))
	}, dst)
}

// EncodeSFixed64Slice appends a packed repeated sfixed64 field.
func (e *Encoder) EncodeSFixed64Slice(tag uint32, v []int64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed64(p, uint64(v[i]))
	}, dst)
}

// EncodeFloatSlice appends a packed repeated float field.
func (e *Encoder) EncodeFloatSlice(tag uint32, v []float32, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed32(p, math.Float32bits(v[i]))
	}, dst)
}

// EncodeDoubleSlice appends a packed repeated double field.
func (e *Encoder) EncodeDoubleSlice(tag uint32, v []float64, dst *bytes.Buffer) (int, error) {
	return e.packedField(tag, len(v), func(p *bytebufferpool.ByteBuffer, i int) {
		appendFixed64(p, math.Float64bits(v[i]))
	}, dst)
}
