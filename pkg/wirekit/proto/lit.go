package proto

import "math"

// Typed projections over raw field bytes.
//
// The wire does not say whether a varint is an int32, a sint32 or a
// bool, so Decode hands out raw octets and the caller picks the
// projection matching the schema it knows. Scalar projections parse
// exactly one value; Slice projections parse a packed payload of
// concatenated elements and also accept a single unpacked element.

// decodeTail rejects projections that leave unparsed octets behind.
func decodeTail(n, total int) error {
	if n != total {
		return ErrInvalidInput
	}
	return nil
}

// Bool projects a varint field as a bool: zero is false, anything else
// is true.
func (f Field) Bool() (bool, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return false, err
	}
	return v != 0, decodeTail(n, len(f.Bytes))
}

// Int32 projects a varint field as an int32.
func (f Field) Int32() (int32, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return int32(v), decodeTail(n, len(f.Bytes))
}

// Int64 projects a varint field as an int64.
func (f Field) Int64() (int64, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return int64(v), decodeTail(n, len(f.Bytes))
}

// UInt32 projects a varint field as a uint32.
func (f Field) UInt32() (uint32, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return uint32(v), decodeTail(n, len(f.Bytes))
}

// UInt64 projects a varint field as a uint64.
func (f Field) UInt64() (uint64, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return v, decodeTail(n, len(f.Bytes))
}

// SInt32 projects a ZigZag varint field as an int32.
func (f Field) SInt32() (int32, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return unzigzag32(v), decodeTail(n, len(f.Bytes))
}

// SInt64 projects a ZigZag varint field as an int64.
func (f Field) SInt64() (int64, error) {
	v, n, err := DecodeVarint(f.Bytes)
	if err != nil {
		return 0, err
	}
	return unzigzag64(v), decodeTail(n, len(f.Bytes))
}

// Fixed32 projects a 32-bit field as a uint32.
func (f Field) Fixed32() (uint32, error) {
	v, n, err := decodeFixed32(f.Bytes)
	if err != nil {
		return 0, err
	}
	return v, decodeTail(n, len(f.Bytes))
}

// Fixed64 projects a 64-bit field as a uint64.
func (f Field) Fixed64() (uint64, error) {
	v, n, err := decodeFixed64(f.Bytes)
	if err != nil {
		return 0, err
	}
	return v, decodeTail(n, len(f.Bytes))
}

// SFixed32 projects a 32-bit field as an int32.
func (f Field) SFixed32() (int32, error) {
	v, err := f.Fixed32()
	return int32(v), err
}

// SFixed64 projects a 64-bit field as an int64.
func (f Field) SFixed64() (int64, error) {
	v, err := f.Fixed64()
	return int64(v), err
}

// Float projects a 32-bit field as a float32.
func (f Field) Float() (float32, error) {
	v, err := f.Fixed32()
	return math.Float32frombits(v), err
}

// Double projects a 64-bit field as a float64.
func (f Field) Double() (float64, error) {
	v, err := f.Fixed64()
	return math.Float64frombits(v), err
}

// String projects a length-delimited field as a string.
func (f Field) String() (string, error) {
	return string(f.Bytes), nil
}

// BoolSlice projects a packed payload as bools.
func (f Field) BoolSlice() ([]bool, error) {
	var out []bool
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v != 0)
		buf = buf[n:]
	}
	return out, nil
}

// Int32Slice projects a packed payload as int32s.
func (f Field) Int32Slice() ([]int32, error) {
	var out []int32
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, int32(v))
		buf = buf[n:]
	}
	return out, nil
}

// Int64Slice projects a packed payload as int64s.
func (f Field) Int64Slice() ([]int64, error) {
	var out []int64
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, int64(v))
		buf = buf[n:]
	}
	return out, nil
}

// UInt32Slice projects a packed payload as uint32s.
func (f Field) UInt32Slice() ([]uint32, error) {
	var out []uint32
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, uint32(v))
		buf = buf[n:]
	}
	return out, nil
}

// UInt64Slice projects a packed payload as uint64s.
func (f Field) UInt64Slice() ([]uint64, error) {
	var out []uint64
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		buf = buf[n:]
	}
	return out, nil
}

// SInt32Slice projects a packed ZigZag payload as int32s.
func (f Field) SInt32Slice() ([]int32, error) {
	var out []int32
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, unzigzag32(v))
		buf = buf[n:]
	}
	return out, nil
}

// SInt64Slice projects a packed ZigZag payload as int64s.
func (f Field) SInt64Slice() ([]int64, error) {
	var out []int64
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := DecodeVarint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, unzigzag64(v))
		buf = buf[n:]
	}
	return out, nil
}

// Fixed32Slice projects a packed payload as uint32s.
func (f Field) Fixed32Slice() ([]uint32, error) {
	var out []uint32
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := decodeFixed32(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		buf = buf[n:]
	}
	return out, nil
}

// Fixed64Slice projects a packed payload as uint64s.
func (f Field) Fixed64Slice() ([]uint64, error) {
	var out []uint64
	for buf := f.Bytes; len(buf) > 0; {
		v, n, err := decodeFixed64(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		buf = buf[n:]
	}
	return out, nil
}

// SFixed32Slice projects a packed payload as int32s.
func (f Field) SFixed32Slice() ([]int32, error) {
	vs, err := f.Fixed32Slice()
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = int32(v)
	}
	return out, nil
}

// SFixed64Slice projects a packed payload as int64s.
func (f Field) SFixed64Slice() ([]int64, error) {
	vs, err := f.Fixed64Slice()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out, nil
}

// FloatSlice projects a packed payload as float32s.
func (f Field) FloatSlice() ([]float32, error) {
	vs, err := f.Fixed32Slice()
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(vs))
	for i, v := range vs {
		out[i] = math.Float32frombits(v)
	}
	return out, nil
}

// DoubleSlice projects a packed payload as float64s.
func (f Field) DoubleSlice() ([]float64, error) {
	vs, err := f.Fixed64Slice()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Float64frombits(v)
	}
	return out, nil
}
