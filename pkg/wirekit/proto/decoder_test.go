package proto

import (
	"bytes"
	"reflect"
	"testing"
)

// supportedWire is a message exercising every supported logical type,
// one field per tag in tag order.
var supportedWire = []byte{
	10, 3, 102, 111, 111, // 1: bytes "foo"
	16, 1, // 2: bool true
	26, 2, 0, 1, // 3: packed bools
	32, 1, // 4: int32 1
	42, 11, 156, 255, 255, 255, 255, 255, 255, 255, 255, 1, 100, // 5: packed int32s -100, 100
	48, 1, // 6: int64 1
	58, 11, 156, 255, 255, 255, 255, 255, 255, 255, 255, 1, 100, // 7: packed int64s
	64, 1, // 8: uint32 1
	74, 2, 1, 2, // 9: packed uint32s
	80, 1, // 10: uint64 1
	90, 2, 1, 2, // 11: packed uint64s
	101, 0, 0, 128, 63, // 12: float 1.0
	106, 8, 0, 0, 128, 63, 0, 0, 0, 64, // 13: packed floats 1.0, 2.0
	113, 0, 0, 0, 0, 0, 0, 240, 63, // 14: double 1.0
	122, 16, 0, 0, 0, 0, 0, 0, 240, 63, 0, 0, 0, 0, 0, 0, 0, 64, // 15: packed doubles
	130, 1, 3, 102, 111, 111, // 16: string "foo"
	136, 1, 19, // 17: sint32 -10
	146, 1, 2, 19, 20, // 18: packed sint32s -10, 10
	152, 1, 19, // 19: sint64 -10
	162, 1, 2, 19, 20, // 20: packed sint64s
	173, 1, 10, 0, 0, 0, // 21: fixed32 10
	178, 1, 8, 1, 0, 0, 0, 2, 0, 0, 0, // 22: packed fixed32s
	185, 1, 10, 0, 0, 0, 0, 0, 0, 0, // 23: fixed64 10
	194, 1, 16, 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, // 24: packed fixed64s
	205, 1, 246, 255, 255, 255, // 25: sfixed32 -10
	210, 1, 8, 246, 255, 255, 255, 10, 0, 0, 0, // 26: packed sfixed32s -10, 10
	217, 1, 246, 255, 255, 255, 255, 255, 255, 255, // 27: sfixed64 -10
	226, 1, 16, 246, 255, 255, 255, 255, 255, 255, 255, 10, 0, 0, 0, 0, 0, 0, 0, // 28: packed sfixed64s
}

// Test decoding a message covering every supported type, then project
// each field as its logical type.
func TestDecodeSupported(t *testing.T) {
	d := NewDecoder()

	buf := bytes.NewBuffer(append([]byte(nil), supportedWire...))
	var fields []Field
	consumed, err := d.Decode(buf, &fields)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if consumed != len(supportedWire) {
		t.Fatalf("consumed %d of %d octets", consumed, len(supportedWire))
	}
	if buf.Len() != 0 {
		t.Fatalf("%d octets left in buffer", buf.Len())
	}
	if len(fields) != 28 {
		t.Fatalf("decoded %d fields, want 28", len(fields))
	}

	for i, f := range fields {
		if f.Tag != uint32(i+1) {
			t.Fatalf("field %d has tag %d", i, f.Tag)
		}
	}

	check := func(tag uint32, got any, err error, want any) {
		t.Helper()
		if err != nil {
			t.Errorf("tag %d: projection error: %v", tag, err)
			return
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tag %d: projection = %v, want %v", tag, got, want)
		}
	}

	f := func(tag uint32) Field { return fields[tag-1] }

	if f(1).Typ != TypLengthDelimited || !bytes.Equal(f(1).Bytes, []byte("foo")) {
		t.Errorf("tag 1 = %+v", f(1))
	}
	v2, err := f(2).Bool()
	check(2, v2, err, true)
	v3, err := f(3).BoolSlice()
	check(3, v3, err, []bool{false, true})
	v4, err := f(4).Int32()
	check(4, v4, err, int32(1))
	v5, err := f(5).Int32Slice()
	check(5, v5, err, []int32{-100, 100})
	v6, err := f(6).Int64()
	check(6, v6, err, int64(1))
	v7, err := f(7).Int64Slice()
	check(7, v7, err, []int64{-100, 100})
	v8, err := f(8).UInt32()
	check(8, v8, err, uint32(1))
	v9, err := f(9).UInt32Slice()
	check(9, v9, err, []uint32{1, 2})
	v10, err := f(10).UInt64()
	check(10, v10, err, uint64(1))
	v11, err := f(11).UInt64Slice()
	check(11, v11, err, []uint64{1, 2})
	if f(12).Typ != TypBit32 {
		t.Errorf("tag 12 type = %v", f(12).Typ)
	}
	v12, err := f(12).Float()
	check(12, v12, err, float32(1.0))
	v13, err := f(13).FloatSlice()
	check(13, v13, err, []float32{1.0, 2.0})
	if f(14).Typ != TypBit64 {
		t.Errorf("tag 14 type = %v", f(14).Typ)
	}
	v14, err := f(14).Double()
	check(14, v14, err, 1.0)
	v15, err := f(15).DoubleSlice()
	check(15, v15, err, []float64{1.0, 2.0})
	v16, err := f(16).String()
	check(16, v16, err, "foo")
	v17, err := f(17).SInt32()
	check(17, v17, err, int32(-10))
	v18, err := f(18).SInt32Slice()
	check(18, v18, err, []int32{-10, 10})
	v19, err := f(19).SInt64()
	check(19, v19, err, int64(-10))
	v20, err := f(20).SInt64Slice()
	check(20, v20, err, []int64{-10, 10})
	v21, err := f(21).Fixed32()
	check(21, v21, err, uint32(10))
	v22, err := f(22).Fixed32Slice()
	check(22, v22, err, []uint32{1, 2})
	v23, err := f(23).Fixed64()
	check(23, v23, err, uint64(10))
	v24, err := f(24).Fixed64Slice()
	check(24, v24, err, []uint64{1, 2})
	v25, err := f(25).SFixed32()
	check(25, v25, err, int32(-10))
	v26, err := f(26).SFixed32Slice()
	check(26, v26, err, []int32{-10, 10})
	v27, err := f(27).SFixed64()
	check(27, v27, err, int64(-10))
	v28, err := f(28).SFixed64Slice()
	check(28, v28, err, []int64{-10, 10})
}

// Test the split-buffer scenario: a varint key arrives whole, its value
// in two pieces.
func TestDecodeSplitVarint(t *testing.T) {
	d := NewDecoder()
	var fields []Field
	buf := &bytes.Buffer{}

	buf.Write([]byte{0x08, 0x96})
	consumed, err := d.Decode(buf, &fields)
	if err != nil {
		t.Fatalf("first chunk: %v", err)
	}
	if consumed != 1 || len(fields) != 0 {
		t.Fatalf("first chunk: consumed=%d fields=%d, want key only", consumed, len(fields))
	}

	buf.Write([]byte{0x01})
	consumed, err = d.Decode(buf, &fields)
	if err != nil {
		t.Fatalf("second chunk: %v", err)
	}
	if consumed != 2 || len(fields) != 1 {
		t.Fatalf("second chunk: consumed=%d fields=%d", consumed, len(fields))
	}

	want := Field{Tag: 1, Typ: TypVarint, Bytes: []byte{0x96, 0x01}}
	if !reflect.DeepEqual(fields[0], want) {
		t.Fatalf("field = %+v, want %+v", fields[0], want)
	}
	if v, err := fields[0].Int32(); err != nil || v != 150 {
		t.Errorf("Int32() = (%d, %v), want 150", v, err)
	}
}

// Test streaming safety: any chunking of the wire yields the same
// fields as the whole buffer.
func TestDecodeChunked(t *testing.T) {
	var whole []Field
	d := NewDecoder()
	if _, err := d.Decode(bytes.NewBuffer(append([]byte(nil), supportedWire...)), &whole); err != nil {
		t.Fatal(err)
	}

	for _, chunk := range []int{1, 2, 3, 5, 7, 16} {
		d := NewDecoder()
		buf := &bytes.Buffer{}
		var got []Field

		for start := 0; start < len(supportedWire); start += chunk {
			end := start + chunk
			if end > len(supportedWire) {
				end = len(supportedWire)
			}
			buf.Write(supportedWire[start:end])
			if _, err := d.Decode(buf, &got); err != nil {
				t.Fatalf("chunk=%d at %d: %v", chunk, start, err)
			}
		}

		if !reflect.DeepEqual(got, whole) {
			t.Errorf("chunk=%d: fields diverge from whole-buffer decode", chunk)
		}
	}
}

// Test that decode errors leave the offending octets in the buffer.
func TestDecodeErrorKeepsBuffer(t *testing.T) {
	d := NewDecoder()
	var fields []Field

	// One good field, then a key with wire type 7.
	buf := bytes.NewBuffer([]byte{0x08, 0x01, 0x0f, 0xaa})
	consumed, err := d.Decode(buf, &fields)
	if err != ErrInvalidInput {
		t.Fatalf("Decode = %v, want ErrInvalidInput", err)
	}
	if consumed != 2 || len(fields) != 1 {
		t.Errorf("consumed=%d fields=%d, want the good field only", consumed, len(fields))
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x0f, 0xaa}) {
		t.Errorf("buffer = %x, want the bad key left in place", buf.Bytes())
	}

	// Tag zero.
	d = NewDecoder()
	buf = bytes.NewBuffer([]byte{0x00})
	if _, err := d.Decode(buf, &fields); err != ErrInvalidTag {
		t.Errorf("Decode(tag 0) = %v, want ErrInvalidTag", err)
	}
	if buf.Len() != 1 {
		t.Errorf("tag-0 key was consumed")
	}
}

// Test that an unterminated varint value past ten octets is rejected.
func TestDecodeValueOverflow(t *testing.T) {
	d := NewDecoder()
	var fields []Field

	wire := append([]byte{0x08}, bytes.Repeat([]byte{0x80}, 10)...)
	wire = append(wire, 0x01)
	buf := bytes.NewBuffer(wire)
	if _, err := d.Decode(buf, &fields); err != ErrIntegerOverflow {
		t.Errorf("Decode = %v, want ErrIntegerOverflow", err)
	}
}

// Test a length-delimited field spanning three calls: key, length and
// payload dribbling in.
func TestDecodeSplitLengthDelimited(t *testing.T) {
	d := NewDecoder()
	var fields []Field
	buf := &bytes.Buffer{}

	buf.WriteByte(0x0a)
	if consumed, err := d.Decode(buf, &fields); err != nil || consumed != 1 {
		t.Fatalf("key: (%d, %v)", consumed, err)
	}

	buf.WriteByte(0x05)
	if consumed, err := d.Decode(buf, &fields); err != nil || consumed != 1 {
		t.Fatalf("length: (%d, %v)", consumed, err)
	}

	buf.Write([]byte("hel"))
	if consumed, err := d.Decode(buf, &fields); err != nil || consumed != 0 {
		t.Fatalf("partial payload: (%d, %v)", consumed, err)
	}
	if len(fields) != 0 {
		t.Fatal("field emitted before payload completed")
	}

	buf.Write([]byte("lo"))
	if consumed, err := d.Decode(buf, &fields); err != nil || consumed != 5 {
		t.Fatalf("payload: (%d, %v)", consumed, err)
	}

	want := Field{Tag: 1, Typ: TypLengthDelimited, Bytes: []byte("hello")}
	if len(fields) != 1 || !reflect.DeepEqual(fields[0], want) {
		t.Fatalf("fields = %+v, want %+v", fields, want)
	}
}

func BenchmarkDecoderDecode(b *testing.B) {
	d := NewDecoder()
	fields := make([]Field, 0, 32)
	buf := &bytes.Buffer{}
	b.SetBytes(int64(len(supportedWire)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		fields = fields[:0]
		buf.Reset()
		buf.Write(supportedWire)
		if _, err := d.Decode(buf, &fields); err != nil {
			b.Fatal(err)
		}
	}
}
