package huffman

import (
	"bytes"
	"testing"
)

var speeds = []Speed{OneBit, TwoBits, ThreeBits, FourBits, FiveBits}

// Test Huffman encoding against the RFC 7541 Appendix C vectors.
func TestEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected []byte
	}{
		{"", nil},
		{"www.example.com", []byte{
			0xf1, 0xe3, 0xc2, 0xe5, 0xf2, 0x3a, 0x6b, 0xa0, 0xab, 0x90, 0xf4, 0xff,
		}},
		{"no-cache", []byte{0xa8, 0xeb, 0x10, 0x64, 0x9c, 0xbf}},
		{"custom-key", []byte{0x25, 0xa8, 0x49, 0xe9, 0x5b, 0xa9, 0x7d, 0x7f}},
		{"custom-value", []byte{0x25, 0xa8, 0x49, 0xe9, 0x5b, 0xb8, 0xe8, 0xb4, 0xbf}},
		{"302", []byte{0x64, 0x02}},
		{"private", []byte{0xae, 0xc3, 0x77, 0x1a, 0x4b}},
		{"Hello world!", []byte{0xc6, 0x5a, 0x28, 0x3a, 0x9e, 0x0f, 0x65, 0x12, 0x7f, 0x1f}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		Encode([]byte(tt.input), &buf)
		if !bytes.Equal(buf.Bytes(), tt.expected) {
			t.Errorf("Encode(%q) = %x, want %x", tt.input, buf.Bytes(), tt.expected)
		}
		if got := EncodeLen([]byte(tt.input)); got != len(tt.expected) {
			t.Errorf("EncodeLen(%q) = %d, want %d", tt.input, got, len(tt.expected))
		}
	}
}

// Test decoding the known vectors at every read width.
func TestDecode(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
	}{
		{nil, ""},
		{[]byte{0xc6, 0x5a, 0x28, 0x3a, 0x9e, 0x0f, 0x65, 0x12, 0x7f, 0x1f}, "Hello world!"},
		{[]byte{0xf1, 0xe3, 0xc2, 0xe5, 0xf2, 0x3a, 0x6b, 0xa0, 0xab, 0x90, 0xf4, 0xff}, "www.example.com"},
		{[]byte{0xa8, 0xeb, 0x10, 0x64, 0x9c, 0xbf}, "no-cache"},
		{[]byte{0x64, 0x02}, "302"},
	}

	for _, tt := range tests {
		for _, speed := range speeds {
			var buf bytes.Buffer
			if err := Decode(tt.input, &buf, speed); err != nil {
				t.Errorf("Decode(%x, speed=%d) error: %v", tt.input, speed, err)
				continue
			}
			if buf.String() != tt.expected {
				t.Errorf("Decode(%x, speed=%d) = %q, want %q", tt.input, speed, buf.String(), tt.expected)
			}
		}
	}
}

// Test that every byte string survives an encode/decode roundtrip at
// every read width.
func TestRoundtrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("zz"),
		[]byte("www.example.com"),
		[]byte("Mon, 21 Oct 2013 20:13:21 GMT"),
		[]byte{0x00},
		[]byte{0xff, 0xfe, 0x01},
		allBytes(),
	}

	for _, input := range inputs {
		var enc bytes.Buffer
		Encode(input, &enc)

		for _, speed := range speeds {
			var dec bytes.Buffer
			if err := Decode(enc.Bytes(), &dec, speed); err != nil {
				t.Errorf("Decode(Encode(%x), speed=%d) error: %v", input, speed, err)
				continue
			}
			if !bytes.Equal(dec.Bytes(), input) {
				t.Errorf("roundtrip(%x, speed=%d) = %x", input, speed, dec.Bytes())
			}
		}
	}
}

func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// Test that malformed streams are rejected at every read width.
func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		// 8 one-bits: padding longer than 7 bits.
		{"padding-only byte", []byte{0xff}},
		// '0' followed by three zero bits: padding must be ones.
		{"zero padding", []byte{0x00}},
		// 30 one-bits land on the EOS symbol.
		{"EOS in stream", []byte{0xff, 0xff, 0xff, 0xff}},
		// 'a' (00011) then 11 ones: more than 7 bits of padding.
		{"long padding", []byte{0x1f, 0xff}},
	}

	for _, tt := range tests {
		for _, speed := range speeds {
			var buf bytes.Buffer
			if err := Decode(tt.input, &buf, speed); err != ErrInvalidInput {
				t.Errorf("%s: Decode(%x, speed=%d) = %v, want ErrInvalidInput",
					tt.name, tt.input, speed, err)
			}
		}
	}
}

// Test that out-of-range read widths are rejected.
func TestDecodeInvalidSpeed(t *testing.T) {
	var buf bytes.Buffer
	for _, speed := range []Speed{0, 6, 8} {
		if err := Decode([]byte{0x64, 0x02}, &buf, speed); err != ErrInvalidSpeed {
			t.Errorf("Decode(speed=%d) = %v, want ErrInvalidSpeed", speed, err)
		}
	}
}

// Test the prefix property: no code is a prefix of another.
func TestPrefixClosure(t *testing.T) {
	for i, a := range EncodeTable {
		for j, b := range EncodeTable {
			if i == j || a.Len > b.Len {
				continue
			}
			if b.Bits>>(b.Len-a.Len) == a.Bits {
				t.Fatalf("code %d (%d bits) is a prefix of code %d (%d bits)", i, a.Len, j, b.Len)
			}
		}
	}
}

// Test table shape: 257 codes, lengths within 5..30, EOS all ones.
func TestTableShape(t *testing.T) {
	for i, code := range EncodeTable {
		if code.Len < 5 || code.Len > 30 {
			t.Errorf("code %d has length %d, want 5..30", i, code.Len)
		}
	}
	if eosCode := EncodeTable[256]; eosCode.Len != 30 || eosCode.Bits != 0x3fffffff {
		t.Errorf("EOS code = %+v, want 30 one-bits", eosCode)
	}
}
