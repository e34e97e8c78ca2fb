package proto

import "bytes"

// Decoder extracts proto3 fields from a byte stream. It is resumable:
// a call drains buf into dst one fully-parsed field at a time, and when
// the buffer ends mid-key or mid-value the decoder simply stops,
// keeping the partial key and pending length across calls. Feeding the
// same stream in arbitrary chunks yields the same fields as feeding it
// whole.
//
// Octets are consumed from buf only for fully parsed pieces; on a hard
// error the offending octets are left in place.
type Decoder struct {
	tag    uint32
	typ    Typ    // typUnknown between fields
	ldLen  uint64 // payload length of the pending length-delimited field
	haveLd bool   // ldLen has been read, payload has not
}

// NewDecoder creates a proto3 field decoder.
func NewDecoder() *Decoder {
	return &Decoder{typ: typUnknown}
}

// Decode drains buf into dst as (tag, type, bytes) fields and returns
// the number of octets consumed. A short buffer is not an error: the
// decoder returns normally and picks up where it left off on the next
// call.
func (d *Decoder) Decode(buf *bytes.Buffer, dst *[]Field) (int, error) {
	total := 0
	for {
		var (
			n   int
			err error
		)

		switch d.typ {
		case typUnknown:
			n, err = d.decodeKey(buf)
		case TypVarint:
			n, err = d.extractVarint(buf, dst)
		case TypBit32:
			n, err = d.extractFixed(buf, 4, dst)
		case TypBit64:
			n, err = d.extractFixed(buf, 8, dst)
		case TypLengthDelimited:
			n, err = d.extractLd(buf, dst)
		}

		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		total += n
	}
}

// decodeKey reads the next field key. A short buffer consumes nothing.
func (d *Decoder) decodeKey(buf *bytes.Buffer) (int, error) {
	tag, typ, n, err := decodeKey(buf.Bytes())
	if err == ErrInputUnderflow {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	d.tag, d.typ = tag, typ
	buf.Next(n)
	return n, nil
}

// extractVarint consumes the octets of a varint value and emits the
// field.
func (d *Decoder) extractVarint(buf *bytes.Buffer, dst *[]Field) (int, error) {
	b := buf.Bytes()
	n := 0
	for {
		if n == maxVarintOctets {
			return 0, ErrIntegerOverflow
		}
		if n == len(b) {
			return 0, nil
		}
		if b[n]&0x80 == 0 {
			n++
			break
		}
		n++
	}

	d.emit(b[:n], dst)
	buf.Next(n)
	return n, nil
}

// extractFixed consumes exactly size octets and emits the field.
func (d *Decoder) extractFixed(buf *bytes.Buffer, size int, dst *[]Field) (int, error) {
	if buf.Len() < size {
		return 0, nil
	}

	d.emit(buf.Bytes()[:size], dst)
	buf.Next(size)
	return size, nil
}

// extractLd handles a length-delimited field in two steps: the length
// prefix, then the payload once enough octets arrived.
func (d *Decoder) extractLd(buf *bytes.Buffer, dst *[]Field) (int, error) {
	if !d.haveLd {
		length, n, err := DecodeVarint(buf.Bytes())
		if err == ErrInputUnderflow {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}

		d.ldLen = length
		d.haveLd = true
		buf.Next(n)
		return n, nil
	}

	if uint64(buf.Len()) < d.ldLen {
		return 0, nil
	}

	n := int(d.ldLen)
	d.emit(buf.Bytes()[:n], dst)
	buf.Next(n)
	return n, nil
}

// emit copies the value octets out of the buffer's window and resets
// the decoder for the next key.
func (d *Decoder) emit(value []byte, dst *[]Field) {
	raw := make([]byte, len(value))
	copy(raw, value)

	*dst = append(*dst, Field{Tag: d.tag, Typ: d.typ, Bytes: raw})
	d.tag = 0
	d.typ = typUnknown
	d.ldLen = 0
	d.haveLd = false
}
