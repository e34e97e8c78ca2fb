package hpack

import (
	"bytes"

	"github.com/yourusername/wirekit/pkg/wirekit/huffman"
)

// Decoder decompresses HPACK header blocks. It owns the indexing tables
// for its half of the connection and applies dynamic table size updates
// found in the stream, subject to the externally configured maximum.
type Decoder struct {
	table      *indexTable
	maxDynamic uint32 // ceiling for in-stream size updates
	speed      huffman.Speed

	strbuf bytes.Buffer // scratch for string literals, reused per field
}

// NewDecoder creates a decoder whose dynamic table is limited to
// maxDynamicSize octets. Huffman literals are decoded five bits at a
// time.
func NewDecoder(maxDynamicSize uint32) *Decoder {
	return &Decoder{
		table:      newIndexTable(maxDynamicSize),
		maxDynamic: maxDynamicSize,
		speed:      huffman.FiveBits,
	}
}

// SetMaxDynamicSize changes the externally imposed dynamic table limit,
// evicting entries as needed. In-stream size updates beyond this value
// are rejected.
func (d *Decoder) SetMaxDynamicSize(size uint32) {
	d.maxDynamic = size
	d.table.setMaxDynamicSize(size)
}

// MaxDynamicSize returns the externally imposed dynamic table limit.
func (d *Decoder) MaxDynamicSize() uint32 {
	return d.maxDynamic
}

// Decode decodes header fields from src until the buffer is exhausted,
// appending them to dst. Decoded fields carry WithIndexing or
// NeverIndexed flags when the wire representation did. The number of
// octets consumed is returned; on error it covers the fully decoded
// fields only.
func (d *Decoder) Decode(src []byte, dst *[]HeaderField) (int, error) {
	return d.decode(src, -1, dst)
}

// DecodeExact decodes exactly n header fields from src, appending them
// to dst, and reports the octets consumed. Size update signals are
// processed but do not count toward n. Trailing octets are left for a
// later call.
func (d *Decoder) DecodeExact(src []byte, n int, dst *[]HeaderField) (int, error) {
	return d.decode(src, n, dst)
}

func (d *Decoder) decode(src []byte, limit int, dst *[]HeaderField) (int, error) {
	pos := 0
	decoded := 0

	for pos < len(src) && (limit < 0 || decoded < limit) {
		var (
			hf       HeaderField
			consumed int
			err      error
		)

		switch b := src[pos]; {
		case b&0x80 != 0:
			// Indexed Header Field (RFC 7541 Section 6.1)
			hf, consumed, err = d.decodeIndexed(src[pos:])

		case b&0x40 != 0:
			// Literal with Incremental Indexing (RFC 7541 Section 6.2.1)
			hf, consumed, err = d.decodeLiteral(src[pos:], 6, WithIndexing)

		case b&0x20 != 0:
			// Dynamic Table Size Update (RFC 7541 Section 6.3)
			consumed, err = d.decodeSizeUpdate(src[pos:])
			if err != nil {
				return pos, err
			}
			pos += consumed
			continue

		case b&0x10 != 0:
			// Literal Never Indexed (RFC 7541 Section 6.2.3)
			hf, consumed, err = d.decodeLiteral(src[pos:], 4, NeverIndexed)

		default:
			// Literal without Indexing (RFC 7541 Section 6.2.2)
			hf, consumed, err = d.decodeLiteral(src[pos:], 4, 0)
		}

		if err != nil {
			return pos, err
		}

		pos += consumed
		decoded++
		*dst = append(*dst, hf)
	}

	if limit >= 0 && decoded < limit {
		return pos, ErrIntegerUnderflow
	}
	return pos, nil
}

// decodeIndexed decodes an indexed header field (RFC 7541 Section 6.1).
func (d *Decoder) decodeIndexed(buf []byte) (HeaderField, int, error) {
	index, consumed, err := decodeInteger(buf, 7)
	if err != nil {
		return HeaderField{}, 0, err
	}

	entry, ok := d.table.get(index)
	if !ok {
		return HeaderField{}, 0, ErrInvalidIndex
	}

	return HeaderField{Name: entry.Name, Value: entry.Value}, consumed, nil
}

// decodeLiteral decodes the three literal representations, which differ
// only in the index prefix width and in whether the field is added to
// the dynamic table.
func (d *Decoder) decodeLiteral(buf []byte, prefix uint8, flags uint8) (HeaderField, int, error) {
	nameIndex, consumed, err := decodeInteger(buf, prefix)
	if err != nil {
		return HeaderField{}, 0, err
	}

	var name string
	if nameIndex == 0 {
		name, consumed, err = d.readString(buf, consumed)
		if err != nil {
			return HeaderField{}, 0, err
		}
	} else {
		entry, ok := d.table.get(nameIndex)
		if !ok {
			return HeaderField{}, 0, ErrInvalidIndex
		}
		name = entry.Name
	}

	value, consumed, err := d.readString(buf, consumed)
	if err != nil {
		return HeaderField{}, 0, err
	}

	if flags&WithIndexing != 0 {
		d.table.add(name, value)
	}
	return HeaderField{Name: name, Value: value, Flags: flags}, consumed, nil
}

// decodeSizeUpdate applies a dynamic table size update signal
// (RFC 7541 Section 6.3).
func (d *Decoder) decodeSizeUpdate(buf []byte) (int, error) {
	size, consumed, err := decodeInteger(buf, 5)
	if err != nil {
		return 0, err
	}

	if size > d.maxDynamic {
		return 0, ErrInvalidMaxDynamicSize
	}
	d.table.setMaxDynamicSize(size)
	return consumed, nil
}

// readString decodes a string literal starting at buf[pos] and returns
// it with the new position.
func (d *Decoder) readString(buf []byte, pos int) (string, int, error) {
	d.strbuf.Reset()
	consumed, err := decodeString(buf[pos:], d.speed, &d.strbuf)
	if err != nil {
		return "", 0, err
	}
	return d.strbuf.String(), pos + consumed, nil
}
