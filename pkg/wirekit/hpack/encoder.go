package hpack

import "bytes"

// Encoder compresses header fields into HPACK representations. It owns
// the indexing tables for its half of the connection; whenever it emits
// an incremental-indexing representation it updates its own dynamic
// table so the peer decoder stays in lockstep.
type Encoder struct {
	table *indexTable
}

// NewEncoder creates an encoder whose dynamic table is limited to
// maxDynamicSize octets.
func NewEncoder(maxDynamicSize uint32) *Encoder {
	return &Encoder{table: newIndexTable(maxDynamicSize)}
}

// Encode appends the representation of one header field to dst.
//
// With BestFormat set, the tables are consulted first: a full match is
// emitted as an indexed field, a name match as an indexed-name literal.
// Otherwise the field is emitted as a literal. The representation
// variant follows WithIndexing / NeverIndexed, and HuffmanName /
// HuffmanValue select string coding independently of everything else.
func (e *Encoder) Encode(name, value string, flags uint8, dst *bytes.Buffer) error {
	if flags&BestFormat != 0 {
		index, full := e.table.find(name, value)
		switch {
		case full:
			return e.EncodeIndex(index, dst)
		case index > 0:
			return e.EncodeIndexedName(index, value, flags, dst)
		}
	}

	return e.EncodeLiteral(name, value, flags, dst)
}

// EncodeIndex appends a fully indexed field (RFC 7541 §6.1): a one-bit
// discriminator and a 7-bit-prefix index.
func (e *Encoder) EncodeIndex(index uint32, dst *bytes.Buffer) error {
	if _, ok := e.table.get(index); !ok {
		return ErrInvalidIndex
	}
	return encodeInteger(index, 0x80, 7, dst)
}

// EncodeIndexedName appends a literal field whose name is a table
// reference (RFC 7541 §6.2). The prefix and discriminator depend on the
// representation: 6-bit under WithIndexing, 4-bit otherwise, with the
// never-indexed discriminator when NeverIndexed is set.
func (e *Encoder) EncodeIndexedName(index uint32, value string, flags uint8, dst *bytes.Buffer) error {
	entry, ok := e.table.get(index)
	if !ok {
		return ErrInvalidIndex
	}

	var err error
	switch {
	case flags&WithIndexing != 0:
		err = encodeInteger(index, 0x40, 6, dst)
	case flags&NeverIndexed != 0:
		err = encodeInteger(index, 0x10, 4, dst)
	default:
		err = encodeInteger(index, 0x00, 4, dst)
	}
	if err != nil {
		return err
	}

	if err := encodeString(stringToBytes(value), flags&HuffmanValue != 0, dst); err != nil {
		return err
	}

	if flags&WithIndexing != 0 {
		e.table.add(entry.Name, value)
	}
	return nil
}

// EncodeLiteral appends a literal field carrying both name and value
// (RFC 7541 §6.2, index 0).
func (e *Encoder) EncodeLiteral(name, value string, flags uint8, dst *bytes.Buffer) error {
	switch {
	case flags&WithIndexing != 0:
		dst.WriteByte(0x40)
	case flags&NeverIndexed != 0:
		dst.WriteByte(0x10)
	default:
		dst.WriteByte(0x00)
	}

	if err := encodeString(stringToBytes(name), flags&HuffmanName != 0, dst); err != nil {
		return err
	}
	if err := encodeString(stringToBytes(value), flags&HuffmanValue != 0, dst); err != nil {
		return err
	}

	if flags&WithIndexing != 0 {
		e.table.add(name, value)
	}
	return nil
}

// UpdateMaxDynamicSize appends a dynamic table size update signal
// (RFC 7541 §6.3) and applies the new limit locally, evicting as
// needed.
func (e *Encoder) UpdateMaxDynamicSize(size uint32, dst *bytes.Buffer) error {
	if err := encodeInteger(size, 0x20, 5, dst); err != nil {
		return err
	}
	e.table.setMaxDynamicSize(size)
	return nil
}

// MaxDynamicSize returns the dynamic table's current size limit.
func (e *Encoder) MaxDynamicSize() uint32 {
	return e.table.dynamic.maxSize
}

// DynamicSize returns the dynamic table's current size in octets.
func (e *Encoder) DynamicSize() uint32 {
	return e.table.dynamic.size
}

// DynamicLen returns the number of dynamic table entries.
func (e *Encoder) DynamicLen() int {
	return e.table.dynamic.count
}
