package hpack

// HPACK - Header Compression for HTTP/2
// RFC 7541: https://tools.ietf.org/html/rfc7541
//
// HPACK compresses header fields through three mechanisms:
// 1. Static table (61 predefined entries)
// 2. Dynamic table (FIFO, size-bounded, kept in lockstep by both peers)
// 3. Huffman coding of string literals (optional, per string)
//
// Encoder and Decoder share one logical index space: static entries at
// 1-61, dynamic entries from 62 on, newest first.

// Encoder input and decoder output flags.
const (
	// HuffmanName Huffman-encodes the name of a literal field.
	HuffmanName uint8 = 0x1

	// HuffmanValue Huffman-encodes the value string.
	HuffmanValue uint8 = 0x2

	// WithIndexing selects the incremental-indexing representation;
	// both peers add the field to their dynamic tables. The decoder
	// sets it on fields it indexed.
	WithIndexing uint8 = 0x4

	// NeverIndexed marks a sensitive field that intermediaries must
	// not index either. The decoder sets it on such fields.
	NeverIndexed uint8 = 0x8

	// BestFormat lets the encoder downgrade a literal to an indexed or
	// indexed-name representation when the tables already cover it.
	BestFormat uint8 = 0x10
)

// HeaderField is one decoded or to-be-encoded header. Flags carries
// WithIndexing or NeverIndexed on decoder output.
type HeaderField struct {
	Name  string
	Value string
	Flags uint8
}

// size is the table footprint of an entry per RFC 7541 §4.1: name and
// value lengths plus 32 octets of overhead.
func (hf HeaderField) size() uint32 {
	return uint32(len(hf.Name) + len(hf.Value) + 32)
}
