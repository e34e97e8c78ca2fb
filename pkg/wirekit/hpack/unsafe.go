package hpack

import "unsafe"

// stringToBytes converts a string to a byte slice with ZERO allocations.
//
// SAFETY REQUIREMENTS:
//  1. The returned []byte MUST NEVER BE MODIFIED (strings are immutable!)
//  2. The returned []byte must not outlive the source string
//  3. Use ONLY for read-only operations
//
// This is safe for HPACK encoding because the string codec only reads
// the slice while packing it onto the wire; nothing retains it.
//
//go:inline
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
