// Command hufftab regenerates the Go source for the Huffman code table
// and its flattened decode matrices from the RFC 7541 Appendix B table
// text.
//
// Usage:
//
//	hufftab -in assets/hpack-huffman.txt -table > table.go
//	hufftab -in assets/hpack-huffman.txt -speed 4
//
// The output is meant to be redirected into a source file; the codec
// itself never reads the text file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/valyala/bytebufferpool"
	"github.com/yourusername/wirekit/pkg/wirekit/huffman"
)

func main() {
	in := flag.String("in", "assets/hpack-huffman.txt", "path to the Appendix B table text")
	emitTable := flag.Bool("table", false, "print the code table as Go source")
	speed := flag.Int("speed", 0, "print the decode matrix for this read width (1-5)")
	flag.Parse()

	if !*emitTable && *speed == 0 {
		fmt.Fprintln(os.Stderr, "hufftab: nothing to do; pass -table or -speed N")
		os.Exit(2)
	}

	text, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hufftab:", err)
		os.Exit(1)
	}

	table, err := huffman.ParseTable(string(text))
	if err != nil {
		fmt.Fprintln(os.Stderr, "hufftab:", err)
		os.Exit(1)
	}
	if len(table) != 257 {
		fmt.Fprintf(os.Stderr, "hufftab: parsed %d codes, want 257\n", len(table))
		os.Exit(1)
	}

	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	if *emitTable {
		printTable(out, table)
	}
	if *speed != 0 {
		matrix, err := huffman.Flatten(table, huffman.Speed(*speed))
		if err != nil {
			fmt.Fprintln(os.Stderr, "hufftab:", err)
			os.Exit(1)
		}
		printMatrix(out, matrix, *speed)
	}

	os.Stdout.Write(out.B)
}

func printTable(out *bytebufferpool.ByteBuffer, table []huffman.Code) {
	fmt.Fprintf(out, "var EncodeTable = [%d]Code{\n", len(table))
	for _, code := range table {
		fmt.Fprintf(out, "\t{Len: %d, Bits: %#x},\n", code.Len, code.Bits)
	}
	fmt.Fprintf(out, "}\n")
}

func printMatrix(out *bytebufferpool.ByteBuffer, matrix [][]huffman.Transition, speed int) {
	fmt.Fprintf(out, "// decodeMatrix%d reads %d bit(s) per transition.\n", speed, speed)
	fmt.Fprintf(out, "var decodeMatrix%d = [][]Transition{\n", speed)
	for id, state := range matrix {
		fmt.Fprintf(out, "\t{ // %d\n", id)
		for _, cell := range state {
			fmt.Fprintf(out, "\t\t{Next: %d, Sym: %d, Leftover: %d},\n", cell.Next, cell.Sym, cell.Leftover)
		}
		fmt.Fprintf(out, "\t},\n")
	}
	fmt.Fprintf(out, "}\n")
}
