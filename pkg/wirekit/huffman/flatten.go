package huffman

// Flattening the Huffman code into a translation matrix.
//
// The code table is a prefix code; a naive decoder walks one bit at a
// time through a binary tree. Flattening splits every code into
// speed-sized chunks and records, for each (state, chunk) pair, either
// the next state or the decoded symbol. The decoder then consumes a
// whole chunk per lookup.

// Transition is one cell of the decode matrix. Exactly one of Next and
// Sym is set on a reachable cell; -1 marks the unset half. Leftover is
// the number of chunk bits past the end of the symbol's code; the
// decoder returns them to its accumulator as the start of the next
// code.
type Transition struct {
	Next     int16
	Sym      int16
	Leftover uint8
}

// Flatten builds the decode matrix for the given code table and read
// width. State 0 is the initial state; every chunk of every code either
// walks to an allocated state or lands on the symbol. When a code does
// not fill its final chunk, all 2^leftover paddings of that chunk map
// to the same symbol.
func Flatten(table []Code, speed Speed) ([][]Transition, error) {
	if speed < OneBit || speed > FiveBits {
		return nil, ErrInvalidSpeed
	}

	s := int(speed)
	width := 1 << s

	matrix := [][]Transition{blankState(width)}

	for sym, code := range table {
		chunks := (int(code.Len) + s - 1) / s
		leftover := chunks*s - int(code.Len)
		padded := code.Bits << leftover

		// Walk the intermediate chunks, allocating states as needed.
		state := 0
		for i := 0; i < chunks-1; i++ {
			key := int(padded>>((chunks-i-1)*s)) & (width - 1)
			next := matrix[state][key].Next
			if next < 0 {
				matrix = append(matrix, blankState(width))
				next = int16(len(matrix) - 1)
				matrix[state][key].Next = next
			}
			state = int(next)
		}

		// The final chunk holds the symbol. Fill every padding variant.
		last := int(padded) & (width - 1)
		for v := 0; v < 1<<leftover; v++ {
			matrix[state][last+v].Sym = int16(sym)
			matrix[state][last+v].Leftover = uint8(leftover)
		}
	}

	return matrix, nil
}

func blankState(width int) []Transition {
	state := make([]Transition, width)
	for i := range state {
		state[i].Next = -1
		state[i].Sym = -1
	}
	return state
}

// decodeMatrices holds the flattened matrix for every supported speed,
// built once from EncodeTable. Indexed by speed-1.
var decodeMatrices [5][][]Transition

func init() {
	for s := OneBit; s <= FiveBits; s++ {
		matrix, err := Flatten(EncodeTable[:], s)
		if err != nil {
			panic(err)
		}
		decodeMatrices[s-1] = matrix
	}
}
