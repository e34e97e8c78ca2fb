package huffman

// The entries are the codes that cmd/hufftab -table prints from
// assets/hpack-huffman.txt; TestParseTableAsset checks that they agree.

// EncodeTable is the canonical HPACK Huffman code from RFC 7541
// Appendix B. Entries 0-255 cover the byte alphabet; entry 256 is the
// EOS symbol, whose 30-bit all-ones code is never emitted as data and
// only supplies the 1-bit padding pattern.
var EncodeTable = [257]Code{
	{Len: 13, Bits: 0x1ff8},     // 0
	{Len: 23, Bits: 0x7fffd8},   // 1
	{Len: 28, Bits: 0xfffffe2},  // 2
	{Len: 28, Bits: 0xfffffe3},  // 3
	{Len: 28, Bits: 0xfffffe4},  // 4
	{Len: 28, Bits: 0xfffffe5},  // 5
	{Len: 28, Bits: 0xfffffe6},  // 6
	{Len: 28, Bits: 0xfffffe7},  // 7
	{Len: 28, Bits: 0xfffffe8},  // 8
	{Len: 24, Bits: 0xffffea},   // 9
	{Len: 30, Bits: 0x3ffffffc}, // 10
	{Len: 28, Bits: 0xfffffe9},  // 11
	{Len: 28, Bits: 0xfffffea},  // 12
	{Len: 30, Bits: 0x3ffffffd}, // 13
	{Len: 28, Bits: 0xfffffeb},  // 14
	{Len: 28, Bits: 0xfffffec},  // 15
	{Len: 28, Bits: 0xfffffed},  // 16
	{Len: 28, Bits: 0xfffffee},  // 17
	{Len: 28, Bits: 0xfffffef},  // 18
	{Len: 28, Bits: 0xffffff0},  // 19
	{Len: 28, Bits: 0xffffff1},  // 20
	{Len: 28, Bits: 0xffffff2},  // 21
	{Len: 30, Bits: 0x3ffffffe}, // 22
	{Len: 28, Bits: 0xffffff3},  // 23
	{Len: 28, Bits: 0xffffff4},  // 24
	{Len: 28, Bits: 0xffffff5},  // 25
	{Len: 28, Bits: 0xffffff6},  // 26
	{Len: 28, Bits: 0xffffff7},  // 27
	{Len: 28, Bits: 0xffffff8},  // 28
	{Len: 28, Bits: 0xffffff9},  // 29
	{Len: 28, Bits: 0xffffffa},  // 30
	{Len: 28, Bits: 0xffffffb},  // 31
	{Len: 6, Bits: 0x14},        // ' '
	{Len: 10, Bits: 0x3f8},      // '!'
	{Len: 10, Bits: 0x3f9},      // '"'
	{Len: 12, Bits: 0xffa},      // '#'
	{Len: 13, Bits: 0x1ff9},     // '$'
	{Len: 6, Bits: 0x15},        // '%'
	{Len: 8, Bits: 0xf8},        // '&'
	{Len: 11, Bits: 0x7fa},      // '\''
	{Len: 10, Bits: 0x3fa},      // '('
	{Len: 10, Bits: 0x3fb},      // ')'
	{Len: 8, Bits: 0xf9},        // '*'
	{Len: 11, Bits: 0x7fb},      // '+'
	{Len: 8, Bits: 0xfa},        // ','
	{Len: 6, Bits: 0x16},        // '-'
	{Len: 6, Bits: 0x17},        // '.'
	{Len: 6, Bits: 0x18},        // '/'
	{Len: 5, Bits: 0x0},         // '0'
	{Len: 5, Bits: 0x1},         // '1'
	{Len: 5, Bits: 0x2},         // '2'
	{Len: 6, Bits: 0x19},        // '3'
	{Len: 6, Bits: 0x1a},        // '4'
	{Len: 6, Bits: 0x1b},        // '5'
	{Len: 6, Bits: 0x1c},        // '6'
	{Len: 6, Bits: 0x1d},        // '7'
	{Len: 6, Bits: 0x1e},        // '8'
	{Len: 6, Bits: 0x1f},        // '9'
	{Len: 7, Bits: 0x5c},        // ':'
	{Len: 8, Bits: 0xfb},        // ';'
	{Len: 15, Bits: 0x7ffc},     // '<'
	{Len: 6, Bits: 0x20},        // '='
	{Len: 12, Bits: 0xffb},      // '>'
	{Len: 10, Bits: 0x3fc},      // '?'
	{Len: 13, Bits: 0x1ffa},     // '@'
	{Len: 6, Bits: 0x21},        // 'A'
	{Len: 7, Bits: 0x5d},        // 'B'
	{Len: 7, Bits: 0x5e},        // 'C'
	{Len: 7, Bits: 0x5f},        // 'D'
	{Len: 7, Bits: 0x60},        // 'E'
	{Len: 7, Bits: 0x61},        // 'F'
	{Len: 7, Bits: 0x62},        // 'G'
	{Len: 7, Bits: 0x63},        // 'H'
	{Len: 7, Bits: 0x64},        // 'I'
	{Len: 7, Bits: 0x65},        // 'J'
	{Len: 7, Bits: 0x66},        // 'K'
	{Len: 7, Bits: 0x67},        // 'L'
	{Len: 7, Bits: 0x68},        // 'M'
	{Len: 7, Bits: 0x69},        // 'N'
	{Len: 7, Bits: 0x6a},        // 'O'
	{Len: 7, Bits: 0x6b},        // 'P'
	{Len: 7, Bits: 0x6c},        // 'Q'
	{Len: 7, Bits: 0x6d},        // 'R'
	{Len: 7, Bits: 0x6e},        // 'S'
	{Len: 7, Bits: 0x6f},        // 'T'
	{Len: 7, Bits: 0x70},        // 'U'
	{Len: 7, Bits: 0x71},        // 'V'
	{Len: 7, Bits: 0x72},        // 'W'
	{Len: 8, Bits: 0xfc},        // 'X'
	{Len: 7, Bits: 0x73},        // 'Y'
	{Len: 8, Bits: 0xfd},        // 'Z'
	{Len: 13, Bits: 0x1ffb},     // '['
	{Len: 19, Bits: 0x7fff0},    // '\\'
	{Len: 13, Bits: 0x1ffc},     // ']'
	{Len: 14, Bits: 0x3ffc},     // '^'
	{Len: 6, Bits: 0x22},        // '_'
	{Len: 15, Bits: 0x7ffd},     // '`'
	{Len: 5, Bits: 0x3},         // 'a'
	{Len: 6, Bits: 0x23},        // 'b'
	{Len: 5, Bits: 0x4},         // 'c'
	{Len: 6, Bits: 0x24},        // 'd'
	{Len: 5, Bits: 0x5},         // 'e'
	{Len: 6, Bits: 0x25},        // 'f'
	{Len: 6, Bits: 0x26},        // 'g'
	{Len: 6, Bits: 0x27},        // 'h'
	{Len: 5, Bits: 0x6},         // 'i'
	{Len: 7, Bits: 0x74},        // 'j'
	{Len: 7, Bits: 0x75},        // 'k'
	{Len: 6, Bits: 0x28},        // 'l'
	{Len: 6, Bits: 0x29},        // 'm'
	{Len: 6, Bits: 0x2a},        // 'n'
	{Len: 5, Bits: 0x7},         // 'o'
	{Len: 6, Bits: 0x2b},        // 'p'
	{Len: 7, Bits: 0x76},        // 'q'
	{Len: 6, Bits: 0x2c},        // 'r'
	{Len: 5, Bits: 0x8},         // 's'
	{Len: 5, Bits: 0x9},         // 't'
	{Len: 6, Bits: 0x2d},        // 'u'
	{Len: 7, Bits: 0x77},        // 'v'
	{Len: 7, Bits: 0x78},        // 'w'
	{Len: 7, Bits: 0x79},        // 'x'
	{Len: 7, Bits: 0x7a},        // 'y'
	{Len: 7, Bits: 0x7b},        // 'z'
	{Len: 15, Bits: 0x7ffe},     // '{'
	{Len: 11, Bits: 0x7fc},      // '|'
	{Len: 14, Bits: 0x3ffd},     // '}'
	{Len: 13, Bits: 0x1ffd},     // '~'
	{Len: 28, Bits: 0xffffffc},  // 127
	{Len: 20, Bits: 0xfffe6},    // 128
	{Len: 22, Bits: 0x3fffd2},   // 129
	{Len: 20, Bits: 0xfffe7},    // 130
	{Len: 20, Bits: 0xfffe8},    // 131
	{Len: 22, Bits: 0x3fffd3},   // 132
	{Len: 22, Bits: 0x3fffd4},   // 133
	{Len: 22, Bits: 0x3fffd5},   // 134
	{Len: 23, Bits: 0x7fffd9},   // 135
	{Len: 22, Bits: 0x3fffd6},   // 136
	{Len: 23, Bits: 0x7fffda},   // 137
	{Len: 23, Bits: 0x7fffdb},   // 138
	{Len: 23, Bits: 0x7fffdc},   // 139
	{Len: 23, Bits: 0x7fffdd},   // 140
	{Len: 23, Bits: 0x7fffde},   // 141
	{Len: 24, Bits: 0xffffeb},   // 142
	{Len: 23, Bits: 0x7fffdf},   // 143
	{Len: 24, Bits: 0xffffec},   // 144
	{Len: 24, Bits: 0xffffed},   // 145
	{Len: 22, Bits: 0x3fffd7},   // 146
	{Len: 23, Bits: 0x7fffe0},   // 147
	{Len: 24, Bits: 0xffffee},   // 148
	{Len: 23, Bits: 0x7fffe1},   // 149
	{Len: 23, Bits: 0x7fffe2},   // 150
	{Len: 23, Bits: 0x7fffe3},   // 151
	{Len: 23, Bits: 0x7fffe4},   // 152
	{Len: 21, Bits: 0x1fffdc},   // 153
	{Len: 22, Bits: 0x3fffd8},   // 154
	{Len: 23, Bits: 0x7fffe5},   // 155
	{Len: 22, Bits: 0x3fffd9},   // 156
	{Len: 23, Bits: 0x7fffe6},   // 157
	{Len: 23, Bits: 0x7fffe7},   // 158
	{Len: 24, Bits: 0xffffef},   // 159
	{Len: 22, Bits: 0x3fffda},   // 160
	{Len: 21, Bits: 0x1fffdd},   // 161
	{Len: 20, Bits: 0xfffe9},    // 162
	{Len: 22, Bits: 0x3fffdb},   // 163
	{Len: 22, Bits: 0x3fffdc},   // 164
	{Len: 23, Bits: 0x7fffe8},   // 165
	{Len: 23, Bits: 0x7fffe9},   // 166
	{Len: 21, Bits: 0x1fffde},   // 167
	{Len: 23, Bits: 0x7fffea},   // 168
	{Len: 22, Bits: 0x3fffdd},   // 169
	{Len: 22, Bits: 0x3fffde},   // 170
	{Len: 24, Bits: 0xfffff0},   // 171
	{Len: 21, Bits: 0x1fffdf},   // 172
	{Len: 22, Bits: 0x3fffdf},   // 173
	{Len: 23, Bits: 0x7fffeb},   // 174
	{Len: 23, Bits: 0x7fffec},   // 175
	{Len: 21, Bits: 0x1fffe0},   // 176
	{Len: 21, Bits: 0x1fffe1},   // 177
	{Len: 22, Bits: 0x3fffe0},   // 178
	{Len: 21, Bits: 0x1fffe2},   // 179
	{Len: 23, Bits: 0x7fffed},   // 180
	{Len: 22, Bits: 0x3fffe1},   // 181
	{Len: 23, Bits: 0x7fffee},   // 182
	{Len: 23, Bits: 0x7fffef},   // 183
	{Len: 20, Bits: 0xfffea},    // 184
	{Len: 22, Bits: 0x3fffe2},   // 185
	{Len: 22, Bits: 0x3fffe3},   // 186
	{Len: 22, Bits: 0x3fffe4},   // 187
	{Len: 23, Bits: 0x7ffff0},   // 188
	{Len: 22, Bits: 0x3fffe5},   // 189
	{Len: 22, Bits: 0x3fffe6},   // 190
	{Len: 23, Bits: 0x7ffff1},   // 191
	{Len: 26, Bits: 0x3ffffe0},  // 192
	{Len: 26, Bits: 0x3ffffe1},  // 193
	{Len: 20, Bits: 0xfffeb},    // 194
	{Len: 19, Bits: 0x7fff1},    // 195
	{Len: 22, Bits: 0x3fffe7},   // 196
	{Len: 23, Bits: 0x7ffff2},   // 197
	{Len: 22, Bits: 0x3fffe8},   // 198
	{Len: 25, Bits: 0x1ffffec},  // 199
	{Len: 26, Bits: 0x3ffffe2},  // 200
	{Len: 26, Bits: 0x3ffffe3},  // 201
	{Len: 26, Bits: 0x3ffffe4},  // 202
	{Len: 27, Bits: 0x7ffffde},  // 203
	{Len: 27, Bits: 0x7ffffdf},  // 204
	{Len: 26, Bits: 0x3ffffe5},  // 205
	{Len: 24, Bits: 0xfffff1},   // 206
	{Len: 25, Bits: 0x1ffffed},  // 207
	{Len: 19, Bits: 0x7fff2},    // 208
	{Len: 21, Bits: 0x1fffe3},   // 209
	{Len: 26, Bits: 0x3ffffe6},  // 210
	{Len: 27, Bits: 0x7ffffe0},  // 211
	{Len: 27, Bits: 0x7ffffe1},  // 212
	{Len: 26, Bits: 0x3ffffe7},  // 213
	{Len: 27, Bits: 0x7ffffe2},  // 214
	{Len: 24, Bits: 0xfffff2},   // 215
	{Len: 21, Bits: 0x1fffe4},   // 216
	{Len: 21, Bits: 0x1fffe5},   // 217
	{Len: 26, Bits: 0x3ffffe8},  // 218
	{Len: 26, Bits: 0x3ffffe9},  // 219
	{Len: 28, Bits: 0xffffffd},  // 220
	{Len: 27, Bits: 0x7ffffe3},  // 221
	{Len: 27, Bits: 0x7ffffe4},  // 222
	{Len: 27, Bits: 0x7ffffe5},  // 223
	{Len: 20, Bits: 0xfffec},    // 224
	{Len: 24, Bits: 0xfffff3},   // 225
	{Len: 20, Bits: 0xfffed},    // 226
	{Len: 21, Bits: 0x1fffe6},   // 227
	{Len: 22, Bits: 0x3fffe9},   // 228
	{Len: 21, Bits: 0x1fffe7},   // 229
	{Len: 21, Bits: 0x1fffe8},   // 230
	{Len: 23, Bits: 0x7ffff3},   // 231
	{Len: 22, Bits: 0x3fffea},   // 232
	{Len: 22, Bits: 0x3fffeb},   // 233
	{Len: 25, Bits: 0x1ffffee},  // 234
	{Len: 25, Bits: 0x1ffffef},  // 235
	{Len: 24, Bits: 0xfffff4},   // 236
	{Len: 24, Bits: 0xfffff5},   // 237
	{Len: 26, Bits: 0x3ffffea},  // 238
	{Len: 23, Bits: 0x7ffff4},   // 239
	{Len: 26, Bits: 0x3ffffeb},  // 240
	{Len: 27, Bits: 0x7ffffe6},  // 241
	{Len: 26, Bits: 0x3ffffec},  // 242
	{Len: 26, Bits: 0x3ffffed},  // 243
	{Len: 27, Bits: 0x7ffffe7},  // 244
	{Len: 27, Bits: 0x7ffffe8},  // 245
	{Len: 27, Bits: 0x7ffffe9},  // 246
	{Len: 27, Bits: 0x7ffffea},  // 247
	{Len: 27, Bits: 0x7ffffeb},  // 248
	{Len: 28, Bits: 0xffffffe},  // 249
	{Len: 27, Bits: 0x7ffffec},  // 250
	{Len: 27, Bits: 0x7ffffed},  // 251
	{Len: 27, Bits: 0x7ffffee},  // 252
	{Len: 27, Bits: 0x7ffffef},  // 253
	{Len: 27, Bits: 0x7fffff0},  // 254
	{Len: 26, Bits: 0x3ffffee},  // 255
	{Len: 30, Bits: 0x3fffffff}, // EOS
}
