// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twisim

// Segment bits for one 7-segment cell, in the usual a-g order:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA byte = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// digitSegments maps the bare digit codes 0-9.
var digitSegments = [10]byte{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07, 0x7f, 0x6f,
}

// charSegments maps ASCII characters the firmware can render. Characters
// missing here come out blank, like on the real display.
var charSegments = map[byte]byte{
	'0': 0x3f, '1': 0x06, '2': 0x5b, '3': 0x4f, '4': 0x66,
	'5': 0x6d, '6': 0x7d, '7': 0x07, '8': 0x7f, '9': 0x6f,
	'A': 0x77, 'b': 0x7c, 'C': 0x39, 'd': 0x5e, 'E': 0x79,
	'F': 0x71, 'G': 0x3d, 'H': 0x76, 'h': 0x74, 'I': 0x06,
	'J': 0x1e, 'L': 0x38, 'n': 0x54, 'O': 0x3f, 'o': 0x5c,
	'P': 0x73, 'q': 0x67, 'r': 0x50, 'S': 0x6d, 't': 0x78,
	'U': 0x3e, 'u': 0x1c, 'y': 0x6e,
	'a': 0x77, 'c': 0x58, 'e': 0x79, 'f': 0x71, 'g': 0x6f,
	'i': 0x04, 'j': 0x1e, 'l': 0x38, 'p': 0x73, 's': 0x6d,
	'-': 0x40, '_': 0x08, ' ': 0x00, '=': 0x48,
	'[': 0x39, ']': 0x0f, '\'': 0x20, '"': 0x22,
}

// segments returns the segment bits for a cell code: bare digits 0-9 use
// the digit table, anything else is looked up as ASCII.
func segments(code byte) byte {
	if code <= 9 {
		return digitSegments[code]
	}
	return charSegments[code]
}
