// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// This file provides conversion of text source into
// the 16x64 Forth screen format

package forthblock

import (
	"strings"
)

// Geometry of a Forth block: 16 lines of 64 columns, 1024 bytes total
const (
	BlockSize     = 1024
	ScreenLines   = 16
	ScreenColumns = 64
)

// Runes outside 7-bit ASCII are substituted rather than rejected
const replacementByte = '?'

// SplitLines splits text on line boundaries. A trailing newline
// produces no extra line and empty text produces no lines.
func SplitLines(text string) []string {
	if len(text) == 0 {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}

// EncodeScreen converts text source to a 1024-byte Forth screen.
// Lines longer than 64 bytes are truncated, shorter lines are padded
// with spaces and lines beyond the 16th are dropped.
func EncodeScreen(text string) []byte {
	lines := SplitLines(text)

	screen := make([]byte, BlockSize)

	for i := 0; i < ScreenLines; i++ {
		row := screen[i*ScreenColumns : (i+1)*ScreenColumns]

		var lineBytes []byte
		if i < len(lines) {
			lineBytes = encodeLine(lines[i])
		}
		if len(lineBytes) > ScreenColumns {
			lineBytes = lineBytes[:ScreenColumns]
		}

		copy(row, lineBytes)
		for j := len(lineBytes); j < ScreenColumns; j++ {
			row[j] = ' '
		}
	}

	return screen
}

// encodeLine converts one line of text to ASCII bytes, substituting
// each rune above 0x7F so that encoding never fails
func encodeLine(line string) []byte {
	lineBytes := make([]byte, 0, len(line))

	for _, r := range line {
		if r > 0x7F {
			lineBytes = append(lineBytes, replacementByte)
		} else {
			lineBytes = append(lineBytes, byte(r))
		}
	}

	return lineBytes
}
