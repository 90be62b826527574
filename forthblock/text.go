// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// This file provides conversion of Forth screens back to text
// and hex dumps of block contents

package forthblock

import (
	"fmt"
	"io"
	"strings"
)

// ScreenToText converts a 1024-byte screen to text, one line per
// screen row with trailing padding removed
func ScreenToText(screen []byte) string {
	var text strings.Builder

	for i := 0; i*ScreenColumns < len(screen); i++ {
		row := screen[i*ScreenColumns:]
		if len(row) > ScreenColumns {
			row = row[:ScreenColumns]
		}
		text.WriteString(strings.TrimRight(string(row), " "))
		text.WriteString("\n")
	}

	return text.String()
}

// DumpBlock writes a block as offset-prefixed rows of hex and ASCII,
// 16 bytes per row
func DumpBlock(writer io.Writer, buffer []byte) {
	for i := 0; i < len(buffer); i += 16 {
		end := i + 16
		if end > len(buffer) {
			end = len(buffer)
		}
		row := buffer[i:end]

		fmt.Fprintf(writer, "%04X: ", i)
		for _, b := range row {
			fmt.Fprintf(writer, "%02X ", b)
		}
		fmt.Fprint(writer, strings.Repeat("   ", 16-len(row)))
		for _, b := range row {
			c := b & 127
			if c >= 32 && c < 127 {
				fmt.Fprintf(writer, "%c", c)
			} else {
				fmt.Fprint(writer, ".")
			}
		}
		fmt.Fprint(writer, "\n")
	}
}
