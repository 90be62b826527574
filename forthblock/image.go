// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// This file provides access to read and write Forth screens
// in a drive image file

package forthblock

import (
	"os"
)

// WriteScreenToImage writes a 1024-byte screen at the given block
// number in an existing drive image and returns the byte offset
// written. The image is opened in place, never created, truncated
// or extended, and validation happens before anything is modified.
func WriteScreenToImage(fileName string, block int, screen []byte) (int64, error) {
	if block < 0 {
		return 0, ErrInvalidBlockIndex
	}

	info, err := os.Stat(fileName)
	if err != nil {
		return 0, err
	}

	offset, err := BlockOffset(block, info.Size())
	if err != nil {
		return 0, err
	}

	file, err := os.OpenFile(fileName, os.O_RDWR, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	err = WriteBlock(file, block, screen)
	if err != nil {
		return 0, err
	}

	err = file.Sync()
	if err != nil {
		return 0, err
	}

	return offset, nil
}

// ReadScreenFromImage reads the 1024-byte screen at the given block
// number from an existing drive image
func ReadScreenFromImage(fileName string, block int) ([]byte, error) {
	if block < 0 {
		return nil, ErrInvalidBlockIndex
	}

	info, err := os.Stat(fileName)
	if err != nil {
		return nil, err
	}

	_, err = BlockOffset(block, info.Size())
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadBlock(file, block)
}
