// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// This file provides positioned reads and writes of
// 1024-byte blocks and block number validation

package forthblock

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidBlockIndex is returned for negative block numbers
var ErrInvalidBlockIndex = errors.New("block number must not be negative")

// BlockOutOfRangeError is returned when a block's window does not
// fit inside the image
type BlockOutOfRangeError struct {
	Block     int
	Offset    int64
	ImageSize int64
}

func (e *BlockOutOfRangeError) Error() string {
	return fmt.Sprintf("block %d (offset %d) exceeds image size %d", e.Block, e.Offset, e.ImageSize)
}

// BlockOffset validates a block number against the image size and
// returns the block's byte offset. The image is never extended so
// the full block must fit inside the current size.
func BlockOffset(block int, imageSize int64) (int64, error) {
	if block < 0 {
		return 0, ErrInvalidBlockIndex
	}

	offset := int64(block) * BlockSize
	if offset+BlockSize > imageSize {
		return 0, &BlockOutOfRangeError{Block: block, Offset: offset, ImageSize: imageSize}
	}

	return offset, nil
}

// ReadBlock reads one 1024-byte block from a drive image
func ReadBlock(reader io.ReaderAt, block int) ([]byte, error) {
	buffer := make([]byte, BlockSize)

	_, err := reader.ReadAt(buffer, int64(block)*BlockSize)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

// WriteBlock writes one 1024-byte block to a drive image
func WriteBlock(writer io.WriterAt, block int, buffer []byte) error {
	if len(buffer) != BlockSize {
		return fmt.Errorf("block must be exactly %d bytes, got %d", BlockSize, len(buffer))
	}

	_, err := writer.WriteAt(buffer, int64(block)*BlockSize)
	return err
}
