// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// This file provides tests for reading and writing screens in image files

package forthblock

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestImage creates an image file of the given number of blocks,
// filled with a marker byte so overwrites are visible
func newTestImage(t *testing.T, blocks int) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "blocks.img")
	image := bytes.Repeat([]byte{0xEE}, blocks*BlockSize)
	err := os.WriteFile(fileName, image, 0644)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	return fileName
}

func TestWriteScreenToImage(t *testing.T) {
	fileName := newTestImage(t, 3)
	screen := EncodeScreen(": STAR 42 EMIT ;\n")

	offset, err := WriteScreenToImage(fileName, 1, screen)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if offset != 1024 {
		t.Errorf("got offset %d, want 1024", offset)
	}

	image, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(image) != 3*BlockSize {
		t.Errorf("image size changed to %d, want %d", len(image), 3*BlockSize)
	}
	if !bytes.Equal(image[BlockSize:2*BlockSize], screen) {
		t.Errorf("target block does not contain the screen")
	}

	marker := bytes.Repeat([]byte{0xEE}, BlockSize)
	if !bytes.Equal(image[:BlockSize], marker) {
		t.Errorf("block 0 was modified")
	}
	if !bytes.Equal(image[2*BlockSize:], marker) {
		t.Errorf("block 2 was modified")
	}
}

func TestWriteScreenToImageLastBlock(t *testing.T) {
	fileName := newTestImage(t, 2)
	screen := EncodeScreen("( last block )\n")

	offset, err := WriteScreenToImage(fileName, 1, screen)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if offset != 1024 {
		t.Errorf("got offset %d, want 1024", offset)
	}
}

func TestWriteScreenToImageOutOfRange(t *testing.T) {
	fileName := newTestImage(t, 2)
	before, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err = WriteScreenToImage(fileName, 2, EncodeScreen("too far\n"))
	var outOfRange *BlockOutOfRangeError
	if !errors.As(err, &outOfRange) {
		t.Fatalf("got %v, want BlockOutOfRangeError", err)
	}
	if outOfRange.Offset != 2048 || outOfRange.ImageSize != 2048 {
		t.Errorf("got offset %d size %d in error, want 2048 and 2048", outOfRange.Offset, outOfRange.ImageSize)
	}

	after, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("image changed after a refused write")
	}
}

func TestWriteScreenToImageNegativeBlock(t *testing.T) {
	fileName := newTestImage(t, 2)

	_, err := WriteScreenToImage(fileName, -1, EncodeScreen(""))
	if !errors.Is(err, ErrInvalidBlockIndex) {
		t.Errorf("got %v, want ErrInvalidBlockIndex", err)
	}
}

func TestWriteScreenToImageNegativeBlockMissingImage(t *testing.T) {
	// a negative block number is rejected before the image is consulted
	fileName := filepath.Join(t.TempDir(), "missing.img")

	_, err := WriteScreenToImage(fileName, -1, EncodeScreen(""))
	if !errors.Is(err, ErrInvalidBlockIndex) {
		t.Errorf("got %v, want ErrInvalidBlockIndex", err)
	}

	_, err = ReadScreenFromImage(fileName, -1)
	if !errors.Is(err, ErrInvalidBlockIndex) {
		t.Errorf("got %v, want ErrInvalidBlockIndex", err)
	}
}

func TestWriteScreenToImageMissingImage(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "missing.img")

	_, err := WriteScreenToImage(fileName, 0, EncodeScreen(""))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestReadScreenFromImage(t *testing.T) {
	fileName := newTestImage(t, 4)
	screen := EncodeScreen(": CUBE DUP DUP * * ;\n")

	_, err := WriteScreenToImage(fileName, 3, screen)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	readBack, err := ReadScreenFromImage(fileName, 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(readBack, screen) {
		t.Errorf("screen read back differs from screen written")
	}

	_, err = ReadScreenFromImage(fileName, 4)
	var outOfRange *BlockOutOfRangeError
	if !errors.As(err, &outOfRange) {
		t.Errorf("got %v, want BlockOutOfRangeError", err)
	}
}
