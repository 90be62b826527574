package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tjboldt/Forth-Block-Utilities/forthblock"
)

func main() {
	args := os.Args[1:]

	dump := false
	if len(args) > 0 && args[0] == "-dump" {
		dump = true
		args = args[1:]
	}

	if len(args) < 2 || len(args) > 3 || (dump && len(args) != 2) {
		fmt.Printf("Usage:\n")
		fmt.Printf("  Forth-Block-Utilities DISK_IMAGE BLOCK_NUMBER SOURCE_FILE\n")
		fmt.Printf("  Forth-Block-Utilities DISK_IMAGE BLOCK_NUMBER -\n")
		fmt.Printf("  Forth-Block-Utilities DISK_IMAGE BLOCK_NUMBER\n")
		fmt.Printf("  Forth-Block-Utilities -dump DISK_IMAGE BLOCK_NUMBER\n")
		fmt.Printf("\n")
		fmt.Printf("Writes SOURCE_FILE into the given block of an existing disk\n")
		fmt.Printf("image as a 16x64 Forth screen, or reads it from standard\n")
		fmt.Printf("input when SOURCE_FILE is '-'. With no source argument, the\n")
		fmt.Printf("block is listed as text, or as hex with -dump.\n")
		os.Exit(1)
	}

	fileName := args[0]

	block, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid block number '%s'\n", args[1])
		os.Exit(1)
	}

	if len(args) == 2 {
		showBlock(fileName, block, dump)
		return
	}

	writeBlock(fileName, block, args[2])
}

func showBlock(fileName string, block int, dump bool) {
	screen, err := forthblock.ReadScreenFromImage(fileName, block)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if dump {
		forthblock.DumpBlock(os.Stdout, screen)
	} else {
		fmt.Print(forthblock.ScreenToText(screen))
	}
}

func writeBlock(fileName string, block int, sourceName string) {
	sourceText, err := readSource(sourceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	screen := forthblock.EncodeScreen(sourceText)

	offset, err := forthblock.WriteScreenToImage(fileName, block, screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote block %d to %s\n", block, fileName)
	fmt.Printf("  Source: %d lines, %d bytes\n", len(forthblock.SplitLines(sourceText)), len(sourceText))
	fmt.Printf("  Block offset: %d (0x%X)\n", offset, offset)
}

// readSource reads the source text, with "-" meaning standard input
func readSource(sourceName string) (string, error) {
	if sourceName == "-" {
		text, err := io.ReadAll(os.Stdin)
		return string(text), err
	}

	text, err := os.ReadFile(sourceName)
	return string(text), err
}
