// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command huff compresses and decompresses files with the huffman
// codec. It reports sizes and xxhash64 digests for both ends of the
// operation so a round trip can be verified from the shell:
//
//	huff c input.txt packed.huf
//	huff d packed.huf restored.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/packbit/huffgo/compress/huffman"
)

var verbose = flag.Bool("v", false, "log the code table and bit counts")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: huff [-v] c|d <input> <output>\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 || (args[0] != "c" && args[0] != "d") {
		usage()
	}

	var opts []huffman.Option
	if *verbose {
		opts = append(opts, huffman.WithDebugLog(log.Printf))
	}

	switch args[0] {
	case "c":
		run(args[1], args[2], func(dst, src *os.File) error {
			return huffman.Compress(dst, src, opts...)
		})
	case "d":
		run(args[1], args[2], func(dst, src *os.File) error {
			return huffman.Decompress(dst, src, opts...)
		})
	}
}

func run(inPath, outPath string, codec func(dst, src *os.File) error) {
	src, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer dst.Close()

	if err := codec(dst, src); err != nil {
		log.Fatal(err)
	}
	describe(inPath)
	describe(outPath)
}

func describe(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %d bytes, xxh64 %016x", path, n, h.Sum64())
}
