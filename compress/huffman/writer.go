// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"io"

	"github.com/packbit/huffgo/internal/bitio"
)

// Compress reads src twice, once to count symbol frequencies and once
// to encode, and writes the compressed stream to dst: the 32-bit format
// marker, the preorder tree header, the code for every input byte in
// order, and finally the end-of-stream code. src must seek back to its
// start between the two passes. The output is flushed on every return
// path, but carries no completeness guarantee when err is non-nil.
func Compress(dst io.Writer, src io.ReadSeeker, opts ...Option) error {
	cfg := newConfig(opts)
	bw := bitio.NewWriter(dst)
	if err := compress(bw, bitio.NewReader(src), cfg); err != nil {
		bw.Close()
		return err
	}
	return bw.Close()
}

func compress(bw *bitio.Writer, br *bitio.Reader, cfg *config) error {
	counts, err := countFrequencies(br)
	if err != nil {
		return fmt.Errorf("huffman: counting pass: %w", err)
	}
	root := buildTree(counts)
	table := buildCodes(root)
	debugTable(cfg, counts, table)

	bw.WriteBits(bitsPerInt, formatMagic)
	writeTree(bw, root)

	if err := br.Reset(); err != nil {
		return fmt.Errorf("huffman: rewinding input: %w", err)
	}
	written := uint64(0)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("huffman: encoding pass: %w", err)
		}
		writeCode(bw, table[b])
		written += uint64(table[b].len)
	}
	writeCode(bw, table[eofSymbol])
	written += uint64(table[eofSymbol].len)
	cfg.debugf("wrote %d body bits", written)
	return bw.Err()
}

// writeCode emits the low c.len bits of c.val, MSB-first. Codes longer
// than 32 bits go out in two chunks to fit the writer's field width.
func writeCode(bw *bitio.Writer, c code) {
	if c.len > 32 {
		bw.WriteBits(int(c.len)-32, uint32(c.val>>32))
		bw.WriteBits(32, uint32(c.val))
		return
	}
	bw.WriteBits(int(c.len), uint32(c.val))
}

func debugTable(cfg *config, counts [numSymbols]uint64, table [numSymbols]code) {
	if cfg.logf == nil {
		return
	}
	for sym, c := range table {
		if c.len == 0 {
			continue
		}
		cfg.debugf("symbol %3d count %6d code %0*b", sym, counts[sym], int(c.len), c.val)
	}
}
