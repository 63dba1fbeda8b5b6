// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"

	"github.com/packbit/huffgo/internal/bitio"
)

// Decompress reverses Compress: it verifies the format marker, rebuilds
// the tree from the header, then walks the tree bit by bit writing each
// decoded byte to dst until the end-of-stream symbol is reached. A
// marker mismatch fails with ErrFormat before anything is written; an
// input that ends early fails with ErrCorruptHeader or ErrTruncated
// depending on where it gave out. The output is flushed on every return
// path, but carries no completeness guarantee when err is non-nil.
func Decompress(dst io.Writer, src io.Reader, opts ...Option) error {
	cfg := newConfig(opts)
	br := bitio.NewReader(src)

	magic, err := br.ReadBits(bitsPerInt)
	if err != nil || magic != formatMagic {
		return ErrFormat
	}
	root, err := readTree(br)
	if err != nil {
		return err
	}

	bw := bitio.NewWriter(dst)
	if err := decode(bw, br, root, cfg); err != nil {
		bw.Close()
		return err
	}
	return bw.Close()
}

// decode walks the tree from the root, going left on 0 and right on 1,
// emitting a byte and restarting at the root each time it lands on a
// leaf other than the end-of-stream symbol. A degenerate single-leaf
// tree never descends: every bit resolves to the root itself.
func decode(bw *bitio.Writer, br *bitio.Reader, root *node, cfg *config) error {
	cur := root
	emitted := uint64(0)
	for {
		bit, err := br.ReadBit()
		if err != nil {
			return ErrTruncated
		}
		if !cur.leaf() {
			if bit == 0 {
				cur = cur.left
			} else {
				cur = cur.right
			}
		}
		if cur.leaf() {
			if cur.symbol == eofSymbol {
				cfg.debugf("decoded %d bytes", emitted)
				return bw.Err()
			}
			bw.WriteBits(bitsPerWord, uint32(cur.symbol))
			emitted++
			cur = root
		}
	}
}
