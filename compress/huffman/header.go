// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"github.com/packbit/huffgo/internal/bitio"
)

// maxHeaderDepth bounds recursion while reading a tree header. A valid
// tree over 257 symbols never nests deeper than 256 internal nodes, so
// anything beyond that is a malformed header, not a big tree.
const maxHeaderDepth = numSymbols

// writeTree serializes the tree in preorder: flag bit 1 plus a 9-bit
// symbol for a leaf, flag bit 0 followed by both subtrees for an
// internal node. The flag bits and the fixed leaf width make the
// encoding self-delimiting, so no length prefix is written.
func writeTree(bw *bitio.Writer, n *node) {
	if n.leaf() {
		bw.WriteBits(1, 1)
		bw.WriteBits(symbolBits, uint32(n.symbol))
		return
	}
	bw.WriteBits(1, 0)
	writeTree(bw, n.left)
	writeTree(bw, n.right)
}

// readTree rebuilds a tree from its preorder header by recursive
// descent. The result has the same shape and leaf placement as the
// serialized tree; weights are not carried and stay zero. Running out
// of input mid-grammar, or nesting past any shape a 257-symbol alphabet
// permits, is a corrupt header.
func readTree(br *bitio.Reader) (*node, error) {
	return readSubtree(br, 0)
}

func readSubtree(br *bitio.Reader, depth int) (*node, error) {
	if depth > maxHeaderDepth {
		return nil, ErrCorruptHeader
	}
	flag, err := br.ReadBit()
	if err != nil {
		return nil, ErrCorruptHeader
	}
	if flag == 1 {
		sym, err := br.ReadBits(symbolBits)
		if err != nil || sym >= numSymbols {
			return nil, ErrCorruptHeader
		}
		return &node{symbol: uint16(sym)}, nil
	}
	left, err := readSubtree(br, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readSubtree(br, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
