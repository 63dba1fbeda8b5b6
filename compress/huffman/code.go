// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// code is one symbol's bit pattern: the low len bits of val, emitted
// most-significant bit first. Keeping the length explicit preserves
// leading zero bits. A length of 0 means the symbol has no code.
// 64 bits of value cover any code a practical input can produce: a
// deeper tree would need Fibonacci-scaled counts summing past 2^60.
type code struct {
	val uint64
	len uint8
}

// buildCodes walks the tree depth-first, extending the path with 0 on a
// left descent and 1 on a right descent, and records the accumulated
// path at each leaf. When the root is itself a leaf the natural path is
// empty and unwritable, so that lone symbol is assigned the one-bit
// code 0 instead.
func buildCodes(root *node) [numSymbols]code {
	var table [numSymbols]code
	if root.leaf() {
		table[root.symbol] = code{val: 0, len: 1}
		return table
	}
	assignCodes(root, code{}, &table)
	return table
}

func assignCodes(n *node, path code, table *[numSymbols]code) {
	if n.leaf() {
		table[n.symbol] = path
		return
	}
	assignCodes(n.left, code{val: path.val << 1, len: path.len + 1}, table)
	assignCodes(n.right, code{val: path.val<<1 | 1, len: path.len + 1}, table)
}
