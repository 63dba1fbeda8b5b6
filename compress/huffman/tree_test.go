// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"testing"
)

// walkTree visits every leaf with its depth, in left-to-right order.
func walkTree(n *node, depth int, visit func(n *node, depth int)) {
	if n.leaf() {
		visit(n, depth)
		return
	}
	walkTree(n.left, depth+1, visit)
	walkTree(n.right, depth+1, visit)
}

func sampleCounts(data []byte) [numSymbols]uint64 {
	var counts [numSymbols]uint64
	for _, b := range data {
		counts[b]++
	}
	counts[eofSymbol] = 1
	return counts
}

func checkWeights(t *testing.T, n *node, counts [numSymbols]uint64) uint64 {
	t.Helper()
	if n.leaf() {
		if n.weight != counts[n.symbol] {
			t.Fatalf("leaf %d weight %d, want count %d", n.symbol, n.weight, counts[n.symbol])
		}
		return n.weight
	}
	sum := checkWeights(t, n.left, counts) + checkWeights(t, n.right, counts)
	if n.weight != sum {
		t.Fatalf("internal node weight %d, want leaf sum %d", n.weight, sum)
	}
	return sum
}

func TestWeightInvariant(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("abracadabra"),
		randomData(1<<12, 7),
	} {
		counts := sampleCounts(data)
		root := buildTree(counts)
		var total uint64
		for _, c := range counts {
			total += c
		}
		if got := checkWeights(t, root, counts); got != total {
			t.Fatalf("root weight %d, want %d", got, total)
		}
	}
}

func TestEveryInternalNodeHasTwoChildren(t *testing.T) {
	root := buildTree(sampleCounts(randomData(1<<12, 9)))
	var check func(n *node)
	check = func(n *node) {
		if n.leaf() {
			return
		}
		if n.left == nil || n.right == nil {
			t.Fatal("internal node with fewer than two children")
		}
		check(n.left)
		check(n.right)
	}
	check(root)
}

func TestPrefixFree(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		table := buildCodes(buildTree(sampleCounts(randomData(1<<12, seed))))
		var codes []code
		for _, c := range table {
			if c.len > 0 {
				codes = append(codes, c)
			}
		}
		for i, a := range codes {
			for j, b := range codes {
				if i == j || a.len > b.len {
					continue
				}
				if a.val == b.val>>(b.len-a.len) {
					t.Fatalf("seed %d: %0*b is a prefix of %0*b",
						seed, int(a.len), a.val, int(b.len), b.val)
				}
			}
		}
	}
}

func TestDeterministicTieBreak(t *testing.T) {
	counts := sampleCounts([]byte("mississippi"))
	want := buildCodes(buildTree(counts))
	for i := 0; i < 16; i++ {
		got := buildCodes(buildTree(counts))
		if got != want {
			t.Fatal("equal inputs produced different code tables")
		}
	}
}

func TestSingleSymbolTree(t *testing.T) {
	var counts [numSymbols]uint64
	counts[eofSymbol] = 1
	root := buildTree(counts)
	if !root.leaf() || root.symbol != eofSymbol {
		t.Fatalf("want lone end-of-stream leaf as root, got %+v", root)
	}
	table := buildCodes(root)
	if table[eofSymbol] != (code{val: 0, len: 1}) {
		t.Fatalf("single-leaf code = %+v, want one zero bit", table[eofSymbol])
	}
	for sym, c := range table {
		if sym != eofSymbol && c.len != 0 {
			t.Fatalf("symbol %d has a code in a single-leaf tree", sym)
		}
	}
}
