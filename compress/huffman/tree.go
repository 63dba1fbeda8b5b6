// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "container/heap"

// node is one node of a Huffman tree: a leaf carrying a symbol, or an
// internal node owning exactly two children. weight is the sum of the
// occurrence counts beneath the node and is meaningful only while the
// tree is being built.
type node struct {
	left, right *node
	weight      uint64
	symbol      uint16
	seq         int // insertion order, breaks weight ties
}

func (n *node) leaf() bool {
	return n.left == nil && n.right == nil
}

// nodeHeap is a min-heap over node weight. Equal weights compare by
// insertion sequence, so tree shape is deterministic for a given table:
// leaves enter in ascending symbol order, merged nodes after them.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// buildTree greedily merges the two lowest-weight nodes until a single
// root remains. counts always has at least the end-of-stream symbol set,
// so the heap is never empty; with exactly one nonzero count the root is
// itself a leaf.
func buildTree(counts [numSymbols]uint64) *node {
	h := make(nodeHeap, 0, numSymbols)
	seq := 0
	for sym, c := range counts {
		if c > 0 {
			h = append(h, &node{symbol: uint16(sym), weight: c, seq: seq})
			seq++
		}
	}
	heap.Init(&h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			left:   left,
			right:  right,
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}
	return heap.Pop(&h).(*node)
}
