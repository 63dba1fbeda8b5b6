// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless, byte-oriented Huffman
// compressor and decompressor. The encoded stream carries its own
// decoding tree in a preorder header, so no metadata beyond the stream
// itself is needed to reverse the transformation.
//
// Compression is two-pass: a counting pass over the input followed by an
// encoding pass, so the source must support seeking back to its start.
package huffman

import "errors"

const (
	bitsPerWord = 8                // input and output unit
	bitsPerInt  = 32               // format marker width
	alphSize    = 1 << bitsPerWord // number of distinct byte values

	// eofSymbol is a synthetic 257th symbol appended to every stream so
	// the decoder always has a decodable termination point.
	eofSymbol  = alphSize
	numSymbols = alphSize + 1

	// symbolBits is the width of a leaf's symbol field in the tree
	// header: wide enough for values 0 through 256 inclusive.
	symbolBits = bitsPerWord + 1

	// formatMagic is the fixed marker every compressed stream starts
	// with. A stream not opening with it is not ours.
	formatMagic = 0xface8201
)

var (
	// ErrFormat means the input does not begin with the format marker.
	ErrFormat = errors.New("huffman: input is not a huffman-compressed stream")

	// ErrCorruptHeader means the input ended, or became malformed,
	// while the tree header was being read.
	ErrCorruptHeader = errors.New("huffman: corrupt tree header")

	// ErrTruncated means the compressed body ended before the
	// end-of-stream code was seen.
	ErrTruncated = errors.New("huffman: truncated compressed body")
)

type config struct {
	logf func(format string, args ...any)
}

func (c *config) debugf(format string, args ...any) {
	if c.logf != nil {
		c.logf(format, args...)
	}
}

// An Option adjusts a single Compress or Decompress call.
type Option func(*config)

// WithDebugLog routes per-call diagnostics (symbol counts, generated
// codes, bits moved) to logf. Without it the codec is silent.
func WithDebugLog(logf func(format string, args ...any)) Option {
	return func(c *config) { c.logf = logf }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
