// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitio provides buffered, most-significant-bit-first reading and
// writing of bit fields on top of ordinary byte streams. It is the stream
// primitive the huffman codec is built on.
package bitio

import (
	"bufio"
	"io"
)

// Writer accumulates bits and emits them to the underlying io.Writer in
// MSB-first order. Write errors are sticky: the first error stops all
// further output and is reported by Err and Close. Close pads the final
// partial byte with zero bits on the low side and flushes.
type Writer struct {
	bw    *bufio.Writer
	word  uint64 // pending bits, right-aligned
	nbits int    // number of valid bits in word; always < 8 between calls
	err   error
}

// NewWriter returns a Writer emitting to under.
func NewWriter(under io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(under)}
}

// WriteBits writes the low n bits of v, most-significant bit first.
// n must be in [0, 32].
func (w *Writer) WriteBits(n int, v uint32) {
	if w.err != nil {
		return
	}
	if n < 0 || n > 32 {
		panic("bitio: bad WriteBits width")
	}
	if n < 32 {
		v &= (1 << n) - 1
	}
	w.word = w.word<<n | uint64(v)
	w.nbits += n
	for w.nbits >= 8 {
		w.nbits -= 8
		if err := w.bw.WriteByte(byte(w.word >> w.nbits)); err != nil {
			w.err = err
			return
		}
	}
	w.word &= (1 << w.nbits) - 1
}

// Err returns the first error encountered while writing, if any.
func (w *Writer) Err() error {
	return w.err
}

// Close flushes all pending bits, zero-padding the last byte if the
// stream does not end on a byte boundary. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.nbits > 0 {
		pad := 8 - w.nbits
		w.WriteBits(pad, 0)
	}
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}
