// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"bufio"
	"errors"
	"io"
)

// ErrNotSeekable is returned by Reset when the underlying stream cannot
// seek back to its start.
var ErrNotSeekable = errors.New("bitio: underlying reader is not seekable")

// Reader reads bit fields from the underlying io.Reader in MSB-first
// order. Exhaustion on a field boundary is io.EOF; exhaustion inside a
// field is io.ErrUnexpectedEOF.
type Reader struct {
	src   io.Reader
	br    *bufio.Reader
	word  uint64 // buffered bits, right-aligned
	nbits int    // number of valid bits in word
}

// NewReader returns a Reader consuming under. If under is also an
// io.Seeker, the Reader supports Reset.
func NewReader(under io.Reader) *Reader {
	return &Reader{src: under, br: bufio.NewReader(under)}
}

// ReadBits reads the next n bits, MSB-first, into the low n bits of the
// result. n must be in [1, 32].
func (r *Reader) ReadBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		panic("bitio: bad ReadBits width")
	}
	for r.nbits < n {
		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF && r.nbits > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		r.word = r.word<<8 | uint64(b)
		r.nbits += 8
	}
	r.nbits -= n
	v := uint32(r.word >> r.nbits)
	r.word &= (1 << r.nbits) - 1
	if n < 32 {
		v &= (1 << n) - 1
	}
	return v, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint8, error) {
	v, err := r.ReadBits(1)
	return uint8(v), err
}

// ReadByte reads the next 8 bits as a byte.
func (r *Reader) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// Reset rewinds the read position to the start of the underlying stream
// and discards any buffered bits. The underlying stream must implement
// io.Seeker.
func (r *Reader) Reset() error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.br.Reset(r.src)
	r.word = 0
	r.nbits = 0
	return nil
}
