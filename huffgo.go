// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffgo provides buffer-level convenience wrappers around the
// stream-oriented codec in compress/huffman. Use the huffman package
// directly when the data already lives in files or other streams.
package huffgo

import (
	"bytes"

	"github.com/packbit/huffgo/compress/huffman"
)

// Encode compresses data and returns the compressed stream.
func Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := huffman.Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses a stream produced by Encode and returns the
// original bytes.
func Decode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := huffman.Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
