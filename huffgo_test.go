// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffgo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/packbit/huffgo/compress/huffman"
)

func TestEncodeDecode(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("x"),
		[]byte("hello, hello, hello"),
		bytes.Repeat([]byte("abcdefgh"), 1000),
	}
	for _, input := range inputs {
		encoded, err := Encode(input)
		require.NoError(t, err)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, input, decoded)
	}
}

func TestDecodeRejectsForeignData(t *testing.T) {
	_, err := Decode([]byte("definitely not a huffman stream"))
	require.ErrorIs(t, err, huffman.ErrFormat)
}
