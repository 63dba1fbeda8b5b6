// Copyright (c) 2024, The huffgo Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"

	"github.com/packbit/huffgo/internal/bitio"
)

// countFrequencies reads br to exhaustion and tallies how often each byte
// value occurs. The end-of-stream symbol's count is forced to exactly 1
// so every table describes a terminable stream; an empty input therefore
// yields a table whose only nonzero entry is that symbol. The caller owns
// rewinding br before any further read pass.
func countFrequencies(br *bitio.Reader) ([numSymbols]uint64, error) {
	var counts [numSymbols]uint64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return counts, err
		}
		counts[b]++
	}
	counts[eofSymbol] = 1
	return counts, nil
}
