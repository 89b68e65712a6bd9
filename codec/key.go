// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hill/matrix"
)

// isKeySeparator splits key text on whitespace, commas, semicolons and brackets,
// so "3 3 2 5", "3,3;2,5" and "[[3,3],[2,5]]" all parse alike.
func isKeySeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', ';', '[', ']':
		return true
	default:
		return false
	}
}

// ParseKey reads an n×n key from s: n² integers in row-major order.
// MAIN DESCRIPTION:
//   - Every entry is reduced mod 26, so negative or large values are accepted.
//
// Errors:
//   - matrix.ErrInvalidBlockSize (n outside [2,10]), ErrEmptyText,
//     ErrKeyShape (wrong entry count), strconv errors for non-integers.
func ParseKey(s string, n int) (*matrix.Dense, error) {
	if err := matrix.ValidateBlockSize(n); err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(s, isKeySeparator)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseKey: %w", ErrEmptyText)
	}
	if len(fields) != n*n {
		return nil, fmt.Errorf("ParseKey: got %d entries for %dx%d: %w", len(fields), n, n, ErrKeyShape)
	}

	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			v, err := strconv.Atoi(fields[i*n+j])
			if err != nil {
				return nil, fmt.Errorf("ParseKey: entry [%d][%d]: %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// KeyFromWord fills an n×n key row-major with the letters of word
// ("GYBNQKURP" → [[6,24,1],[13,16,10],[20,17,15]]).
// Non-letters are ignored; exactly n² letters must remain.
func KeyFromWord(word string, n int) (*matrix.Dense, error) {
	if err := matrix.ValidateBlockSize(n); err != nil {
		return nil, err
	}
	letters := Letters(word)
	if letters == "" {
		return nil, fmt.Errorf("KeyFromWord: %w", ErrEmptyText)
	}
	if len(letters) != n*n {
		return nil, fmt.Errorf("KeyFromWord: got %d letters for %dx%d: %w", len(letters), n, n, ErrKeyShape)
	}

	idx, err := ToIndices(letters)
	if err != nil {
		return nil, err
	}
	rows := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = idx[i*n : (i+1)*n]
	}

	return matrix.NewDenseFromRows(rows)
}
