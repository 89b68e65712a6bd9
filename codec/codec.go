// SPDX-License-Identifier: MIT

// Package codec - text preparation and rendering.
//
// Purpose:
//   - Produce CleanText: letters only, upper-case, padded to a multiple of n.
//   - Convert letters ↔ indices with index = letter - 'A'.
//
// Complexity quicksheet:
//   - Every function is a single O(len) pass.

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hill/matrix"
	"github.com/katalvlaran/hill/modular"
)

// DefaultFiller pads plaintext up to a whole number of blocks.
const DefaultFiller byte = 'X'

// IsLetter reports whether b is an upper-case letter 'A'..'Z'.
func IsLetter(b byte) bool { return b >= 'A' && b <= 'Z' }

// toUpper maps an ASCII letter to upper case; ok is false for non-letters.
func toUpper(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return b, true
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	default:
		return 0, false
	}
}

// Letters strips every non-letter byte from raw and upper-cases the rest.
// Non-ASCII runes are dropped along with punctuation and whitespace.
func Letters(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	var i int
	for i = 0; i < len(raw); i++ {
		if c, ok := toUpper(raw[i]); ok {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// PaddedLen returns ceil(count/n)*n, the CleanText length for count letters.
// n must be positive.
func PaddedLen(count, n int) int {
	if count <= 0 {
		return 0
	}

	return (count + n - 1) / n * n
}

// Clean builds CleanText from raw: Letters(raw) right-padded with filler
// until its length is a multiple of n.
//
// Errors:
//   - matrix.ErrInvalidBlockSize when n is outside [2,10].
//   - ErrInvalidLetter when filler is not 'A'..'Z'.
//
// An input without letters yields "" (zero blocks), not an error.
func Clean(raw string, n int, filler byte) (string, error) {
	if err := matrix.ValidateBlockSize(n); err != nil {
		return "", err
	}
	if !IsLetter(filler) {
		return "", fmt.Errorf("filler %q: %w", filler, ErrInvalidLetter)
	}

	letters := Letters(raw)
	total := PaddedLen(len(letters), n)
	if total == len(letters) {
		return letters, nil
	}

	return letters + strings.Repeat(string(filler), total-len(letters)), nil
}

// ToIndices converts upper-case letters to indices 0..25.
// Errors: ErrInvalidLetter with the offending position.
func ToIndices(text string) ([]int, error) {
	out := make([]int, len(text))
	var i int
	for i = 0; i < len(text); i++ {
		if !IsLetter(text[i]) {
			return nil, fmt.Errorf("position %d (%q): %w", i, text[i], ErrInvalidLetter)
		}
		out[i] = int(text[i] - 'A')
	}

	return out, nil
}

// ToText renders indices 0..25 as 'A'..'Z'.
// Errors: ErrInvalidIndex with the offending position.
func ToText(indices []int) (string, error) {
	buf := make([]byte, len(indices))
	var i int
	for i = range indices {
		if indices[i] < 0 || indices[i] >= modular.Modulus {
			return "", fmt.Errorf("position %d (%d): %w", i, indices[i], ErrInvalidIndex)
		}
		buf[i] = byte('A' + indices[i])
	}

	return string(buf), nil
}
