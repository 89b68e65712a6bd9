// SPDX-License-Identifier: MIT
// Package codec: sentinel error set. Match with errors.Is.

package codec

import "errors"

var (
	// ErrInvalidLetter is returned when a byte outside 'A'..'Z' reaches a
	// conversion that requires clean text, or when a filler is not a letter.
	ErrInvalidLetter = errors.New("codec: invalid letter")

	// ErrInvalidIndex is returned when an index outside [0,25] is rendered.
	ErrInvalidIndex = errors.New("codec: letter index out of range")

	// ErrKeyShape is returned when a key source does not hold exactly n² entries.
	ErrKeyShape = errors.New("codec: key must have exactly n*n entries")

	// ErrEmptyText is returned when a key source is empty.
	ErrEmptyText = errors.New("codec: empty input")
)
