// SPDX-License-Identifier: MIT
// Package cipher: sentinel error set. Match with errors.Is.
// Key and size errors come from package matrix (ErrInvalidBlockSize,
// ErrNotInvertible, ErrNilMatrix) and are not redeclared here.

package cipher

import "errors"

// ErrMisalignedInput is returned when a text length is not a multiple of the
// block size. The transform rejects it instead of reading past the end.
var ErrMisalignedInput = errors.New("cipher: input length is not a multiple of the block size")
