// SPDX-License-Identifier: MIT
// Package modular: sentinel error set.
// Callers match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary when context is needed.

package modular

import "errors"

// ErrNotInvertible is returned when a residue shares a factor with the
// modulus and therefore has no multiplicative inverse in Z/26Z.
var ErrNotInvertible = errors.New("modular: value is not invertible mod 26")
