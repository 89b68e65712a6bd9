// SPDX-License-Identifier: MIT

// Package modular - normalization and inverse search over Z/26Z.
//
// Purpose:
//   - Provide the single definition of "mod 26" used across the module.
//   - Keep results canonical: every function here returns values in [0, Modulus).
//
// Complexity quicksheet:
//   - Normalize O(1); Inverse O(Modulus); IsUnit O(log Modulus); GCD O(log min(a,b)).

package modular

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Modulus is the size of the Latin alphabet, the ring order for the cipher.
const Modulus = 26

// Normalize returns x mod 26 in [0, 25] for any integer x.
// MAIN DESCRIPTION:
//   - True mathematical modulo; negative inputs wrap around (-1 → 25).
//
// Implementation:
//   - Stage 1: take the truncating remainder in T (|r| < 26).
//   - Stage 2: lift a negative remainder by one modulus.
//
// Behavior highlights:
//   - Periodic: Normalize(x) == Normalize(x+26) for every x.
//   - No error conditions.
//
// Complexity:
//   - Time O(1), Space O(1).
func Normalize[T constraints.Integer](x T) int {
	r := int(x % T(Modulus)) // |r| < Modulus, sign follows x
	if r < 0 {
		r += Modulus
	}

	return r
}

// Inverse returns b in [1, 25] with Normalize(a*b) == 1.
// MAIN DESCRIPTION:
//   - Exhaustive search over multipliers 1..25 (the ring is tiny).
//
// Implementation:
//   - Stage 1: normalize a so that out-of-range inputs are accepted.
//   - Stage 2: scan x = 1..25 in ascending order; first hit wins.
//
// Errors:
//   - ErrNotInvertible when gcd(a, 26) != 1 (a even, a ≡ 13, or a ≡ 0).
//
// Determinism:
//   - Fixed ascending scan; inverses are unique in a ring, so the order only
//     affects cost.
//
// Complexity:
//   - Time O(26), Space O(1).
func Inverse(a int) (int, error) {
	a = Normalize(a)
	var x int
	for x = 1; x < Modulus; x++ {
		if Normalize(a*x) == 1 {
			return x, nil
		}
	}

	return 0, fmt.Errorf("Inverse(%d): %w", a, ErrNotInvertible)
}

// IsUnit reports whether a has a multiplicative inverse mod 26.
// Complexity: O(log 26).
func IsUnit(a int) bool {
	return GCD(Normalize(a), Modulus) == 1
}

// GCD returns the greatest common divisor of |a| and |b| (Euclid).
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
