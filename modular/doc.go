// Package modular implements arithmetic over the ring Z/26Z, the ring the
// Hill cipher works in.
//
// 🚀 What is in here?
//
//	Two primitives every other package leans on:
//	  • Normalize — true mathematical modulo (never negative)
//	  • Inverse   — multiplicative inverse by exhaustive search over 1..25
//
// ✨ Key facts about Z/26Z:
//   - 26 = 2·13, so a residue a has an inverse iff gcd(a,26) = 1.
//   - The 12 units are 1,3,5,7,9,11,15,17,19,21,23,25.
//   - Even residues and 13 (and 0) are zero divisors: no inverse.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hill/modular"
//
//	r := modular.Normalize(-27)      // 25
//	inv, err := modular.Inverse(9)   // 3, nil  (9·3 = 27 ≡ 1)
//	_, err = modular.Inverse(13)     // ErrNotInvertible
//
// Complexity:
//
//   - Normalize: O(1)
//   - Inverse:   O(26) worst case, deterministic
package modular
