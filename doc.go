// Package hill is a small, dependency-light toolkit for the Hill cipher:
// classical block encryption of A–Z text with an invertible n×n key over
// the integers mod 26.
//
// 🚀 What is in the box?
//
//   - Modular arithmetic: true modulo, inverses by search, GCD
//   - Square integer matrices: determinant, adjugate, inverse, products mod 26
//   - Text codec: cleaning, padding, letter ↔ index, key parsing
//   - Cipher sessions: encrypt / decrypt with a precomputed inverse key
//   - Key generation: random or passphrase-derived invertible keys, fingerprints
//   - Analysis: letter frequencies and index of coincidence
//
// ✨ Guarantees
//
//   - Every matrix entry and every result lives in [0,25].
//   - A Cipher is immutable and safe for concurrent use.
//   - Errors are sentinel values wrapped with the failing operation, so
//     errors.Is works across package boundaries.
//
// Subpackages:
//
//	modular/  — Normalize, Inverse, IsUnit, GCD over Z/26Z
//	matrix/   — Dense, Determinant, Adjugate, Inverse, Mul, MatVec, validators
//	codec/    — Clean, Letters, ToIndices, ToText, ParseKey, KeyFromWord
//	cipher/   — TransformBlock, TransformText, Cipher (Encrypt/Decrypt)
//	keygen/   — Random, Derive, Fingerprint
//	analysis/ — Frequencies, IndexOfCoincidence, Summarize
//	cmd/hill  — command-line front end (flags or interactive prompts)
//	examples/ — runnable scenarios: known-plaintext attack, passphrase session
//
// Quick example:
//
//	key:  | 3 3 |     HELP → blocks (H,E) (L,P) → HIAT
//	      | 2 5 |     det 9, 9⁻¹ = 3 mod 26, so K⁻¹ = [[15,17],[20,9]]
//
//	go install github.com/katalvlaran/hill/cmd/hill@latest
package hill
