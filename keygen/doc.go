// Package keygen produces Hill cipher keys that are guaranteed invertible
// mod 26, and fingerprints keys for logs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hill/keygen"
//
//	key, err := keygen.Random(3, nil)                 // crypto/rand
//	key, err  = keygen.Derive("correct horse", 3)      // deterministic
//	fmt.Println(keygen.Fingerprint(key))               // "3x3:1f0c…"
//
// Both generators draw uniform residues by rejection sampling from a byte
// stream and retry until det(K) is a unit mod 26 (about 30% of uniform
// matrices are). Derive expands the passphrase with Argon2id and reads the
// cells from a keyed BLAKE2b XOF, so the same passphrase, salt and n always
// give the same key.
package keygen
