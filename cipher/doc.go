// Package cipher implements the Hill cipher on top of package matrix.
//
// 🚀 What is the Hill cipher?
//
//	A polygraphic substitution: text is cut into blocks of n letters, each
//	block is read as a vector v of indices 0..25, and replaced by K·v mod 26.
//	Decryption is the same operation with K⁻¹ mod 26, which exists iff
//	gcd(det K, 26) = 1.
//
// ✨ Two layers:
//   - TransformBlock / TransformText: the raw block transform over index
//     slices. Identical for both directions.
//   - Cipher: a session holding a key and its inverse (computed once), with
//     Encrypt / Decrypt on strings.
//
// ⚙️ Usage:
//
//	key, _ := codec.ParseKey("3 3 2 5", 2)
//	c, _ := cipher.New(key)
//	ct, _ := c.Encrypt("help")   // "HIAT"
//	pt, _ := c.Decrypt(ct)       // "HELP"
//
// A key that is not invertible still encrypts; Decrypt then reports
// matrix.ErrNotInvertible. Use WithRequireInvertible to reject such keys up
// front.
//
// The Hill cipher is a classical, educational cipher. It is linear and falls
// to a known-plaintext attack; do not use it to protect data.
package cipher
