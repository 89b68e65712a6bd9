// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/hill/codec"
	"github.com/katalvlaran/hill/keygen"
	"github.com/katalvlaran/hill/matrix"
)

var log = logging.Logger("hill/cipher")

// Cipher is one Hill cipher session: a key and, when it exists, its inverse.
//
// Both matrices are private copies fixed at construction, so a Cipher is
// immutable and safe for concurrent use.
type Cipher struct {
	key     *matrix.Dense
	inv     *matrix.Dense // nil when the key is singular
	invErr  error         // why inv is nil; returned by Decrypt
	n       int
	padding byte
}

// New builds a session for key.
// MAIN DESCRIPTION:
//   - Validates the block size, copies the key and computes K⁻¹ once.
//
// Behavior highlights:
//   - A singular key is accepted by default: Encrypt works, Decrypt and
//     InverseKey report matrix.ErrNotInvertible.
//   - WithRequireInvertible turns that into a construction error.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrInvalidBlockSize,
//     matrix.ErrNotInvertible (only with WithRequireInvertible).
func New(key matrix.Matrix, opts ...Option) (*Cipher, error) {
	if err := matrix.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("cipher.New: %w", err)
	}
	o := gatherOptions(opts...)

	k, err := own(key)
	if err != nil {
		return nil, fmt.Errorf("cipher.New: %w", err)
	}
	c := &Cipher{key: k, n: k.Size(), padding: o.padding}
	c.inv, c.invErr = matrix.Inverse(k)
	if c.invErr != nil {
		if o.requireInvertible {
			return nil, fmt.Errorf("cipher.New: %w", c.invErr)
		}
		log.Warnw("key is not invertible; decryption disabled",
			"n", c.n, "fingerprint", keygen.Fingerprint(k), "err", c.invErr)
	}
	log.Debugw("cipher ready", "n", c.n, "fingerprint", keygen.Fingerprint(k), "invertible", c.inv != nil)

	return c, nil
}

// own returns a private *Dense copy of key.
func own(key matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := key.(*matrix.Dense); ok {
		return d.Copy(), nil
	}
	n := key.Rows()
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			v, err := key.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// BlockSize returns n.
func (c *Cipher) BlockSize() int { return c.n }

// Invertible reports whether Decrypt is available.
func (c *Cipher) Invertible() bool { return c.inv != nil }

// Key returns a copy of the key.
func (c *Cipher) Key() *matrix.Dense { return c.key.Copy() }

// InverseKey returns a copy of K⁻¹, or matrix.ErrNotInvertible.
func (c *Cipher) InverseKey() (*matrix.Dense, error) {
	if c.inv == nil {
		return nil, c.invErr
	}

	return c.inv.Copy(), nil
}

// Fingerprint identifies the key without revealing it (see keygen.Fingerprint).
func (c *Cipher) Fingerprint() string { return keygen.Fingerprint(c.key) }

// Encrypt turns raw plaintext into ciphertext.
// MAIN DESCRIPTION:
//   - Strip non-letters, upper-case, pad with the filler to a whole block,
//     then apply K block by block.
//
// Behavior highlights:
//   - Works with singular keys.
//   - Text without letters encrypts to "".
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	clean, err := codec.Clean(plaintext, c.n, c.padding)
	if err != nil {
		return "", fmt.Errorf("Encrypt: %w", err)
	}

	return c.apply(c.key, clean, "Encrypt")
}

// Decrypt turns ciphertext back into (padded) plaintext.
// MAIN DESCRIPTION:
//   - Strip non-letters and upper-case (no padding), then apply K⁻¹.
//
// Errors:
//   - matrix.ErrNotInvertible for a singular key.
//   - ErrMisalignedInput when the letter count is not a multiple of n.
//
// Notes:
//   - Padding added by Encrypt is not removed: the filler is a real letter
//     and cannot be told apart from plaintext.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if c.inv == nil {
		return "", fmt.Errorf("Decrypt: %w", c.invErr)
	}

	return c.apply(c.inv, codec.Letters(ciphertext), "Decrypt")
}

// apply runs TransformText with m over clean upper-case text.
func (c *Cipher) apply(m *matrix.Dense, clean, op string) (string, error) {
	idx, err := codec.ToIndices(clean)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	out, err := TransformText(m, idx, c.n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	text, err := codec.ToText(out)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return text, nil
}
