// SPDX-License-Identifier: MIT

package keygen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/hill/matrix"
	"github.com/katalvlaran/hill/modular"
)

var log = logging.Logger("hill/keygen")

// rejectAbove is the largest multiple of 26 that fits in a byte (9·26).
// Bytes at or above it are discarded so b%26 stays uniform.
const rejectAbove = 234

// fingerprintLen is the number of digest bytes shown by Fingerprint.
const fingerprintLen = 8

// Random draws a uniformly random invertible n×n key from r.
// A nil r means crypto/rand.Reader.
//
// Errors:
//   - matrix.ErrInvalidBlockSize, ErrNoInvertibleKey, read errors from r.
func Random(n int, r io.Reader, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateBlockSize(n); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.Reader
	}

	return sample(n, r, gatherOptions(opts...))
}

// Derive deterministically maps passphrase to an invertible n×n key.
// MAIN DESCRIPTION:
//   - Argon2id(passphrase, salt) keys a BLAKE2b XOF; cells are rejection
//     sampled from the XOF stream until the matrix is invertible.
//
// Errors:
//   - ErrEmptyPassphrase, matrix.ErrInvalidBlockSize, ErrNoInvertibleKey.
//
// Determinism:
//   - Same passphrase, salt, Argon2 parameters and n → same key.
func Derive(passphrase string, n int, opts ...Option) (*matrix.Dense, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if err := matrix.ValidateBlockSize(n); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	seed := argon2.IDKey([]byte(passphrase), o.salt, o.argonTime, o.argonMemory, o.argonThreads, seedLen)
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}
	// bind the stream to n so different sizes do not share a prefix
	if _, err = xof.Write([]byte{byte(n)}); err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}

	return sample(n, xof, o)
}

// sample fills candidates from src until one is invertible or attempts run out.
func sample(n int, src io.Reader, o options) (*matrix.Dense, error) {
	key, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 1)
	var attempt, i, j int
	for attempt = 1; attempt <= o.maxAttempts; attempt++ {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err := uniformResidue(src, buf)
				if err != nil {
					return nil, fmt.Errorf("sample: %w", err)
				}
				if err = key.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
		ok, err := matrix.IsInvertible(key)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Debugw("key generated", "n", n, "attempts", attempt, "fingerprint", Fingerprint(key))

			return key, nil
		}
	}
	log.Warnw("key generation exhausted attempts", "n", n, "attempts", o.maxAttempts)

	return nil, fmt.Errorf("after %d attempts: %w", o.maxAttempts, ErrNoInvertibleKey)
}

// uniformResidue reads bytes until one falls below rejectAbove.
func uniformResidue(src io.Reader, buf []byte) (int, error) {
	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			return 0, err
		}
		if buf[0] < rejectAbove {
			return modular.Normalize(buf[0]), nil
		}
	}
}

// Fingerprint returns a short stable identifier "NxN:<16 hex>" for a key,
// derived from BLAKE3 over the size and cells. It identifies a key in logs
// without printing the key itself; a nil key yields "nil".
func Fingerprint(m *matrix.Dense) string {
	if m == nil {
		return "nil"
	}
	n := m.Size()
	hasher := blake3.New()
	cells := make([]byte, 0, n*n+1)
	cells = append(cells, byte(n))
	for _, row := range m.ToRows() {
		for _, v := range row {
			cells = append(cells, byte(v))
		}
	}
	_, _ = hasher.Write(cells)
	sum := hasher.Sum(nil)

	return fmt.Sprintf("%dx%d:%s", n, n, hex.EncodeToString(sum[:fingerprintLen]))
}
