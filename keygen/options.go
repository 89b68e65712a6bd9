// SPDX-License-Identifier: MIT

// Package keygen: functional configuration.
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).

package keygen

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxAttempts bounds rejection sampling of whole matrices.
	// With ~30% of draws invertible, 200 failures in a row is ~1e-31.
	DefaultMaxAttempts = 200

	// DefaultArgonTime is the Argon2id pass count used by Derive.
	DefaultArgonTime uint32 = 1

	// DefaultArgonMemory is the Argon2id memory cost in KiB used by Derive.
	DefaultArgonMemory uint32 = 64 * 1024

	// DefaultArgonThreads is the Argon2id parallelism used by Derive.
	DefaultArgonThreads uint8 = 4
)

// DefaultSalt domain-separates Derive from other uses of the same passphrase.
var DefaultSalt = []byte("hill/keygen/v1")

// seedLen is the Argon2id output length keying the XOF.
const seedLen = 32

// Option configures key generation.
type Option func(*options)

type options struct {
	maxAttempts  int
	salt         []byte
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

func defaultOptions() options {
	return options{
		maxAttempts:  DefaultMaxAttempts,
		salt:         DefaultSalt,
		argonTime:    DefaultArgonTime,
		argonMemory:  DefaultArgonMemory,
		argonThreads: DefaultArgonThreads,
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxAttempts bounds the number of candidate matrices drawn.
// Panics if k <= 0.
func WithMaxAttempts(k int) Option {
	if k <= 0 {
		panic(fmt.Sprintf("keygen: WithMaxAttempts(%d): must be > 0", k))
	}

	return func(o *options) { o.maxAttempts = k }
}

// WithSalt overrides DefaultSalt for Derive. Panics on an empty salt.
func WithSalt(salt []byte) Option {
	if len(salt) == 0 {
		panic("keygen: WithSalt: empty salt")
	}
	cp := append([]byte(nil), salt...)

	return func(o *options) { o.salt = cp }
}

// WithArgon2Params overrides the Argon2id cost parameters for Derive.
// Panics if any parameter is zero.
func WithArgon2Params(time, memoryKiB uint32, threads uint8) Option {
	if time == 0 || memoryKiB == 0 || threads == 0 {
		panic(fmt.Sprintf("keygen: WithArgon2Params(%d,%d,%d): parameters must be > 0", time, memoryKiB, threads))
	}

	return func(o *options) {
		o.argonTime = time
		o.argonMemory = memoryKiB
		o.argonThreads = threads
	}
}
