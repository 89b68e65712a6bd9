// SPDX-License-Identifier: MIT

// Package cipher: functional configuration for Cipher sessions.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package cipher

import (
	"fmt"

	"github.com/katalvlaran/hill/codec"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadding is the filler appended to plaintext up to a whole block.
	DefaultPadding = codec.DefaultFiller

	// DefaultRequireInvertible keeps singular keys usable for encryption.
	DefaultRequireInvertible = false
)

// Option configures a Cipher.
type Option func(*options)

type options struct {
	padding           byte
	requireInvertible bool
}

func defaultOptions() options {
	return options{
		padding:           DefaultPadding,
		requireInvertible: DefaultRequireInvertible,
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

// WithPadding sets the filler letter used by Encrypt.
// Accepts 'A'..'Z' or 'a'..'z' (stored upper-case); panics otherwise.
func WithPadding(letter byte) Option {
	if letter >= 'a' && letter <= 'z' {
		letter = letter - 'a' + 'A'
	}
	if !codec.IsLetter(letter) {
		panic(fmt.Sprintf("cipher: WithPadding(%q): must be a letter", letter))
	}

	return func(o *options) { o.padding = letter }
}

// WithRequireInvertible makes New fail with matrix.ErrNotInvertible for keys
// that cannot decrypt.
func WithRequireInvertible() Option {
	return func(o *options) { o.requireInvertible = true }
}
