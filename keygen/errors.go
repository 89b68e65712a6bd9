// SPDX-License-Identifier: MIT
// Package keygen: sentinel error set. Match with errors.Is.

package keygen

import "errors"

var (
	// ErrNoInvertibleKey is returned when no invertible key was drawn within
	// the configured number of attempts.
	ErrNoInvertibleKey = errors.New("keygen: no invertible key found")

	// ErrEmptyPassphrase is returned by Derive for an empty passphrase.
	ErrEmptyPassphrase = errors.New("keygen: empty passphrase")
)
