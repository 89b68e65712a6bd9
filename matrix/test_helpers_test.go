// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Offer an independent (Leibniz) determinant to cross-check cofactor expansion.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/hill/matrix"
	"github.com/katalvlaran/hill/modular"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the At-based fallback path instead of the
// *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an n×n *Dense or fails the test.
func MustDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustRows BUILDS a *Dense from row literals or fails the test.
func MustRows(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS m with deterministic residues in [0,25] by seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, rng.Intn(modular.Modulus)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandomInvertible DRAWS random n×n matrices from seed until one is invertible.
// Roughly 30% of uniform matrices over Z/26Z are, so this terminates fast.
func RandomInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n)
	var attempt int64
	for attempt = 0; attempt < 1000; attempt++ {
		RandomFill(t, m, seed+attempt)
		ok, err := matrix.IsInvertible(m)
		if err != nil {
			t.Fatalf("IsInvertible: %v", err)
		}
		if ok {
			return m
		}
	}
	t.Fatalf("no invertible %dx%d matrix found from seed %d", n, n, seed)

	return nil
}

// leibnizDet computes det mod 26 by summing over all permutations.
// Independent of cofactor expansion; only for small n.
func leibnizDet(rows [][]int) int {
	n := len(rows)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	total := 0
	var walk func(k, sign int)
	walk = func(k, sign int) {
		if k == n {
			prod := sign
			for i := 0; i < n; i++ {
				prod = modular.Normalize(prod * rows[i][perm[i]])
			}
			total += prod
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			s := sign
			if i != k {
				s = -sign
			}
			walk(k+1, s)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0, 1)

	return modular.Normalize(total)
}

// requireRows fails with a -want +got diff when m's cells differ from want.
func requireRows(t testing.TB, want [][]int, m *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, m.ToRows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
