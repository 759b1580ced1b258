// SPDX-License-Identifier: MIT
// Package multivector_test contains test helpers.
//
// Purpose:
//   - Small fixtures for building multivectors without error plumbing.
//   - Generators shared by the property-based tests.

package multivector_test

import (
	"testing"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/signature"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

var (
	reals = signature.Must(0, 0, 0)
	vga2  = signature.Must(2, 0, 0)
	vga3  = signature.Must(3, 0, 0)
	pga3  = signature.Must(3, 0, 1)
	sta   = signature.Must(1, 3, 0)
)

// mustFrom builds a multivector from the leading coefficients, zero-padding
// the rest, or fails the test.
func mustFrom[T multivector.Scalar](tb testing.TB, sig signature.Signature, lead ...T) *multivector.Multivector[T] {
	tb.Helper()
	coeffs := make([]T, sig.Size())
	require.LessOrEqual(tb, len(lead), len(coeffs), "too many coefficients")
	copy(coeffs, lead)
	mv, err := multivector.From(sig, coeffs)
	require.NoError(tb, err)

	return mv
}

// mustBasis returns the unit blade m or fails the test.
func mustBasis[T multivector.Scalar](tb testing.TB, sig signature.Signature, m blade.Mask) *multivector.Multivector[T] {
	tb.Helper()
	mv, err := multivector.Basis[T](sig, m)
	require.NoError(tb, err)

	return mv
}

// must unwraps a (value, error) pair, panicking on error. It takes the pair
// directly so calls read must(a.Mul(b)).
func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}

// genCoeffs yields n float coefficients in [-100, 100].
func genCoeffs(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.Float64Range(-100, 100))
}

// genIntCoeffs yields n small integer coefficients; small enough that
// triple products of 16-slot multivectors stay far from overflow.
func genIntCoeffs(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.Int64Range(-4, 4))
}

// fromSlice is From without error plumbing for property bodies. It returns
// nil when the length is wrong, which the properties treat as failure.
func fromSlice[T multivector.Scalar](sig signature.Signature, coeffs []T) *multivector.Multivector[T] {
	mv, err := multivector.From(sig, coeffs)
	if err != nil {
		return nil
	}

	return mv
}
