// SPDX-License-Identifier: MIT

// Package multivector - coefficient storage & safe accessors.
//
// Purpose:
//   - Hold exactly Size() coefficients in grade-major slot order.
//   - Enforce the length invariant once at construction; operations trust it.
//   - Public accessors return errors instead of panicking.

package multivector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/signature"
	"golang.org/x/exp/constraints"
)

// Scalar is the coefficient constraint: signed integers and floats.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Multivector is a linear combination of every blade of a signature.
// data[s] is the coefficient of blade table.Bits(s); len(data) == sig.Size().
type Multivector[T Scalar] struct {
	sig   signature.Signature
	table *blade.Table
	data  []T
}

var _ fmt.Stringer = (*Multivector[float64])(nil)

// newMV allocates a zeroed multivector. Shared by every constructor.
func newMV[T Scalar](sig signature.Signature) *Multivector[T] {
	return &Multivector[T]{
		sig:   sig,
		table: sig.Table(),
		data:  make([]T, sig.Size()),
	}
}

// Zero returns the additive identity of sig. It never fails.
// Complexity: O(Size()).
func Zero[T Scalar](sig signature.Signature) *Multivector[T] {
	return newMV[T](sig)
}

// From copies coeffs, given in grade-major slot order, into a new
// multivector.
// Implementation:
//   - Stage 1: len(coeffs) must equal sig.Size(); else ErrLength.
//   - Stage 2: under WithValidateNaNInf, reject NaN/±Inf with ErrNaNInf.
//   - Stage 3: copy; the caller keeps ownership of coeffs.
//
// Complexity: O(Size()).
func From[T Scalar](sig signature.Signature, coeffs []T, opts ...Option) (*Multivector[T], error) {
	if len(coeffs) != sig.Size() {
		return nil, mvErrorf("From", fmt.Errorf("%w: got %d, want %d", ErrLength, len(coeffs), sig.Size()))
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for s, c := range coeffs {
			if isNaN(c) || isInf(c) {
				return nil, mvErrorf("From", fmt.Errorf("slot %d: %w", s, ErrNaNInf))
			}
		}
	}
	mv := newMV[T](sig)
	copy(mv.data, coeffs)

	return mv, nil
}

// Basis returns the unit blade m of sig.
func Basis[T Scalar](sig signature.Signature, m blade.Mask) (*Multivector[T], error) {
	if m >= blade.Mask(sig.Size()) {
		return nil, mvErrorf("Basis", ErrOutOfRange)
	}
	mv := newMV[T](sig)
	mv.data[mv.table.Slot(m)] = 1

	return mv, nil
}

// Signature returns the signature the multivector belongs to.
func (mv *Multivector[T]) Signature() signature.Signature { return mv.sig }

// Len returns the number of coefficients, Signature().Size().
func (mv *Multivector[T]) Len() int { return len(mv.data) }

// Coefficients returns a copy of the coefficients in slot order, or nil for a
// nil receiver.
func (mv *Multivector[T]) Coefficients() []T {
	if mv == nil {
		return nil
	}
	out := make([]T, len(mv.data))
	copy(out, mv.data)

	return out
}

// At returns the coefficient at slot s.
func (mv *Multivector[T]) At(s int) (T, error) {
	if s < 0 || s >= len(mv.data) {
		var zero T
		return zero, mvErrorf("At", fmt.Errorf("slot %d: %w", s, ErrOutOfRange))
	}

	return mv.data[s], nil
}

// Set writes v at slot s.
func (mv *Multivector[T]) Set(s int, v T) error {
	if s < 0 || s >= len(mv.data) {
		return mvErrorf("Set", fmt.Errorf("slot %d: %w", s, ErrOutOfRange))
	}
	mv.data[s] = v

	return nil
}

// Blade returns the coefficient of blade m.
func (mv *Multivector[T]) Blade(m blade.Mask) (T, error) {
	if m >= blade.Mask(len(mv.data)) {
		var zero T
		return zero, mvErrorf("Blade", fmt.Errorf("mask %b: %w", m, ErrOutOfRange))
	}

	return mv.data[mv.table.Slot(m)], nil
}

// SetBlade writes v as the coefficient of blade m.
func (mv *Multivector[T]) SetBlade(m blade.Mask, v T) error {
	if m >= blade.Mask(len(mv.data)) {
		return mvErrorf("SetBlade", fmt.Errorf("mask %b: %w", m, ErrOutOfRange))
	}
	mv.data[mv.table.Slot(m)] = v

	return nil
}

// Clone returns an independent copy. Cloning nil yields nil.
func (mv *Multivector[T]) Clone() *Multivector[T] {
	if mv == nil {
		return nil
	}
	out := newMV[T](mv.sig)
	copy(out.data, mv.data)

	return out
}

// IsNaN reports whether any coefficient is NaN. Always false for integers.
func (mv *Multivector[T]) IsNaN() bool {
	for _, c := range mv.data {
		if isNaN(c) {
			return true
		}
	}

	return false
}

// IsInf reports whether any coefficient is ±Inf. Always false for integers.
func (mv *Multivector[T]) IsInf() bool {
	for _, c := range mv.data {
		if isInf(c) {
			return true
		}
	}

	return false
}

// Equal reports whether b has the same signature and identical coefficients.
// NaN never equals NaN here; use AllClose for reference comparisons.
func (mv *Multivector[T]) Equal(b *Multivector[T]) bool {
	if mv == nil || b == nil {
		return mv == b
	}
	if mv.sig != b.sig {
		return false
	}
	for s := range mv.data {
		if mv.data[s] != b.data[s] {
			return false
		}
	}

	return true
}

// AllClose reports whether every coefficient of mv and b differs by at most
// eps. A slot where both sides are NaN counts as close; infinities must match
// exactly.
func (mv *Multivector[T]) AllClose(b *Multivector[T], eps float64) bool {
	if mv == nil || b == nil {
		return mv == b
	}
	if mv.sig != b.sig {
		return false
	}
	for s := range mv.data {
		x, y := float64(mv.data[s]), float64(b.data[s])
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			if !(math.IsNaN(x) && math.IsNaN(y)) {
				return false
			}
		case math.IsInf(x, 0) || math.IsInf(y, 0):
			if x != y {
				return false
			}
		case math.Abs(x-y) > eps:
			return false
		}
	}

	return true
}

// Term is one nonzero coefficient with its blade.
type Term[T Scalar] struct {
	Mask  blade.Mask
	Name  string
	Value T
}

// Terms returns the nonzero coefficients in slot order.
func (mv *Multivector[T]) Terms() []Term[T] {
	var out []Term[T]
	for s, c := range mv.data {
		if c == 0 {
			continue
		}
		m := mv.table.Bits(s)
		out = append(out, Term[T]{Mask: m, Name: blade.Name(m), Value: c})
	}

	return out
}

// String formats the coefficients as "[c0, c1, ...]" in slot order.
func (mv *Multivector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for s, c := range mv.data {
		if s > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c)
	}
	sb.WriteByte(']')

	return sb.String()
}

func isNaN[T Scalar](x T) bool { return math.IsNaN(float64(x)) }

func isInf[T Scalar](x T) bool { return math.IsInf(float64(x), 0) }
