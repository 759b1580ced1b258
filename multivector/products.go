// SPDX-License-Identifier: MIT

// Package multivector - linear operations and products.
//
// Every binary operation validates operands once (non-nil, same signature)
// and then trusts the length invariant. Loops run over generator masks in
// ascending numeric order, left operand outermost; results are fresh values.

package multivector

import (
	"github.com/katalvlaran/clifford/blade"
)

// validatePair rejects nil operands and mismatched signatures.
func validatePair[T Scalar](method string, a, b *Multivector[T]) error {
	if a == nil || b == nil {
		return mvErrorf(method, ErrNilMultivector)
	}
	if a.sig != b.sig {
		return mvErrorf(method, ErrSignatureMismatch)
	}

	return nil
}

// Add returns mv + b, coefficient by coefficient.
func (mv *Multivector[T]) Add(b *Multivector[T]) (*Multivector[T], error) {
	if err := validatePair("Add", mv, b); err != nil {
		return nil, err
	}
	out := mv.Clone()
	for s := range out.data {
		out.data[s] += b.data[s]
	}

	return out, nil
}

// Sub returns mv - b.
func (mv *Multivector[T]) Sub(b *Multivector[T]) (*Multivector[T], error) {
	if err := validatePair("Sub", mv, b); err != nil {
		return nil, err
	}
	out := mv.Clone()
	for s := range out.data {
		out.data[s] -= b.data[s]
	}

	return out, nil
}

// Neg returns -mv, or nil for a nil receiver.
func (mv *Multivector[T]) Neg() *Multivector[T] {
	if mv == nil {
		return nil
	}
	out := newMV[T](mv.sig)
	for s, c := range mv.data {
		out.data[s] = -c
	}

	return out
}

// Scale returns k·mv, or nil for a nil receiver.
func (mv *Multivector[T]) Scale(k T) *Multivector[T] {
	if mv == nil {
		return nil
	}
	out := newMV[T](mv.sig)
	for s, c := range mv.data {
		out.data[s] = k * c
	}

	return out
}

// AddScalar returns mv with k added to the grade-0 coefficient only.
// A nil receiver yields nil.
func (mv *Multivector[T]) AddScalar(k T) *Multivector[T] {
	if mv == nil {
		return nil
	}
	out := mv.Clone()
	out.data[0] += k

	return out
}

// Inner returns the contraction of coincident blades.
// Implementation:
//   - For every slot s with mask m = Bits(s): skip when m touches a null
//     generator; subtract mv[s]*b[s] when m holds an odd number of negative
//     generators; add it otherwise.
//
// Null blades contribute nothing whatever their coefficients.
// Complexity: O(Size()).
func (mv *Multivector[T]) Inner(b *Multivector[T]) (T, error) {
	var v T
	if err := validatePair("Inner", mv, b); err != nil {
		return v, err
	}
	for s := range mv.data {
		m := mv.table.Bits(s)
		switch {
		case mv.sig.ZeroByForm(m):
			continue
		case mv.sig.FlipByForm(m):
			v -= mv.data[s] * b.data[s]
		default:
			v += mv.data[s] * b.data[s]
		}
	}

	return v, nil
}

// Outer returns the wedge-style product of mv and b.
// Implementation:
//   - For every ordered mask pair (i, j) with i != j whose merge k = i^j
//     avoids the null generators:
//     val = mv[Slot(i)] * b[Slot(j)], negated iff the reordering parity of
//     (i, j) differs from the metric sign of the shared generators i&j;
//     accumulate val into Slot(k).
//
// Overlapping pairs (i&j != 0) are not excluded; only the null check drops
// terms.
// Complexity: O(Size()²).
func (mv *Multivector[T]) Outer(b *Multivector[T]) (*Multivector[T], error) {
	if err := validatePair("Outer", mv, b); err != nil {
		return nil, err
	}
	out := newMV[T](mv.sig)
	t := mv.table
	size := blade.Mask(len(mv.data))
	for i := blade.Mask(0); i < size; i++ {
		lhs := mv.data[t.Slot(i)]
		for j := blade.Mask(0); j < size; j++ {
			k := i ^ j
			if i == j || mv.sig.ZeroByForm(k) {
				continue
			}
			val := lhs * b.data[t.Slot(j)]
			if blade.FlipByAnticommutativity(i, j) != mv.sig.FlipByForm(i&j) {
				val = -val
			}
			out.data[t.Slot(k)] += val
		}
	}

	return out, nil
}

// Mul returns Outer(b) with Inner(b) added to the scalar slot.
//
// This reproduces the established outer-plus-inner contract. It equals the
// geometric product only on the span of scalars and non-null vectors; see
// Geometric for the full product.
func (mv *Multivector[T]) Mul(b *Multivector[T]) (*Multivector[T], error) {
	if err := validatePair("Mul", mv, b); err != nil {
		return nil, err
	}
	out, err := mv.Outer(b)
	if err != nil {
		return nil, err
	}
	in, err := mv.Inner(b)
	if err != nil {
		return nil, err
	}
	out.data[0] += in

	return out, nil
}

// Geometric returns the Clifford product of mv and b.
// Implementation:
//   - For every ordered mask pair (i, j): skip when the shared generators
//     i&j include a null one (their square is zero); otherwise
//     val = mv[Slot(i)] * b[Slot(j)], negated iff the reordering parity of
//     (i, j) differs from the parity of shared negative generators;
//     accumulate val into Slot(i^j).
//
// The product is associative and distributes over Add.
// Complexity: O(Size()²).
func (mv *Multivector[T]) Geometric(b *Multivector[T]) (*Multivector[T], error) {
	if err := validatePair("Geometric", mv, b); err != nil {
		return nil, err
	}
	out := newMV[T](mv.sig)
	t := mv.table
	size := blade.Mask(len(mv.data))
	for i := blade.Mask(0); i < size; i++ {
		lhs := mv.data[t.Slot(i)]
		for j := blade.Mask(0); j < size; j++ {
			shared := i & j
			if mv.sig.ZeroByForm(shared) {
				continue
			}
			val := lhs * b.data[t.Slot(j)]
			if blade.FlipByAnticommutativity(i, j) != mv.sig.FlipByForm(shared) {
				val = -val
			}
			out.data[t.Slot(i^j)] += val
		}
	}

	return out, nil
}
