// Package multivector stores elements of a Clifford algebra and multiplies
// them.
//
// A Multivector holds one coefficient per blade of its signature, in the
// grade-major slot order defined by package blade. Coefficients are any
// signed integer or floating-point type.
//
// Products:
//
//   - Inner: pairs coincident blades, weighted by the metric sign; a scalar.
//   - Outer: all ordered blade pairs i != j whose merged blade avoids the null
//     generators, signed by reordering parity and shared negative generators.
//   - Mul: Outer plus Inner injected into the scalar slot.
//   - Geometric: the full Clifford product, contracting every shared
//     generator through the metric.
//
// Mul is not the geometric product. It drops terms whose result touches a
// null generator (e1·e4 in PGA3), keeps overlapping pairs whose shared part is
// null, and ignores the reversion sign of coincident blades of grade >= 2.
// It matches Geometric on the span of scalars and non-null vectors.
//
// Operands of a binary product must share a signature; otherwise
// ErrSignatureMismatch is returned. Results are always freshly allocated.
//
// Example:
//
//	pga := signature.Must(3, 0, 1)
//	u, _ := multivector.From(pga, []float64{-0.25, 0, -0.7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
//	v, _ := multivector.From(pga, []float64{1, 0, 0, 0.3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
//	w, _ := u.Mul(v) // [-0.25, 0, -0.7, -0.075, 0, 0, 0, -0.21, ...]
package multivector
