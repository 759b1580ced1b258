// Package blade maps generator subsets to compact storage slots.
//
// A blade of an n-dimensional Clifford algebra is identified by a Mask: bit i
// is set when generator i takes part in the product. Coefficients, however,
// are stored grade-major: the scalar first, then the n vectors, then the
// C(n,2) bivectors, and so on, with masks of equal grade ordered by numeric
// value. For n = 3:
//
//	slot:  0   1   2   3   4    5    6    7
//	mask:  000 001 010 100 011  101  110  111
//	name:  1   e1  e2  e3  e12  e13  e23  e123
//
// The package provides:
//
//   - BitToBlade / BladeToBit: the naive O(2^n) bijection, kept as the
//     reference definition of the ordering.
//   - GradeOffset / GradeLen: closed-form grade boundaries for slice views.
//   - FlipByAnticommutativity: the reordering sign of a concatenated product.
//   - Table / ForDim: precomputed lookups in both directions, built once per
//     dimension and shared process-wide.
//
// Complexity:
//   - BitToBlade, BladeToBit: O(2^n) per call.
//   - NewTable: O(2^n) time and memory; Table.Slot, Table.Bits: O(1).
package blade
