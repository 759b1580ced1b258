// Package signature describes the metric of a Clifford algebra.
//
// A Signature counts the generators squaring to +1 (positive), -1 (negative)
// and 0 (zero). Generator bits are laid out contiguously in that order:
//
//	bit:    0 .. p-1 | p .. p+q-1 | p+q .. p+q+r-1
//	square:    +1    |     -1     |       0
//
// From the layout follow the two form predicates used by every product:
// ZeroByForm (a blade touches a null generator) and FlipByForm (a blade holds
// an odd number of negative generators).
//
// Signatures are immutable values; compare them with ==.
package signature
