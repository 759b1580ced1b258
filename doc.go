// Package clifford is a generalized geometric (Clifford) algebra toolkit for
// any signature Cl(p,q,r): p generators square to +1, q to -1 and r to 0.
//
// Everything is organized under a handful of subpackages:
//
//	blade/       - generator masks, the grade-major slot bijection & shared lookup tables
//	signature/   - the (p,q,r) descriptor, metric sign & null tests
//	algebra/     - named algebras: VGA, PGA, CGA, STA, complex, dual, quaternion…
//	multivector/ - generic coefficient container; Add, Inner, Outer, Mul, Geometric
//	batch/       - many independent products evaluated on a bounded worker group
//
// Quick example:
//
//	sig, _ := algebra.PGA(3)
//	u, _ := multivector.From(sig, []float64{-0.25, 0, -0.7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
//	v, _ := multivector.From(sig, []float64{1, 0, 0, 0.3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
//	w, _ := u.Mul(v)
//	fmt.Println(w.Terms())
//
// Complexity: products are O(4^n) for n generators; every table of slot
// lookups is built once per dimension and shared process-wide.
//
// The cliffcalc command (cmd/cliffcalc) exposes the products on the command
// line.
package clifford
