// Package algebra names the signatures in common use.
//
//	VGA(d)       Cl(d,0,0)  vanilla (Euclidean) geometric algebra
//	CGA(d)       Cl(d,1,0)  conformal-style, one extra negative generator
//	PGA(d)       Cl(d,0,1)  projective, one extra null generator
//	STA          Cl(1,3,0)  spacetime algebra
//	Complex      Cl(0,1,0)  a + bi, i² = -1
//	Dual         Cl(0,0,1)  a + bε, ε² = 0
//	Hyperbolic   Cl(1,0,0)  a + bj, j² = +1
//	Quaternion   Cl(0,2,0)  i = e1, j = e2, k = e12
//
// Every function is a stateless constructor; Lookup resolves the names
// accepted on command lines.
package algebra
