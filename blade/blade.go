// SPDX-License-Identifier: MIT

package blade

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxDim is the largest dimension a Table may be built for. A table holds
// 2^MaxDim entries per direction.
const MaxDim = 20

// Mask is a generator bitmask: bit i is set when generator i is a factor of
// the blade. The bit position identifies the generator, not a storage slot.
type Mask uint64

// Grade returns the number of generators in m.
func Grade(m Mask) int {
	return bits.OnesCount64(uint64(m))
}

// Binomial returns C(n,k), or 0 when k is outside [0,n].
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		// c*(n-i) is always divisible by i+1 at this point.
		c = c * (n - i) / (i + 1)
	}

	return c
}

// GradeOffset returns the first storage slot of grade g in a dim-dimensional
// algebra: C(dim,0) + ... + C(dim,g-1). Grades above dim yield 2^dim.
func GradeOffset(dim, g int) int {
	off := 0
	for i := 0; i < g && i <= dim; i++ {
		off += Binomial(dim, i)
	}

	return off
}

// GradeLen returns the number of blades of grade g: C(dim,g).
func GradeLen(dim, g int) int {
	return Binomial(dim, g)
}

// BitToBlade returns the storage slot of mask m in a dim-dimensional algebra.
// Implementation:
//   - Count every i in [0, 2^dim) that sorts before m: lower grade, or equal
//     grade and numerically smaller.
//
// Complexity: O(2^dim). Use Table for repeated lookups.
func BitToBlade(m Mask, dim int) int {
	if dim < 0 {
		panic(panicMaskOutOfRange)
	}
	size := Mask(1) << uint(dim)
	if m >= size {
		panic(panicMaskOutOfRange)
	}
	g := Grade(m)
	n := 0
	for i := Mask(0); i < size; i++ {
		gi := Grade(i)
		if gi < g || (gi == g && i < m) {
			n++
		}
	}

	return n
}

// BladeToBit is the inverse of BitToBlade.
// Implementation:
//   - Stage 1: walk cumulative binomials to the grade g whose range
//     [base, base+C(dim,g)) holds slot.
//   - Stage 2: scan masks in numeric order, counting those of grade g, until
//     the (slot-base)-th one.
//
// Panics when slot is outside [0, 2^dim).
// Complexity: O(2^dim).
func BladeToBit(slot, dim int) Mask {
	if dim < 0 || slot < 0 || slot >= 1<<uint(dim) {
		panic(panicSlotOutOfRange)
	}
	g, base, c := 0, 0, 1
	for base+c <= slot {
		base += c
		c = c * (dim - g) / (g + 1)
		g++
	}
	rank := slot - base
	for m := Mask(0); ; m++ {
		if Grade(m) != g {
			continue
		}
		if rank == 0 {
			return m
		}
		rank--
	}
}

// FlipByAnticommutativity reports whether reordering the generators of lhs
// followed by those of rhs into ascending order takes an odd number of swaps.
// Each generator of lhs must pass every lower-indexed generator of rhs.
func FlipByAnticommutativity(lhs, rhs Mask) bool {
	lhs >>= 1
	flips := 0
	for lhs != 0 {
		flips += bits.OnesCount64(uint64(lhs & rhs))
		lhs >>= 1
	}

	return flips%2 != 0
}

// Name labels m with one-based generator indices: "1" for the scalar, "e13"
// for generators 1 and 3. Indices are comma-separated once any exceeds 9
// ("e2,11").
func Name(m Mask) string {
	if m == 0 {
		return "1"
	}
	idx := make([]string, 0, Grade(m))
	wide := false
	for r := uint64(m); r != 0; r &= r - 1 {
		i := bits.TrailingZeros64(r) + 1
		if i > 9 {
			wide = true
		}
		idx = append(idx, strconv.Itoa(i))
	}
	sep := ""
	if wide {
		sep = ","
	}

	return "e" + strings.Join(idx, sep)
}
