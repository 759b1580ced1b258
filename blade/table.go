// SPDX-License-Identifier: MIT

// Package blade - precomputed slot/mask lookups.
//
// Purpose:
//   - Replace the O(2^n) counting of BitToBlade/BladeToBit with O(1) lookups.
//   - Build each dimension once per process and share it; tables are read-only
//     after construction, so concurrent readers need no locking.

package blade

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Table holds both directions of the blade bijection for one dimension.
// slots[m] is the storage slot of mask m; masks[s] is the mask stored at s.
type Table struct {
	dim   int
	slots []int
	masks []Mask
}

var (
	tables sync.Map           // int -> *Table
	builds singleflight.Group // dedupes concurrent first builds per dim
)

// NewTable builds the lookup table for dim.
// Implementation:
//   - Stage 1: validate 0 <= dim <= MaxDim.
//   - Stage 2: seed one cursor per grade with GradeOffset(dim, g).
//   - Stage 3: visit masks in numeric order; each takes the next slot of its
//     grade. Numeric visiting order gives the within-grade tie-break.
//
// Complexity: O(2^dim) time and memory.
func NewTable(dim int) (*Table, error) {
	if dim < 0 || dim > MaxDim {
		return nil, fmt.Errorf("NewTable(%d): %w", dim, ErrDimOutOfRange)
	}
	size := 1 << uint(dim)
	next := make([]int, dim+1)
	for g := range next {
		next[g] = GradeOffset(dim, g)
	}
	t := &Table{
		dim:   dim,
		slots: make([]int, size),
		masks: make([]Mask, size),
	}
	for m := 0; m < size; m++ {
		g := Grade(Mask(m))
		s := next[g]
		next[g]++
		t.slots[m] = s
		t.masks[s] = Mask(m)
	}

	return t, nil
}

// ForDim returns the shared table for dim, building it on first use.
// Concurrent first callers for the same dim wait on a single build.
func ForDim(dim int) (*Table, error) {
	if v, ok := tables.Load(dim); ok {
		return v.(*Table), nil
	}
	v, err, _ := builds.Do(strconv.Itoa(dim), func() (any, error) {
		if v, ok := tables.Load(dim); ok {
			return v, nil
		}
		t, err := NewTable(dim)
		if err != nil {
			return nil, err
		}
		tables.Store(dim, t)

		return t, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Table), nil
}

// Dim returns the number of generators the table was built for.
func (t *Table) Dim() int { return t.dim }

// Size returns 2^Dim(), the number of blades.
func (t *Table) Size() int { return len(t.masks) }

// Slot returns the storage slot of m. Panics when m >= Size().
func (t *Table) Slot(m Mask) int {
	if m >= Mask(len(t.slots)) {
		panic(panicMaskOutOfRange)
	}

	return t.slots[m]
}

// Bits returns the mask stored at slot s. Panics when s is out of range.
func (t *Table) Bits(s int) Mask {
	if s < 0 || s >= len(t.masks) {
		panic(panicSlotOutOfRange)
	}

	return t.masks[s]
}

// GradeRange returns the first slot and the blade count of grade g.
// Grades outside [0, Dim()] yield (Size(), 0).
func (t *Table) GradeRange(g int) (start, n int) {
	if g < 0 || g > t.dim {
		return len(t.masks), 0
	}

	return GradeOffset(t.dim, g), GradeLen(t.dim, g)
}
