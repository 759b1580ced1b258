// SPDX-License-Identifier: MIT

package multivector

import "fmt"

// GradeRange returns the slot window [start, start+n) holding grade g.
func (mv *Multivector[T]) GradeRange(g int) (start, n int, err error) {
	if g < 0 || g > mv.sig.Dim() {
		return 0, 0, mvErrorf("GradeRange", fmt.Errorf("grade %d: %w", g, ErrGradeOutOfRange))
	}
	start, n = mv.table.GradeRange(g)

	return start, n, nil
}

// Grade returns a copy of the grade-g coefficients, in slot order.
// Complexity: O(C(Dim(), g)).
func (mv *Multivector[T]) Grade(g int) ([]T, error) {
	start, n, err := mv.GradeRange(g)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	copy(out, mv.data[start:start+n])

	return out, nil
}

// Project returns a multivector holding only the grade-g part of mv.
func (mv *Multivector[T]) Project(g int) (*Multivector[T], error) {
	start, n, err := mv.GradeRange(g)
	if err != nil {
		return nil, err
	}
	out := newMV[T](mv.sig)
	copy(out.data[start:start+n], mv.data[start:start+n])

	return out, nil
}
