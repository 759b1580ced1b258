// SPDX-License-Identifier: MIT
// Package multivector: sentinel error set.
// Public operations return these sentinels (optionally wrapped with method
// context); tests match them via errors.Is. Internal slot arithmetic never
// reports errors: an out-of-range slot there is a defect and panics.

package multivector

import (
	"errors"
	"fmt"
)

var (
	// ErrLength indicates a coefficient slice whose length is not Size().
	ErrLength = errors.New("multivector: coefficient count does not match signature size")

	// ErrSignatureMismatch indicates operands built on different signatures.
	ErrSignatureMismatch = errors.New("multivector: signature mismatch")

	// ErrNilMultivector indicates a nil receiver or operand.
	ErrNilMultivector = errors.New("multivector: nil multivector")

	// ErrOutOfRange indicates a slot or mask outside [0, Size()).
	ErrOutOfRange = errors.New("multivector: index out of range")

	// ErrGradeOutOfRange indicates a grade outside [0, Dim()].
	ErrGradeOutOfRange = errors.New("multivector: grade out of range")

	// ErrNaNInf indicates a NaN or ±Inf coefficient under WithValidateNaNInf.
	ErrNaNInf = errors.New("multivector: NaN or Inf encountered")
)

// mvErrorf wraps err with the method name for diagnostics.
func mvErrorf(method string, err error) error {
	return fmt.Errorf("Multivector.%s: %w", method, err)
}
