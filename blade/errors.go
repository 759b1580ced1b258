// SPDX-License-Identifier: MIT

package blade

import "errors"

var (
	// ErrDimOutOfRange is returned when a table is requested for a dimension
	// below zero or above MaxDim.
	ErrDimOutOfRange = errors.New("blade: dimension out of range")
)

// Panic messages for programmer errors (indices that the storage invariants
// make unreachable).
const (
	panicSlotOutOfRange = "blade: slot out of range"
	panicMaskOutOfRange = "blade: mask out of range"
)
