// SPDX-License-Identifier: MIT

package signature

import "errors"

var (
	// ErrNegativeCount indicates a generator count below zero.
	ErrNegativeCount = errors.New("signature: generator count must be >= 0")

	// ErrDimTooLarge indicates positive+negative+zero exceeds blade.MaxDim.
	ErrDimTooLarge = errors.New("signature: dimension too large")

	// ErrGeneratorOutOfRange indicates a generator index outside [0, Dim()).
	ErrGeneratorOutOfRange = errors.New("signature: generator index out of range")

	// ErrSyntax indicates Parse could not read a "Cl(p,q,r)" string.
	ErrSyntax = errors.New("signature: invalid syntax")
)
