// SPDX-License-Identifier: MIT

package signature

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/clifford/blade"
)

// Signature is the triple (positive, negative, zero) of generator counts.
// The zero value is Cl(0,0,0), the real numbers.
type Signature struct {
	positive int // generators squaring to +1
	negative int // generators squaring to -1
	zero     int // generators squaring to 0
}

// New validates the counts and returns the signature.
// Errors: ErrNegativeCount, ErrDimTooLarge.
func New(positive, negative, zero int) (Signature, error) {
	if positive < 0 || negative < 0 || zero < 0 {
		return Signature{}, fmt.Errorf("New(%d,%d,%d): %w", positive, negative, zero, ErrNegativeCount)
	}
	if positive+negative+zero > blade.MaxDim {
		return Signature{}, fmt.Errorf("New(%d,%d,%d): %w", positive, negative, zero, ErrDimTooLarge)
	}

	return Signature{positive: positive, negative: negative, zero: zero}, nil
}

// Must is New that panics on invalid counts. Intended for constants.
func Must(positive, negative, zero int) Signature {
	s, err := New(positive, negative, zero)
	if err != nil {
		panic(err)
	}

	return s
}

// Positive returns the number of generators squaring to +1.
func (s Signature) Positive() int { return s.positive }

// Negative returns the number of generators squaring to -1.
func (s Signature) Negative() int { return s.negative }

// Zero returns the number of generators squaring to 0.
func (s Signature) Zero() int { return s.zero }

// Dim returns the total number of generators.
func (s Signature) Dim() int { return s.positive + s.negative + s.zero }

// Size returns 2^Dim(), the number of blades and coefficients.
func (s Signature) Size() int { return 1 << uint(s.Dim()) }

// NegativeBits returns the mask of negative generators, placed right after
// the positive ones.
func (s Signature) NegativeBits() blade.Mask {
	return (blade.Mask(1)<<uint(s.negative) - 1) << uint(s.positive)
}

// ZeroBits returns the mask of null generators, placed after the negative ones.
func (s Signature) ZeroBits() blade.Mask {
	return (blade.Mask(1)<<uint(s.zero) - 1) << uint(s.positive+s.negative)
}

// ZeroByForm reports whether m contains a null generator.
func (s Signature) ZeroByForm(m blade.Mask) bool {
	return m&s.ZeroBits() != 0
}

// FlipByForm reports whether m contains an odd number of negative generators.
func (s Signature) FlipByForm(m blade.Mask) bool {
	return bits.OnesCount64(uint64(m&s.NegativeBits()))%2 != 0
}

// Square returns the square of generator i: +1, -1 or 0.
func (s Signature) Square(i int) (int, error) {
	switch {
	case i < 0 || i >= s.Dim():
		return 0, fmt.Errorf("Square(%d): %w", i, ErrGeneratorOutOfRange)
	case i < s.positive:
		return 1, nil
	case i < s.positive+s.negative:
		return -1, nil
	default:
		return 0, nil
	}
}

// Table returns the shared blade table for Dim(). New guarantees the
// dimension is buildable, so failure here is a defect.
func (s Signature) Table() *blade.Table {
	t, err := blade.ForDim(s.Dim())
	if err != nil {
		panic(err)
	}

	return t
}

// String formats the signature as "Cl(p,q,r)".
func (s Signature) String() string {
	return fmt.Sprintf("Cl(%d,%d,%d)", s.positive, s.negative, s.zero)
}

// Parse reads the String form "Cl(p,q,r)". The prefix is case-insensitive
// and spaces around the counts are ignored.
func Parse(text string) (Signature, error) {
	t := strings.TrimSpace(text)
	if len(t) < 3 || !strings.EqualFold(t[:3], "cl(") || !strings.HasSuffix(t, ")") {
		return Signature{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
	}
	parts := strings.Split(t[3:len(t)-1], ",")
	if len(parts) != 3 {
		return Signature{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
	}
	var counts [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Signature{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
		}
		counts[i] = n
	}

	return New(counts[0], counts[1], counts[2])
}
