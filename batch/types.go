// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/clifford/multivector"
)

// Op selects the product Apply evaluates.
type Op int

const (
	// OpAdd is the coefficient-wise sum.
	OpAdd Op = iota
	// OpInner is the inner product; results carry it in the scalar slot.
	OpInner
	// OpOuter is the outer product.
	OpOuter
	// OpMul is outer plus inner.
	OpMul
	// OpGeometric is the full Clifford product.
	OpGeometric
)

var opNames = [...]string{
	OpAdd:       "add",
	OpInner:     "inner",
	OpOuter:     "outer",
	OpMul:       "mul",
	OpGeometric: "geometric",
}

// String returns the lower-case operation name.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	return opNames[op]
}

// ParseOp is the inverse of String (case-insensitive).
func ParseOp(name string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == key {
			return Op(i), nil
		}
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", name, ErrUnknownOp)
}

// Pair is one (left, right) operand pair.
type Pair[T multivector.Scalar] struct {
	Left, Right *multivector.Multivector[T]
}

// Option configures Apply.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the number of concurrently evaluated pairs.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
