// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/clifford/multivector"
	"golang.org/x/sync/errgroup"
)

// Apply evaluates op on every pair and returns the results in input order.
// Implementation:
//   - Stage 1: reject unknown ops before spawning anything.
//   - Stage 2: one errgroup task per pair, at most WithWorkers at a time;
//     each task checks the context, computes, and writes its own index.
//   - Stage 3: the first error (operand mismatch or ctx cancellation) is
//     returned with the failing pair index; results are discarded.
func Apply[T multivector.Scalar](ctx context.Context, op Op, pairs []Pair[T], opts ...Option) ([]*multivector.Multivector[T], error) {
	if op < OpAdd || op > OpGeometric {
		return nil, fmt.Errorf("Apply(%s): %w", op, ErrUnknownOp)
	}
	o := gatherOptions(opts...)
	results := make([]*multivector.Multivector[T], len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := evaluate(op, pairs[i].Left, pairs[i].Right)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx only on task failure; a parent cancellation that
	// raced the last task is still reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// evaluate dispatches a single product.
func evaluate[T multivector.Scalar](op Op, a, b *multivector.Multivector[T]) (*multivector.Multivector[T], error) {
	if a == nil {
		return nil, multivector.ErrNilMultivector
	}
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpInner:
		v, err := a.Inner(b)
		if err != nil {
			return nil, err
		}

		return multivector.Zero[T](a.Signature()).AddScalar(v), nil
	case OpOuter:
		return a.Outer(b)
	case OpMul:
		return a.Mul(b)
	case OpGeometric:
		return a.Geometric(b)
	default:
		return nil, ErrUnknownOp
	}
}
