// Package batch evaluates many independent multivector products in parallel.
//
// Every product only reads its operands and writes a fresh result, so pairs
// can run concurrently without coordination. Apply fans the pairs out over a
// bounded errgroup, keeps results in input order and stops at the first
// failure or context cancellation.
//
//	results, err := batch.Apply(ctx, batch.OpMul, pairs, batch.WithWorkers(4))
package batch
