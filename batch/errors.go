// SPDX-License-Identifier: MIT

package batch

import "errors"

var (
	// ErrUnknownOp indicates an operation name or value Apply does not know.
	ErrUnknownOp = errors.New("batch: unknown operation")
)

const panicWorkersInvalid = "batch: WithWorkers: n must be >= 1"
