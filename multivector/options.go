// SPDX-License-Identifier: MIT

// Package multivector: functional options for ingestion policy.

package multivector

// DefaultValidateNaNInf leaves NaN/Inf ingestion unchecked; the probes
// IsNaN/IsInf are the opt-in detection path.
const DefaultValidateNaNInf = false

// Option mutates ingestion options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers pass
// ...Option.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes From reject NaN and ±Inf coefficients with
// ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any coefficient (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
