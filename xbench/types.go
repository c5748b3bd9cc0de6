// Package xbench defines options, results, and sentinel errors
// for the xbench subpackage of github.com/katalvlaran/extnum.
package xbench

import (
	"errors"
	"time"
)

// Sentinel errors for xbench runs.
var (
	// ErrBadSize indicates a non-positive sample size.
	ErrBadSize = errors.New("xbench: sample size must be positive")
	// ErrBadRange indicates Min > Max.
	ErrBadRange = errors.New("xbench: min must not exceed max")
	// ErrMismatch indicates the primitive and extended folds disagreed,
	// which would mean the extended algebra diverged from the primitive.
	ErrMismatch = errors.New("xbench: primitive and extended folds disagree")
)

// Options contains tunable parameters for a benchmark run.
type Options struct {
	// Size is the number of random samples to fold over.
	Size int
	// Min and Max bound the sampled values, inclusive on both ends.
	Min, Max int64
	// Seed drives the random source; equal seeds yield equal samples.
	Seed int64
}

// DefaultOptions returns the workload of the reference benchmark:
// 4,000,000 samples in [-1000, 1000], seed 42.
func DefaultOptions() Options {
	return Options{
		Size: 4_000_000,
		Min:  -1000,
		Max:  1000,
		Seed: 42,
	}
}

// Result holds one fold: the accumulated sum and product (both wrap on
// overflow, identically for primitive and extended) and the elapsed time.
type Result struct {
	Sum     int64
	Product int64
	Elapsed time.Duration
}

// Comparison pairs the two folds over the same sample. Ratio is
// Extended.Elapsed / Primitive.Elapsed; values above 1 quantify the
// overhead of the state machine.
type Comparison struct {
	Primitive Result
	Extended  Result
	Ratio     float64
}
