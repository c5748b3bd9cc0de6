package xbench

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/extnum/extended"
)

// Run executes the workload described by opts: it samples opts.Size random
// int64 values in [opts.Min, opts.Max], folds sum and product over the
// bare primitives and over their Extended counterparts, times both folds,
// and cross-checks that they agree.
//
// Errors:
//   - ErrBadSize  — opts.Size <= 0.
//   - ErrBadRange — opts.Min > opts.Max.
//   - ErrMismatch — the folds disagree (would indicate an algebra bug).
func Run(opts Options) (Comparison, error) {
	if opts.Size <= 0 {
		return Comparison{}, ErrBadSize
	}
	if opts.Min > opts.Max {
		return Comparison{}, ErrBadRange
	}

	sample := randomSample(opts)
	ext := extend(sample)

	var cmp Comparison

	start := time.Now()
	cmp.Primitive.Sum, cmp.Primitive.Product = foldPrimitive(sample)
	cmp.Primitive.Elapsed = time.Since(start)

	start = time.Now()
	extSum, extProd, err := foldExtended(ext)
	cmp.Extended.Elapsed = time.Since(start)
	if err != nil {
		return Comparison{}, err
	}

	cmp.Extended.Sum, err = extSum.Value()
	if err != nil {
		return Comparison{}, err
	}
	cmp.Extended.Product, err = extProd.Value()
	if err != nil {
		return Comparison{}, err
	}

	if cmp.Extended.Sum != cmp.Primitive.Sum || cmp.Extended.Product != cmp.Primitive.Product {
		return Comparison{}, ErrMismatch
	}

	if cmp.Primitive.Elapsed > 0 {
		cmp.Ratio = float64(cmp.Extended.Elapsed) / float64(cmp.Primitive.Elapsed)
	}

	return cmp, nil
}

// randomSample draws opts.Size values uniformly from [opts.Min, opts.Max].
// The span is computed in uint64 so that ranges wider than int64 (up to the
// full int64 line) sample correctly instead of overflowing; a span of 0
// means the range covers all 2^64 offsets.
func randomSample(opts Options) []int64 {
	rng := rand.New(rand.NewSource(opts.Seed))
	span := uint64(opts.Max) - uint64(opts.Min) + 1

	sample := make([]int64, opts.Size)
	if span == 0 {
		for i := range sample {
			sample[i] = int64(rng.Uint64())
		}

		return sample
	}
	for i := range sample {
		// Two's-complement wraparound lands the offset inside [Min, Max].
		sample[i] = opts.Min + int64(rng.Uint64()%span)
	}

	return sample
}

// extend lifts a primitive sample into finite extended numbers.
func extend(sample []int64) []extended.Extended[int64] {
	ext := make([]extended.Extended[int64], len(sample))
	for i, v := range sample {
		ext[i] = extended.Finite(v)
	}

	return ext
}

// foldPrimitive accumulates sum and product over bare int64.
func foldPrimitive(sample []int64) (sum, prod int64) {
	prod = 1
	for _, v := range sample {
		sum += v
		prod *= v
	}

	return sum, prod
}

// foldExtended accumulates the same two folds through the extended state
// machines. A finite-only workload cannot hit an indeterminate form, but
// the errors are checked anyway: this fold exercises the real operators.
func foldExtended(ext []extended.Extended[int64]) (sum, prod extended.Extended[int64], err error) {
	sum = extended.Finite(int64(0))
	prod = extended.Finite(int64(1))
	for _, v := range ext {
		if err = sum.AddAssign(v); err != nil {
			return sum, prod, err
		}
		if err = prod.MulAssign(v); err != nil {
			return sum, prod, err
		}
	}

	return sum, prod, nil
}
