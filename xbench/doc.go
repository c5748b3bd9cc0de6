// Package xbench compares the cost of extended-number arithmetic against
// the bare primitive it wraps.
//
// 🚀 What does it measure?
//
//	A single workload, run twice: fold the sum and the product of a random
//	int64 sample, once over []int64 and once over []Extended[int64].  The
//	two folds must agree bit-for-bit (wrapping overflow included) — the
//	run fails if they do not — and the elapsed times are reported side by
//	side with their ratio.
//
// ✨ Key properties:
//   - deterministic: the sample is driven by Options.Seed, no global state
//   - honest: the extended fold goes through the real AddAssign/MulAssign
//     state machines, not a stripped-down copy
//   - self-checking: a disagreement between the folds is an error, not a
//     silent misreport
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/extnum/xbench"
//
//	cmp, err := xbench.Run(xbench.DefaultOptions())
//	if err != nil {
//	  // handle ErrBadSize / ErrBadRange
//	}
//	fmt.Printf("primitive %v, extended %v (x%.2f)\n",
//	  cmp.Primitive.Elapsed, cmp.Extended.Elapsed, cmp.Ratio)
//
// The timing numbers are micro-benchmark quality only: one pass per fold,
// no warm-up. For statistically careful numbers use the Benchmark
// functions in the extended package with go test -bench.
package xbench
