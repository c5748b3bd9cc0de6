// Package extended implements Extended[T], an extended real number over any
// integer or float primitive: a finite payload of type T, or one of the two
// infinite sentinels +∞ / −∞.
//
// 🚀 What is an extended number?
//
//	The extended real number line ℝ ∪ {+∞, −∞} with measure-theoretic
//	arithmetic.  It is widely used in:
//	  • Measure & integration theory (0·∞ = 0 by convention)
//	  • Shortest-path and DP algorithms ("unreachable" distances)
//	  • Interval and lattice arithmetic (unbounded endpoints)
//	  • Limit bookkeeping in numeric code
//
// ✨ Key features:
//   - three-state algebra: Finite(v), +∞, −∞ — the state is the discriminant
//   - compound-assignment forms (AddAssign, MulAssign, …) are canonical;
//     binary forms (Add, Mul, …) are derived from them
//   - indeterminate forms (∞−∞, ∞/∞, x/0) fail with sentinel errors, all
//     matching ErrFinite via errors.Is
//   - integer-only operators (Mod, Not, And, Or, Xor, Shl, Shr) are free
//     functions constrained to constraints.Integer, so misuse on floats is
//     a compile error; likewise Neg rejects unsigned T at compile time
//   - Stringer/Scanner text surface: renders "+inf"/"-inf", parses finite
//     values only (the sentinels have no readable form — by documented
//     asymmetry with rendering)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/extnum/extended"
//
//	a := extended.Finite(42)
//	b := extended.Inf[int](extended.Positive)
//
//	sum, err := a.Add(b)        // +inf, nil
//	_, err = b.Sub(b)           // indeterminate: errors.Is(err, extended.ErrFinite)
//
//	zero, _ := extended.Finite(0).Mul(b) // 0·∞ = 0
//	fmt.Println(sum, zero)               // "+inf 0"
//
// Concurrency:
//
//	Extended[T] is a plain value. Copies are independent; concurrent readers
//	of one value are safe, concurrent mutation of one instance is the
//	caller's responsibility (single-writer semantics).
//
// See examples in example_test.go for detailed walkthroughs.
package extended
