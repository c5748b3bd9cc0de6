// Package extnum models the extended real number line in Go — any numeric
// primitive augmented with the two sentinels +∞ and −∞, following the
// arithmetic conventions of measure theory.
//
// 🚀 What is extnum?
//
//	A small, generic value-type library that brings together:
//		• Extended[T]: a three-state number (finite, +∞, −∞) over any
//		  integer or float primitive
//		• Measure-theoretic arithmetic: 0·∞ = 0, x/∞ = 0, ∞+∞ = ∞,
//		  with ∞−∞ and ∞/∞ rejected as indeterminate forms
//		• A strict total order across all three states
//		• Bitwise and modular operators for integer instantiations
//		• Text rendering ("+inf" / "-inf") and finite-only parsing
//
// ✨ Why choose extnum?
//
//   - Type-safe – illegal instantiations (bool, non-numeric) and unary
//     negation of unsigned types are compile errors, not runtime surprises
//   - Honest failures – every precondition violation returns a sentinel
//     error matching ErrFinite via errors.Is
//   - Pure Go – no cgo, plain value semantics, zero value ready to use
//
// Under the hood, everything is organized under two subpackages:
//
//	extended/ — the Extended[T] value type, its algebra and conversions
//	xbench/   — workload timing: Extended[T] folds vs. the bare primitive
//
// Quick sketch of the number line:
//
//	-inf ──── …, -2, -1, 0, 1, 2, … ──── +inf
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/extnum/extended
package extnum
