// Package extended: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// extended package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package extended

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "extended: ..." for consistency and to
// allow easy grepping across logs. ErrFinite is the single root kind of the
// package: every other sentinel wraps it, so a caller that only cares about
// "did an extended-number precondition fail" can match ErrFinite alone,
// while callers that need the exact condition match the derived sentinel.

var (
	// ErrFinite is the root error kind: a finiteness precondition of the
	// extended-real algebra was violated. Every error returned by this
	// package satisfies errors.Is(err, ErrFinite).
	ErrFinite = errors.New("extended: finiteness precondition violated")

	// ErrInfinite indicates an operation that requires a finite operand was
	// given an infinite one (Value on ±∞, modulo or bitwise with ±∞).
	ErrInfinite = fmt.Errorf("%w: operand is infinite", ErrFinite)

	// ErrNotInfinite indicates InfSign was called on a finite value.
	ErrNotInfinite = fmt.Errorf("%w: operand is finite", ErrFinite)

	// ErrIndeterminate indicates an operand combination with no consistent
	// extended-real result: ∞ − ∞ (same sign), ∞ + ∞ (opposite signs),
	// and every ±∞ / ±∞.
	ErrIndeterminate = fmt.Errorf("%w: indeterminate form", ErrFinite)

	// ErrDivideByZero indicates a division or modulo with a zero finite
	// divisor, for both finite and infinite dividends.
	ErrDivideByZero = fmt.Errorf("%w: division by zero", ErrFinite)
)
