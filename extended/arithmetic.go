// Package extended: the additive and multiplicative state machines.
//
// The compound-assignment forms (AddAssign, SubAssign, MulAssign,
// DivAssign, ModAssign) are the canonical implementation of the algebra;
// the binary forms (Add, Sub, Mul, Div, Mod) are derived mechanically by
// copying the receiver and delegating, so the state-transition tables
// live in exactly one place.
//
// Additive table (L op= R):
//
//	finite  + finite  → payload sum        finite  - finite  → payload diff
//	finite  + ±∞      → ±∞                 finite  - ±∞      → ∓∞
//	+∞      + fin/+∞  → +∞                 +∞      - fin/−∞  → +∞
//	+∞      + −∞      → ErrIndeterminate   +∞      - +∞      → ErrIndeterminate
//	−∞      + fin/−∞  → −∞                 −∞      - fin/+∞  → −∞
//	−∞      + +∞      → ErrIndeterminate   −∞      - −∞      → ErrIndeterminate
//
// Multiplication has no indeterminate form: signs multiply, and a zero
// finite operand absorbs infinity (measure-theoretic 0·∞ = 0). Division
// fails on any zero finite divisor and on every ∞/∞ combination; a finite
// value divided by infinity collapses to finite zero.

package extended

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AddAssign sets e to e + o.
// Returns ErrIndeterminate when e and o are opposite-signed infinities;
// e is left unchanged on error.
func (e *Extended[T]) AddAssign(o Extended[T]) error {
	switch e.state {
	case finite:
		if o.state == finite {
			e.value += o.value
		} else {
			e.state = o.state
		}
	case posInf:
		if o.state == negInf {
			return fmt.Errorf("+inf + -inf: %w", ErrIndeterminate)
		}
	case negInf:
		if o.state == posInf {
			return fmt.Errorf("-inf + +inf: %w", ErrIndeterminate)
		}
	}

	return nil
}

// SubAssign sets e to e - o.
// Returns ErrIndeterminate when e and o are same-signed infinities;
// e is left unchanged on error.
func (e *Extended[T]) SubAssign(o Extended[T]) error {
	switch e.state {
	case finite:
		if o.state == finite {
			e.value -= o.value
		} else {
			e.state = -o.state
		}
	case posInf:
		if o.state == posInf {
			return fmt.Errorf("+inf - +inf: %w", ErrIndeterminate)
		}
	case negInf:
		if o.state == negInf {
			return fmt.Errorf("-inf - -inf: %w", ErrIndeterminate)
		}
	}

	return nil
}

// MulAssign sets e to e * o. Signs multiply; a zero finite operand absorbs
// infinity, so 0·±∞ collapses to finite zero. Multiplication never fails,
// but it returns an error for symmetry with the rest of the family.
func (e *Extended[T]) MulAssign(o Extended[T]) error {
	switch e.state {
	case finite:
		if o.state == finite {
			e.value *= o.value
			break
		}
		switch {
		case e.value < 0:
			e.state = -o.state
		case e.value > 0:
			e.state = o.state
		default:
			// 0 · ±∞ = 0: stay finite zero.
		}
	case posInf, negInf:
		if o.state == finite {
			switch {
			case o.value == 0:
				e.value = 0
				e.state = finite
			case o.value < 0:
				e.state = -e.state
			}
			break
		}
		if o.state == negInf {
			e.state = -e.state
		}
	}

	return nil
}

// DivAssign sets e to e / o.
// Returns ErrDivideByZero when o is finite zero, and ErrIndeterminate when
// both e and o are infinite (all four sign combinations). A finite e
// divided by an infinite o collapses to finite zero. e is left unchanged
// on error.
func (e *Extended[T]) DivAssign(o Extended[T]) error {
	switch e.state {
	case finite:
		if o.state == finite {
			if o.value == 0 {
				return fmt.Errorf("%v / 0: %w", e.value, ErrDivideByZero)
			}
			e.value /= o.value
			break
		}
		e.value = 0
	case posInf, negInf:
		if o.state != finite {
			return fmt.Errorf("%s / %s: %w", e, o, ErrIndeterminate)
		}
		if o.value == 0 {
			return fmt.Errorf("%s / 0: %w", e, ErrDivideByZero)
		}
		if o.value < 0 {
			e.state = -e.state
		}
	}

	return nil
}

// Add returns e + o. Derived from AddAssign on a copy.
func (e Extended[T]) Add(o Extended[T]) (Extended[T], error) {
	err := e.AddAssign(o)
	return e, err
}

// Sub returns e - o. Derived from SubAssign on a copy.
func (e Extended[T]) Sub(o Extended[T]) (Extended[T], error) {
	err := e.SubAssign(o)
	return e, err
}

// Mul returns e * o. Derived from MulAssign on a copy.
func (e Extended[T]) Mul(o Extended[T]) (Extended[T], error) {
	err := e.MulAssign(o)
	return e, err
}

// Div returns e / o. Derived from DivAssign on a copy.
func (e Extended[T]) Div(o Extended[T]) (Extended[T], error) {
	err := e.DivAssign(o)
	return e, err
}

// ModAssign sets e to the primitive remainder e % o. Both operands must be
// finite (ErrInfinite otherwise) and o must be non-zero (ErrDivideByZero).
// Negative operands follow Go's truncated remainder, nothing more.
// Integer-only: a float instantiation is a compile error, matching the
// primitive % operator.
func ModAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if e.state != finite || o.state != finite {
		return fmt.Errorf("%s %% %s: %w", e, o, ErrInfinite)
	}
	if o.value == 0 {
		return fmt.Errorf("%v %% 0: %w", e.value, ErrDivideByZero)
	}
	e.value %= o.value

	return nil
}

// Mod returns a % b. Derived from ModAssign on a copy.
func Mod[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := ModAssign(&a, b)
	return a, err
}
