// Package extended: core types, constraints, and constructors
// for the extended subpackage of github.com/katalvlaran/extnum.
package extended

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the payload type of Extended: any integer or float
// primitive (including named types of those kinds). bool and non-numeric
// types are excluded structurally, so an illegal instantiation is a
// compile error rather than a runtime check.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber constrains operations that negate: signed integers and
// floats. Instantiating Neg over an unsigned type is a compile error.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Sign labels the two infinite states.
type Sign int8

const (
	// Negative designates −∞.
	Negative Sign = -1
	// Positive designates +∞.
	Positive Sign = 1
)

// String returns "+" for Positive and "-" for Negative.
func (s Sign) String() string {
	if s == Positive {
		return "+"
	}

	return "-"
}

// state is the discriminant of the three-way algebra. The numeric values
// are chosen so that ordering by state matches the extended-real order:
// negInf < finite < posInf, and negation flips an infinite state.
type state int8

const (
	finite state = 0
	posInf state = 1
	negInf state = -1
)

// Extended is an extended real number over T: either a finite payload or
// one of the two infinite sentinels. The zero value is finite zero, ready
// to use. Extended is a plain value with copy semantics; see the package
// doc for the concurrency contract.
//
// The payload is meaningful only in the finite state. In an infinite state
// it is unspecified: Inc/Dec may still mutate it, with no observable
// effect on comparisons, arithmetic, or rendering.
type Extended[T Number] struct {
	value T
	state state
}

// Finite returns a finite extended number holding v.
func Finite[T Number](v T) Extended[T] {
	return Extended[T]{value: v}
}

// Inf returns the infinite extended number designated by sign.
func Inf[T Number](sign Sign) Extended[T] {
	if sign == Positive {
		return Extended[T]{state: posInf}
	}

	return Extended[T]{state: negInf}
}

// IsFinite reports whether e is in the finite state.
func (e Extended[T]) IsFinite() bool {
	return e.state == finite
}

// Value returns the finite payload.
// Returns ErrInfinite when e is infinite.
func (e Extended[T]) Value() (T, error) {
	if e.state != finite {
		var zero T
		return zero, ErrInfinite
	}

	return e.value, nil
}

// InfSign returns the sign of the infinite state.
// Returns ErrNotInfinite when e is finite.
func (e Extended[T]) InfSign() (Sign, error) {
	switch e.state {
	case posInf:
		return Positive, nil
	case negInf:
		return Negative, nil
	default:
		return 0, ErrNotInfinite
	}
}

// SetFinite overwrites e with the finite value v, discarding any prior
// infinite state.
func (e *Extended[T]) SetFinite(v T) {
	e.value = v
	e.state = finite
}

// SetInf overwrites e with the infinite state designated by sign.
// The payload is left untouched; it is unobservable in an infinite state.
func (e *Extended[T]) SetInf(sign Sign) {
	if sign == Positive {
		e.state = posInf
	} else {
		e.state = negInf
	}
}

// As converts an extended number to a different payload type: the state is
// preserved, and a finite payload is cast with S's own conversion rules
// (truncation, wrapping — no additional range checking). It is a free
// function because Go methods cannot introduce the target type parameter.
func As[S, T Number](x Extended[T]) Extended[S] {
	if x.state == finite {
		return Finite(S(x.value))
	}

	return Extended[S]{state: x.state}
}
