// Package extended: unary operators, truthiness, increment/decrement.

package extended

// Pos is the identity (unary plus). It returns a copy of e.
func (e Extended[T]) Pos() Extended[T] {
	return e
}

// Neg negates an extended number: a finite payload is negated, an infinite
// state flips sign. T must be a signed type; negating an unsigned
// instantiation is a compile error, which is why Neg is a free function
// with its own constraint rather than a method.
func Neg[T SignedNumber](x Extended[T]) Extended[T] {
	if x.state == finite {
		x.value = -x.value
	} else {
		x.state = -x.state
	}

	return x
}

// Bool coerces e to a boolean: any infinite value is true, a finite value
// is true iff its payload is non-zero.
func (e Extended[T]) Bool() bool {
	if e.state != finite {
		return true
	}

	return e.value != 0
}

// Inc adds one to the payload, regardless of state. The state is never
// touched: incrementing an infinite value has no observable effect, since
// the payload is unobservable outside the finite state. This mirrors the
// behavior of ++ on the underlying primitive and is intentional.
func (e *Extended[T]) Inc() {
	e.value++
}

// Dec subtracts one from the payload, regardless of state. See Inc.
func (e *Extended[T]) Dec() {
	e.value--
}
