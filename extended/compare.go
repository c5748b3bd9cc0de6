// Package extended: the total order over the three-way state space.
//
// Ordering rules:
//   - two finite values compare by payload;
//   - two infinite values are equal iff their signs match, and
//     −∞ < +∞ unconditionally;
//   - a finite value sits strictly between −∞ and +∞.
//
// Cmp is the single source of truth; every other predicate is derived
// from it, so the usual dualities (a > b ⇔ b < a, a ≤ b ⇔ !(b < a))
// hold by construction.

package extended

// Cmp compares e and o in the extended-real total order, returning
// -1 if e < o, 0 if e == o, and +1 if e > o.
func (e Extended[T]) Cmp(o Extended[T]) int {
	if e.state == finite && o.state == finite {
		switch {
		case e.value < o.value:
			return -1
		case e.value > o.value:
			return 1
		default:
			return 0
		}
	}

	// At least one operand is infinite: the state tags themselves are
	// ordered negInf < finite < posInf, so compare them directly.
	switch {
	case e.state < o.state:
		return -1
	case e.state > o.state:
		return 1
	default:
		return 0
	}
}

// Equal reports whether e == o: same state, and same payload when both
// are finite.
func (e Extended[T]) Equal(o Extended[T]) bool {
	return e.Cmp(o) == 0
}

// Less reports whether e < o.
func (e Extended[T]) Less(o Extended[T]) bool {
	return e.Cmp(o) < 0
}

// LessEq reports whether e <= o.
func (e Extended[T]) LessEq(o Extended[T]) bool {
	return !o.Less(e)
}

// Greater reports whether e > o.
func (e Extended[T]) Greater(o Extended[T]) bool {
	return o.Less(e)
}

// GreaterEq reports whether e >= o.
func (e Extended[T]) GreaterEq(o Extended[T]) bool {
	return !e.Less(o)
}
