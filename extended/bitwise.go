// Package extended: the bitwise operator family.
//
// Every operator here requires finite operands and an integer payload
// type. The finiteness rule is enforced at run time (ErrInfinite); the
// integer rule is enforced at compile time by constraining the free
// functions to constraints.Integer, mirroring the primitive operators,
// which do not exist for floats. As with arithmetic, the Assign forms are
// canonical and the binary forms are derived from them on a copy.

package extended

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// requireFinite returns ErrInfinite unless both operands are finite.
func requireFinite[T constraints.Integer](op string, e *Extended[T], o Extended[T]) error {
	if e.state != finite || o.state != finite {
		return fmt.Errorf("bitwise %s: %w", op, ErrInfinite)
	}

	return nil
}

// Not returns the bitwise complement ^x.
// Returns ErrInfinite when x is infinite.
func Not[T constraints.Integer](x Extended[T]) (Extended[T], error) {
	if x.state != finite {
		return x, fmt.Errorf("bitwise not: %w", ErrInfinite)
	}
	x.value = ^x.value

	return x, nil
}

// AndAssign sets e to e & o. Both operands must be finite.
func AndAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if err := requireFinite("and", e, o); err != nil {
		return err
	}
	e.value &= o.value

	return nil
}

// OrAssign sets e to e | o. Both operands must be finite.
func OrAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if err := requireFinite("or", e, o); err != nil {
		return err
	}
	e.value |= o.value

	return nil
}

// XorAssign sets e to e ^ o. Both operands must be finite.
func XorAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if err := requireFinite("xor", e, o); err != nil {
		return err
	}
	e.value ^= o.value

	return nil
}

// ShlAssign sets e to e << o. Both operands must be finite. The shift
// count semantics (including panics on negative counts) are exactly those
// of the primitive << operator.
func ShlAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if err := requireFinite("leftshift", e, o); err != nil {
		return err
	}
	e.value <<= o.value

	return nil
}

// ShrAssign sets e to e >> o. Both operands must be finite. See ShlAssign.
func ShrAssign[T constraints.Integer](e *Extended[T], o Extended[T]) error {
	if err := requireFinite("rightshift", e, o); err != nil {
		return err
	}
	e.value >>= o.value

	return nil
}

// And returns a & b. Derived from AndAssign on a copy.
func And[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := AndAssign(&a, b)
	return a, err
}

// Or returns a | b. Derived from OrAssign on a copy.
func Or[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := OrAssign(&a, b)
	return a, err
}

// Xor returns a ^ b. Derived from XorAssign on a copy.
func Xor[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := XorAssign(&a, b)
	return a, err
}

// Shl returns a << b. Derived from ShlAssign on a copy.
func Shl[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := ShlAssign(&a, b)
	return a, err
}

// Shr returns a >> b. Derived from ShrAssign on a copy.
func Shr[T constraints.Integer](a, b Extended[T]) (Extended[T], error) {
	err := ShrAssign(&a, b)
	return a, err
}
