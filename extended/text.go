// Package extended: the text surface.
//
// Rendering and parsing are deliberately asymmetric: String and
// MarshalText can represent the infinite sentinels ("+inf" / "-inf"),
// while Scan and UnmarshalText always produce a finite value and have no
// readable form for infinity. Parsing into a previously infinite instance
// discards the infinite state.

package extended

import (
	"fmt"
)

// String renders e: a finite payload via the primitive's default %v
// representation, +∞ as "+inf", and −∞ as "-inf".
func (e Extended[T]) String() string {
	switch e.state {
	case posInf:
		return "+inf"
	case negInf:
		return "-inf"
	default:
		return fmt.Sprintf("%v", e.value)
	}
}

// MarshalText implements encoding.TextMarshaler with the same rendering
// as String.
func (e Extended[T]) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It always produces a
// finite value: the prior state is discarded before the payload is parsed.
// The sentinel texts "+inf" / "-inf" never reconstruct an infinite state —
// for integer payloads they are a parse error, for float payloads they
// parse as a finite IEEE infinity payload.
func (e *Extended[T]) UnmarshalText(text []byte) error {
	e.state = finite
	if _, err := fmt.Sscan(string(text), &e.value); err != nil {
		return fmt.Errorf("extended: parse %q: %w", text, err)
	}

	return nil
}

// Scan implements fmt.Scanner, so an Extended can be read with the fmt
// scanning family. Like UnmarshalText, it forces the finite state and then
// parses one primitive token into the payload.
func (e *Extended[T]) Scan(st fmt.ScanState, verb rune) error {
	tok, err := st.Token(true, nil)
	if err != nil {
		return err
	}

	return e.UnmarshalText(tok)
}
