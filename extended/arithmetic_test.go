package extended_test

import (
	"testing"

	"github.com/katalvlaran/extnum/extended"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustAdd and friends unwrap operations the test knows cannot fail.
func mustAdd[T extended.Number](t *testing.T, a, b extended.Extended[T]) extended.Extended[T] {
	t.Helper()
	r, err := a.Add(b)
	require.NoError(t, err)

	return r
}

func mustSub[T extended.Number](t *testing.T, a, b extended.Extended[T]) extended.Extended[T] {
	t.Helper()
	r, err := a.Sub(b)
	require.NoError(t, err)

	return r
}

func mustMul[T extended.Number](t *testing.T, a, b extended.Extended[T]) extended.Extended[T] {
	t.Helper()
	r, err := a.Mul(b)
	require.NoError(t, err)

	return r
}

func mustDiv[T extended.Number](t *testing.T, a, b extended.Extended[T]) extended.Extended[T] {
	t.Helper()
	r, err := a.Div(b)
	require.NoError(t, err)

	return r
}

// TestAddSubFinite verifies that finite addition and subtraction match the
// primitive operators.
func TestAddSubFinite(t *testing.T) {
	pos := extended.Finite(int8(42))
	neg := extended.Finite(int8(-42))
	zero := extended.Finite(int8(0))

	assert.True(t, mustAdd(t, pos, neg).Equal(zero), "additive inverses cancel")
	assert.True(t, mustAdd(t, neg, pos).Equal(zero), "addition commutes")
	assert.True(t, mustAdd(t, pos, zero).Equal(pos), "adding zero is identity")
	assert.True(t, mustAdd(t, neg, zero).Equal(neg), "adding zero is identity")

	flipped := extended.Neg(mustSub(t, neg, pos))
	assert.True(t, mustSub(t, pos, neg).Equal(flipped), "a-b == -(b-a)")
}

// TestAddSubInfinityIdempotent verifies the absorbing rows of the additive
// table: +inf is invariant under addition of any finite value or +inf,
// and under subtraction of any finite value or -inf; symmetrically for -inf.
func TestAddSubInfinityIdempotent(t *testing.T) {
	posInf := extended.Inf[int8](extended.Positive)
	negInf := extended.Inf[int8](extended.Negative)
	finites := []extended.Extended[int8]{
		extended.Finite(int8(42)),
		extended.Finite(int8(-42)),
		extended.Finite(int8(0)),
	}

	for _, x := range append(finites, posInf) {
		assert.True(t, mustAdd(t, posInf, x).Equal(posInf), "+inf + %s == +inf", x)
		assert.True(t, mustSub(t, x, negInf).Equal(posInf), "%s - -inf == +inf", x)
		assert.True(t, mustSub(t, negInf, x).Equal(negInf), "-inf - %s == -inf", x)
	}
	for _, x := range append(finites, negInf) {
		assert.True(t, mustSub(t, posInf, x).Equal(posInf), "+inf - %s == +inf", x)
		assert.True(t, mustSub(t, x, posInf).Equal(negInf), "%s - +inf == -inf", x)
		assert.True(t, mustAdd(t, x, negInf).Equal(negInf), "%s + -inf == -inf", x)
	}
}

// TestAddSubIndeterminate verifies all four indeterminate additive forms,
// and that the failed receiver is left unchanged.
func TestAddSubIndeterminate(t *testing.T) {
	posInf := extended.Inf[int8](extended.Positive)
	negInf := extended.Inf[int8](extended.Negative)

	_, err := posInf.Sub(posInf)
	assert.ErrorIs(t, err, extended.ErrIndeterminate, "+inf - +inf")
	_, err = posInf.Add(negInf)
	assert.ErrorIs(t, err, extended.ErrIndeterminate, "+inf + -inf")
	_, err = negInf.Add(posInf)
	assert.ErrorIs(t, err, extended.ErrIndeterminate, "-inf + +inf")
	_, err = negInf.Sub(negInf)
	assert.ErrorIs(t, err, extended.ErrIndeterminate, "-inf - -inf")

	e := extended.Inf[int8](extended.Positive)
	err = e.AddAssign(negInf)
	assert.ErrorIs(t, err, extended.ErrFinite, "indeterminate matches the root kind")
	assert.True(t, e.Equal(posInf), "receiver must be unchanged on error")
}

// TestMulIdentityAndZero verifies the multiplicative unit and the
// measure-theoretic absorption 0·∞ = 0 for every state.
func TestMulIdentityAndZero(t *testing.T) {
	zero := extended.Finite(int16(0))
	one := extended.Finite(int16(1))
	all := []extended.Extended[int16]{
		extended.Finite(int16(42)),
		extended.Finite(int16(-42)),
		extended.Inf[int16](extended.Positive),
		extended.Inf[int16](extended.Negative),
		zero,
		one,
	}

	for _, v := range all {
		assert.True(t, mustMul(t, v, one).Equal(v), "%s * 1 == %s", v, v)
		assert.True(t, mustMul(t, one, v).Equal(v), "1 * %s == %s", v, v)
		assert.True(t, mustMul(t, v, zero).Equal(zero), "%s * 0 == 0", v)
		assert.True(t, mustMul(t, zero, v).Equal(zero), "0 * %s == 0", v)
		assert.True(t, mustDiv(t, v, one).Equal(v), "%s / 1 == %s", v, v)
	}
}

// TestMulDivFinite verifies finite multiplication and division against the
// primitive operators, including sign handling.
func TestMulDivFinite(t *testing.T) {
	pos := extended.Finite(int16(42))
	neg := extended.Finite(int16(-42))
	one := extended.Finite(int16(1))
	prod := extended.Finite(int16(42 * 42))

	assert.True(t, mustMul(t, extended.Neg(pos), neg).Equal(prod), "(-42)*(-42)")
	assert.True(t, mustMul(t, pos, neg).Equal(extended.Neg(prod)), "42*(-42)")
	assert.True(t, mustDiv(t, pos, neg).Equal(extended.Neg(one)), "42/(-42)")
	assert.True(t, mustDiv(t, neg, extended.Neg(pos)).Equal(one), "(-42)/(-42)")
}

// TestMulInfinitySigns verifies sign propagation for finite×infinite and
// infinite×infinite products.
func TestMulInfinitySigns(t *testing.T) {
	pos := extended.Finite(int16(42))
	neg := extended.Finite(int16(-42))
	posInf := extended.Inf[int16](extended.Positive)
	negInf := extended.Inf[int16](extended.Negative)

	for _, inf := range []extended.Extended[int16]{posInf, negInf} {
		flip := extended.Neg(inf)
		for _, p := range []extended.Extended[int16]{pos, posInf} {
			assert.True(t, mustMul(t, inf, p).Equal(inf), "%s * %s keeps sign", inf, p)
		}
		for _, n := range []extended.Extended[int16]{neg, negInf} {
			assert.True(t, mustMul(t, n, inf).Equal(flip), "%s * %s flips sign", n, inf)
		}
	}
}

// TestDivInfinity verifies: infinite / finite keeps or flips sign with the
// divisor's sign, and finite / infinite collapses to zero.
func TestDivInfinity(t *testing.T) {
	pos := extended.Finite(int16(42))
	neg := extended.Finite(int16(-42))
	zero := extended.Finite(int16(0))
	one := extended.Finite(int16(1))
	posInf := extended.Inf[int16](extended.Positive)
	negInf := extended.Inf[int16](extended.Negative)

	for _, inf := range []extended.Extended[int16]{posInf, negInf} {
		assert.True(t, mustDiv(t, inf, pos).Equal(inf), "%s / 42 keeps sign", inf)
		assert.True(t, mustDiv(t, inf, neg).Equal(extended.Neg(inf)), "%s / -42 flips sign", inf)
	}
	for _, x := range []extended.Extended[int16]{pos, neg, zero, one} {
		assert.True(t, mustDiv(t, x, posInf).Equal(zero), "%s / +inf == 0", x)
		assert.True(t, mustDiv(t, x, negInf).Equal(zero), "%s / -inf == 0", x)
	}
}

// TestDivFailures verifies every failing division: zero divisors for both
// finite and infinite dividends, and all four ∞/∞ combinations.
func TestDivFailures(t *testing.T) {
	zero := extended.Finite(int16(0))
	fin := extended.Finite(int16(42))
	posInf := extended.Inf[int16](extended.Positive)
	negInf := extended.Inf[int16](extended.Negative)

	_, err := fin.Div(zero)
	assert.ErrorIs(t, err, extended.ErrDivideByZero, "finite / 0")

	for _, a := range []extended.Extended[int16]{posInf, negInf} {
		_, err = a.Div(zero)
		assert.ErrorIs(t, err, extended.ErrDivideByZero, "%s / 0", a)
		for _, b := range []extended.Extended[int16]{posInf, negInf} {
			_, err = a.Div(b)
			assert.ErrorIs(t, err, extended.ErrIndeterminate, "%s / %s", a, b)
			assert.ErrorIs(t, err, extended.ErrFinite, "%s / %s matches the root kind", a, b)
		}
	}

	// A failed DivAssign must leave the receiver untouched.
	e := extended.Finite(int16(42))
	assert.Error(t, e.DivAssign(zero))
	assert.True(t, e.Equal(fin), "receiver must be unchanged on error")
}

// TestMod verifies modulo: primitive remainder for finite operands
// (including Go's truncated semantics for negatives), failure on any
// infinite operand and on a zero divisor.
func TestMod(t *testing.T) {
	r, err := extended.Mod(extended.Finite(17), extended.Finite(5))
	require.NoError(t, err)
	assert.True(t, r.Equal(extended.Finite(17%5)), "17 %% 5")

	r, err = extended.Mod(extended.Finite(-17), extended.Finite(5))
	require.NoError(t, err)
	assert.True(t, r.Equal(extended.Finite(-17%5)), "truncated remainder for negatives")

	_, err = extended.Mod(extended.Inf[int](extended.Positive), extended.Finite(5))
	assert.ErrorIs(t, err, extended.ErrInfinite, "infinite dividend")

	_, err = extended.Mod(extended.Finite(17), extended.Inf[int](extended.Negative))
	assert.ErrorIs(t, err, extended.ErrInfinite, "infinite divisor")

	_, err = extended.Mod(extended.Finite(17), extended.Finite(0))
	assert.ErrorIs(t, err, extended.ErrDivideByZero, "zero divisor")
}
