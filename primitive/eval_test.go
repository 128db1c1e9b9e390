package primitive_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eqsearch/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eval is a strict-mode helper that fails the test on unexpected errors.
func eval(t *testing.T, k primitive.Kind, args ...float64) float64 {
	t.Helper()
	v, err := k.Eval(primitive.StrictDomain, 0, args...)
	require.NoError(t, err, "%s%v should evaluate", k, args)
	return v
}

// TestEval_Arithmetic covers the four total binary operators.
func TestEval_Arithmetic(t *testing.T) {
	assert.Equal(t, 5.0, eval(t, primitive.Add, 2, 3))
	assert.Equal(t, -1.0, eval(t, primitive.Sub, 2, 3))
	assert.Equal(t, 6.0, eval(t, primitive.Mul, 2, 3))
	assert.Equal(t, 0.5, eval(t, primitive.Div, 1, 2), "1/2 == 0.5 exactly")
}

// TestEval_DivisionByZero ensures the x/0 case fails rather than returning Inf.
func TestEval_DivisionByZero(t *testing.T) {
	_, err := primitive.Div.Eval(primitive.StrictDomain, 0, 1.0, 0.0)
	assert.ErrorIs(t, err, primitive.ErrNumericDomain, "1/0 must be a domain failure")
}

// TestEval_Powers verifies pow2 and pow3 are exact products under IEEE
// semantics, for a spread of values including negatives and non-dyadics.
func TestEval_Powers(t *testing.T) {
	for _, x := range []float64{-3.7, -1, 0, 0.1, 1, 2.5, 1e10} {
		assert.Equal(t, x*x, eval(t, primitive.Pow2, x), "pow2(%g)", x)
		assert.Equal(t, x*x*x, eval(t, primitive.Pow3, x), "pow3(%g)", x)
	}
}

// TestEval_ExpLogInverse checks log∘exp ≈ id and exp∘log ≈ id on positives.
func TestEval_ExpLogInverse(t *testing.T) {
	for _, x := range []float64{0.001, 0.5, 1, 2, 10} {
		assert.InDelta(t, x, eval(t, primitive.Log, eval(t, primitive.Exp, x)), 1e-12, "log(exp(%g))", x)
		assert.InDelta(t, x, eval(t, primitive.Exp, eval(t, primitive.Log, x)), 1e-12*x+1e-12, "exp(log(%g))", x)
	}
}

// TestEval_LogDomain ensures ln fails for x ≤ 0.
func TestEval_LogDomain(t *testing.T) {
	for _, x := range []float64{0, -1, -1e10} {
		_, err := primitive.Log.Eval(primitive.StrictDomain, 0, x)
		assert.ErrorIs(t, err, primitive.ErrNumericDomain, "log(%g)", x)
	}
}

// TestEval_Sqrt checks the documented pair: √4 == 2 and √−1 fails.
func TestEval_Sqrt(t *testing.T) {
	assert.Equal(t, 2.0, eval(t, primitive.Sqrt, 4))

	_, err := primitive.Sqrt.Eval(primitive.StrictDomain, 0, -1.0)
	assert.ErrorIs(t, err, primitive.ErrNumericDomain, "sqrt(-1) must fail")
}

// TestEval_Constant checks the fitted scalar leaf returns its parameter.
func TestEval_Constant(t *testing.T) {
	v, err := primitive.Constant.Eval(primitive.StrictDomain, 15.0)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v, "constant evaluates to its fitted value")
}

// TestEval_Sigmoid checks sig(0, b=1) == 0.5 exactly and monotonicity.
func TestEval_Sigmoid(t *testing.T) {
	v, err := primitive.Sig.Eval(primitive.StrictDomain, 1.0, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v, "sig(0) must be exactly one half")

	lo, err := primitive.Sig.Eval(primitive.StrictDomain, 1.0, -3.0)
	require.NoError(t, err)
	hi, err := primitive.Sig.Eval(primitive.StrictDomain, 1.0, 3.0)
	require.NoError(t, err)
	assert.Less(t, lo, 0.5)
	assert.Greater(t, hi, 0.5)
}

// TestEval_Factorial checks fac against the factorial identity on small
// non-negative integers: Γ(1+n) == n!.
func TestEval_Factorial(t *testing.T) {
	assert.InDelta(t, 24.0, eval(t, primitive.Fac, 4), 1e-9, "Γ(5) == 4! == 24")
	assert.InDelta(t, 1.0, eval(t, primitive.Fac, 0), 1e-12, "Γ(1) == 0! == 1")

	_, err := primitive.Fac.Eval(primitive.StrictDomain, 0, -1.0)
	assert.ErrorIs(t, err, primitive.ErrNumericDomain, "the Γ pole at −1")

	_, err = primitive.Fac.Eval(primitive.StrictDomain, 0, -2.5)
	assert.ErrorIs(t, err, primitive.ErrNumericDomain, "below the pole")
}

// TestEval_PowDomain checks the real-arithmetic convention for **.
func TestEval_PowDomain(t *testing.T) {
	_, err := primitive.Pow.Eval(primitive.StrictDomain, 0, -1.0, 0.5)
	assert.ErrorIs(t, err, primitive.ErrNumericDomain, "(-1)^0.5 has no real value")

	// Integer exponents on negative bases are fine.
	assert.Equal(t, 4.0, eval(t, primitive.Pow, -2, 2))
	assert.Equal(t, -8.0, eval(t, primitive.Pow, -2, 3))
	assert.Equal(t, 8.0, eval(t, primitive.Pow, 2, 3))
}

// TestEval_OverflowPolicy ensures overflow to ±Inf fails under StrictDomain
// and propagates under NaNPropagation (never a clamped finite value).
func TestEval_OverflowPolicy(t *testing.T) {
	cases := []struct {
		k primitive.Kind
		x float64
	}{
		{primitive.Exp, 1e4},
		{primitive.Sinh, 1e4},
		{primitive.Cosh, 1e4},
	}
	for _, tc := range cases {
		_, err := tc.k.Eval(primitive.StrictDomain, 0, tc.x)
		assert.ErrorIs(t, err, primitive.ErrNumericDomain, "strict %s(%g)", tc.k, tc.x)

		v, err := tc.k.Eval(primitive.NaNPropagation, 0, tc.x)
		assert.NoError(t, err, "propagation mode never errors on overflow")
		assert.True(t, math.IsInf(v, 0), "propagation %s(%g) must be Inf, got %g", tc.k, tc.x, v)
	}
}

// TestEval_NaNPropagation checks the opt-in IEEE semantics on the partial
// functions: raw NaN/Inf, no error.
func TestEval_NaNPropagation(t *testing.T) {
	v, err := primitive.Div.Eval(primitive.NaNPropagation, 0, 1.0, 0.0)
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "1/0 propagates +Inf")

	v, err = primitive.Log.Eval(primitive.NaNPropagation, 0, -1.0)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v), "log(-1) propagates NaN")

	v, err = primitive.Sqrt.Eval(primitive.NaNPropagation, 0, -1.0)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v), "sqrt(-1) propagates NaN")
}

// TestEval_UnaryTable spot-checks the remaining unary functions.
func TestEval_UnaryTable(t *testing.T) {
	assert.Equal(t, 3.5, eval(t, primitive.Abs, -3.5))
	assert.Equal(t, 0.0, eval(t, primitive.Relu, -2))
	assert.Equal(t, 2.0, eval(t, primitive.Relu, 2))
	assert.InDelta(t, 0.0, eval(t, primitive.Sin, 0), 1e-15)
	assert.InDelta(t, 1.0, eval(t, primitive.Cos, 0), 1e-15)
	assert.InDelta(t, 0.0, eval(t, primitive.Tan, 0), 1e-15)
	assert.InDelta(t, 0.0, eval(t, primitive.Sinh, 0), 1e-15)
	assert.InDelta(t, 1.0, eval(t, primitive.Cosh, 0), 1e-15)
	assert.InDelta(t, math.Tanh(1), eval(t, primitive.Tanh, 1), 1e-15)
}

// TestEval_Determinism runs every total unary primitive twice on the same
// input and demands bit-identical results (referential transparency).
func TestEval_Determinism(t *testing.T) {
	for _, k := range primitive.UnaryKinds() {
		a, errA := k.Eval(primitive.NaNPropagation, 1.0, 0.37)
		b, errB := k.Eval(primitive.NaNPropagation, 1.0, 0.37)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b, "%s must be deterministic", k)
	}
}
