package fit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eqsearch/fit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNelderMead_Validation covers the argument contracts.
func TestNelderMead_Validation(t *testing.T) {
	_, err := fit.NelderMead(nil, []float64{0}, fit.DefaultOptions())
	assert.ErrorIs(t, err, fit.ErrNoObjective)

	_, err = fit.NelderMead(func([]float64) float64 { return 0 }, nil, fit.DefaultOptions())
	assert.ErrorIs(t, err, fit.ErrEmptyStart)

	_, err = fit.NelderMead(func([]float64) float64 { return 0 }, []float64{0}, fit.Options{MaxIter: -1})
	assert.ErrorIs(t, err, fit.ErrBadOptions)
}

// TestNelderMead_Quadratic minimizes (x−3)² + (y+1)² from a distant start.
func TestNelderMead_Quadratic(t *testing.T) {
	obj := func(x []float64) float64 {
		return (x[0]-3)*(x[0]-3) + (x[1]+1)*(x[1]+1)
	}
	res, err := fit.NelderMead(obj, []float64{10, 10}, fit.Options{MaxIter: 2000})
	require.NoError(t, err)
	assert.True(t, res.Converged, "smooth quadratic must converge within budget")
	assert.InDelta(t, 3.0, res.X[0], 1e-4)
	assert.InDelta(t, -1.0, res.X[1], 1e-4)
	assert.InDelta(t, 0.0, res.F, 1e-8)
}

// TestNelderMead_SymmetricBracket guards against stopping on objective
// spread alone.  Starting at x0=1 with the default step, the simplex walks
// in half-integer increments, so for a half-integer-offset optimum it can
// land with two vertices symmetric about the minimum — equal values,
// diameter still wide.  The run must keep contracting to the true minimum.
func TestNelderMead_SymmetricBracket(t *testing.T) {
	obj := func(x []float64) float64 { return 5 * (x[0] - 15) * (x[0] - 15) }
	res, err := fit.NelderMead(obj, []float64{1}, fit.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 15.0, res.X[0], 1e-4)
	assert.InDelta(t, 0.0, res.F, 1e-6)
}

// TestNelderMead_Rosenbrock checks progress on the classic banana valley;
// exact convergence is slow, so only substantial descent is demanded.
func TestNelderMead_Rosenbrock(t *testing.T) {
	obj := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	}
	start := []float64{-1.2, 1}
	res, err := fit.NelderMead(obj, start, fit.Options{MaxIter: 5000})
	require.NoError(t, err)
	assert.Less(t, res.F, 1e-3, "must descend deep into the valley")
}

// TestNelderMead_InfeasibleRegion ensures +Inf plateaus are walked away
// from: the objective is infinite left of zero, minimal at x=2.
func TestNelderMead_InfeasibleRegion(t *testing.T) {
	obj := func(x []float64) float64 {
		if x[0] < 0 {
			return math.Inf(1)
		}
		return (x[0] - 2) * (x[0] - 2)
	}
	res, err := fit.NelderMead(obj, []float64{0.1}, fit.Options{MaxIter: 2000})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.X[0], 1e-4)
	assert.False(t, math.IsInf(res.F, 1), "result must be feasible")
}

// TestNelderMead_Deterministic demands bit-identical runs for one start.
func TestNelderMead_Deterministic(t *testing.T) {
	obj := func(x []float64) float64 { return math.Abs(x[0]-1.5) + x[1]*x[1] }
	a, err := fit.NelderMead(obj, []float64{7, -4}, fit.DefaultOptions())
	require.NoError(t, err)
	b, err := fit.NelderMead(obj, []float64{7, -4}, fit.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b, "no randomness anywhere in the simplex")
}
