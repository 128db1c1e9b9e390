package fit

import "errors"

var (
	// ErrNoObjective indicates a nil objective function.
	ErrNoObjective = errors.New("fit: nil objective")
	// ErrEmptyStart indicates an empty starting point.
	ErrEmptyStart = errors.New("fit: starting point must have at least one dimension")
	// ErrBadOptions indicates non-positive iteration budget or step size.
	ErrBadOptions = errors.New("fit: options out of range")
)

// Objective is a scalar function to minimize.  It may return +Inf for
// infeasible points; the simplex treats such points as maximally bad.
type Objective func(x []float64) float64

// Options configures the Nelder–Mead simplex.
//
// Fields:
//   - MaxIter — iteration budget (one reflection cycle per iteration).
//   - Step    — initial simplex edge length along each coordinate.
//   - TolF    — stop when the best-worst objective spread falls below TolF.
//   - TolX    — stop when the simplex diameter falls below TolX.
//
// Zero values are replaced by DefaultOptions() equivalents in NelderMead,
// so Options{} is a valid argument.
type Options struct {
	MaxIter int
	Step    float64
	TolF    float64
	TolX    float64
}

// DefaultOptions returns the tuning used by the search engine: a modest
// budget, since constant fitting runs inside every MCMC proposal.
func DefaultOptions() Options {
	return Options{
		MaxIter: 400,
		Step:    0.5,
		TolF:    1e-10,
		TolX:    1e-10,
	}
}

// Result reports the outcome of a minimization.
type Result struct {
	// X is the best point found.
	X []float64
	// F is the objective value at X.
	F float64
	// Iters is the number of simplex iterations performed.
	Iters int
	// Converged is true when a tolerance criterion stopped the run (as
	// opposed to exhausting MaxIter).
	Converged bool
}
