// Package fit - tree-aware least squares over fitted parameters.
package fit

import (
	"math"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/primitive"
)

// LeastSquares fits the tree's free parameters to minimize the sum of
// squared errors against ds.Target().
//
// init seeds the starting point: parameters present in init start there,
// the rest at 1.  A tree with no free parameters is legal; the returned map
// is empty and the SSE is computed directly.
//
// Evaluation runs under NaNPropagation; any row yielding a non-finite
// prediction makes the objective +Inf, so the simplex steers constants back
// into the feasible region instead of erroring out.
//
// Returns the fitted parameter map and the achieved SSE.
//
// Complexity: O(MaxIter · rows · nodes).
func LeastSquares(tree *exprtree.Node, ds *exprtree.Dataset, init map[string]float64, opts Options) (map[string]float64, float64, error) {
	if tree == nil {
		return nil, 0, exprtree.ErrNilNode
	}
	if ds == nil || ds.Len() == 0 {
		return nil, 0, exprtree.ErrEmptyDataset
	}

	names := tree.Params()
	if len(names) == 0 {
		pred, err := exprtree.EvalColumn(tree, ds, nil, primitive.NaNPropagation)
		if err != nil {
			return nil, 0, err
		}
		return map[string]float64{}, SSE(pred, ds.Target()), nil
	}

	// Stage 1 - starting point from init, defaulting to 1.
	x0 := make([]float64, len(names))
	for i, name := range names {
		x0[i] = 1
		if v, ok := init[name]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			x0[i] = v
		}
	}

	// Stage 2 - SSE objective over the parameter vector.
	params := make(map[string]float64, len(names))
	objective := func(x []float64) float64 {
		for i, name := range names {
			params[name] = x[i]
		}
		pred, err := exprtree.EvalColumn(tree, ds, params, primitive.NaNPropagation)
		if err != nil {
			// Structural problems (unknown variable) cannot be fixed by
			// moving constants; surface them as an infeasible objective.
			return math.Inf(1)
		}
		return SSE(pred, ds.Target())
	}

	res, err := NelderMead(objective, x0, opts)
	if err != nil {
		return nil, 0, err
	}

	out := make(map[string]float64, len(names))
	for i, name := range names {
		out[name] = res.X[i]
	}
	return out, res.F, nil
}

// SSE returns Σ (pred−target)², with any non-finite term collapsing the
// whole sum to +Inf.
func SSE(pred, target []float64) float64 {
	var s float64
	for i := range pred {
		d := pred[i] - target[i]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return math.Inf(1)
		}
		s += d * d
	}
	return s
}
