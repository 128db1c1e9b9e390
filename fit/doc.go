// Package fit optimizes the fitted constants embedded in a candidate
// equation tree against a dataset.
//
// 🚀 What does it do?
//
//	Given a tree shape, the constants (a0, a1, … and logistic slopes) are
//	free real parameters.  fit minimizes the sum of squared errors between
//	the tree's predictions and the dataset target over those parameters,
//	using a derivative-free Nelder–Mead simplex — candidate equations are
//	routinely non-smooth or partial, so gradients are not assumed.
//
// ✨ Key features:
//   - NelderMead: a self-contained minimizer of func([]float64) float64,
//     tolerant of +Inf objective values (infeasible points are repelled)
//   - LeastSquares: the tree-aware wrapper; evaluates under NaN propagation
//     and penalizes non-finite predictions as +Inf
//   - Deterministic: no randomness, same start ⇒ same result
//
// ⚙️ Usage:
//
//	params, sse, err := fit.LeastSquares(tree, ds, nil, fit.DefaultOptions())
//	res, err := fit.NelderMead(f, []float64{0, 0}, fit.DefaultOptions())
//
// Complexity: O(MaxIter · dim) objective evaluations; each tree objective
// evaluation is O(rows · nodes).
package fit
