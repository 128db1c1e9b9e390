// Package exprtree represents candidate equations as trees of primitive
// operations over named variables and fitted parameters.
//
// 🚀 What is an equation tree?
//
//	An immutable-by-convention expression such as (a0 * exp(X0)): internal
//	nodes are members of the primitive catalogue, leaves are either dataset
//	variables (X0, X1, …) or fitted constants (a0, a1, …).  The search
//	engine mutates trees; the fitter optimizes their constants; this package
//	owns shape, rendering and evaluation.
//
// ✨ Key features:
//   - Deep Clone, structural Equal, Size/Depth/Params/OpCounts inspection
//   - Canonical String() — stable infix form, usable as a cache key
//   - Latex() for publication-ready output, Render() with fitted values
//   - Scalar Eval and vectorized EvalColumn over a Dataset
//   - Both evaluation policies of package primitive: strict domain checking
//     or IEEE NaN/Inf propagation for engine-side penalization
//
// ⚙️ Usage:
//
//	x := exprtree.NewVar("X0")
//	a := exprtree.NewConst("a0")
//	e, err := exprtree.NewOp(primitive.Mul, "", a, mustExp(x))
//	// e.String() == "(a0 * exp(X0))"
//	ys, err := exprtree.EvalColumn(e, ds, map[string]float64{"a0": 2.5},
//	    primitive.NaNPropagation)
//
// Concurrency: trees are plain values with no internal synchronization.
// Share a tree across goroutines only for reading; Clone before mutating.
//
// Complexity: all whole-tree operations are O(n) in node count.
package exprtree
