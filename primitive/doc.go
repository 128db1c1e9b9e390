// Package primitive defines the closed vocabulary of equation-tree node
// operations and their exact numeric semantics.
//
// 🚀 What is a primitive?
//
//	An atomic computation node usable inside a candidate symbolic-expression
//	tree: a fitted constant, an arithmetic operator, or an elementary
//	function.  The catalogue is fixed at compile time, so any two consumers
//	of this package evaluate identical trees to identical values.
//
// ✨ Key properties:
//   - Closed sum type: Kind is an exhaustive enum; Eval switches over every
//     member, so an unhandled primitive is impossible to introduce silently.
//   - Pure: every primitive is a deterministic function of its inputs and
//     (for constant and sig) one fitted parameter.  No state, no transitions.
//   - Strict domains: log of a non-positive, sqrt of a negative, division by
//     zero, the Γ pole, a negative base under a fractional exponent, and
//     overflow to a non-finite value all fail with ErrNumericDomain.
//   - Opt-in NaN propagation: callers that prefer IEEE semantics (the search
//     engine penalizes non-finite predictions itself) pass NaNPropagation
//     and receive raw ±Inf/NaN without an error.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eqsearch/primitive"
//
//	k, err := primitive.Lookup("sqrt")
//	if err != nil { ... }                        // ErrUnknownPrimitive
//	v, err := k.Eval(primitive.StrictDomain, 0, 4)
//	// v == 2.0
//	_, err = k.Eval(primitive.StrictDomain, 0, -1)
//	// errors.Is(err, primitive.ErrNumericDomain)
//
// Concurrency: the catalogue is an immutable read-only table; Eval is safe
// from any number of goroutines without synchronization.
//
// Complexity: every operation is O(1).
package primitive
