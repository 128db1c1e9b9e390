// Package prior holds the hyperparameter tables that weight primitive usage
// in a candidate equation's description length.
//
// 🚀 What is a prior table?
//
//	For every primitive o, a linear weight Nopi_o and an optional quadratic
//	weight Nopi2_o.  A tree instantiating o exactly n times contributes
//	Nopi_o·n + Nopi2_o·n² to its structural energy, so rarely-useful
//	primitives cost more to include and repetition is discouraged.  Tables
//	are calibrated for a (number of variables, number of parameters) regime.
//
// ✨ Key features:
//   - Embedded defaults for one-, two- and three-variable regimes
//   - User tables loadable from YAML documents (Load / LoadFile)
//   - Strict validation: a weight for an op outside the primitive catalogue
//     is rejected with ErrUnknownOp, never ignored
//
// ⚙️ Usage:
//
//	t := prior.Default()                  // nv=1, np=5 regime
//	t, err := prior.For(2, 5)             // pick by dataset shape
//	t, err := prior.LoadFile("my.yaml")   // calibrated elsewhere
//	e := t.Energy(tree.OpCounts())        // structural energy of a tree
//
// YAML document shape:
//
//	num_vars: 1
//	num_params: 5
//	weights:
//	  Nopi_+: 3.0
//	  Nopi2_**: 1.1
//
// Concurrency: tables are immutable after construction and safe to share.
package prior
