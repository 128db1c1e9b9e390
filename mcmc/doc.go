// Package mcmc runs a single Metropolis–Hastings chain over equation trees,
// scored by description length.
//
// 🚀 What is the chain?
//
//	A random walk through the space of candidate equations.  Each step
//	proposes a local rewrite of the current tree (retype a node, grow or
//	shrink an elementary subtree, wrap or strip the root), refits the
//	tree's constants, and accepts or rejects the proposal at the chain's
//	temperature.  Cold chains exploit; hot chains explore; package parallel
//	couples a ladder of them.
//
// ✨ Key features:
//   - Description length E = BIC/2 + structural prior energy, so accuracy
//     and simplicity trade off in one number
//   - Three reversible move families with explicit Hastings corrections
//   - Per-chain deterministic RNG: same seed ⇒ identical trajectory
//   - Constant-fit cache keyed by canonical tree form — a shape revisited
//     anywhere in the walk reuses its fitted constants
//
// ⚙️ Usage:
//
//	cfg := mcmc.DefaultConfig()
//	cfg.Seed = 42
//	ch, err := mcmc.New(ds, cfg)
//	for i := 0; i < 1000; i++ {
//	    if _, err = ch.Step(); err != nil { ... }
//	}
//	best := ch.Tree() // current equation, ch.Energy() its description length
//
// Concurrency: a Chain is single-goroutine; run one chain per goroutine and
// couple them through Swap between steps (see package parallel).
//
// Complexity: one Step costs one constant fit, O(FitIter · rows · nodes).
package mcmc
