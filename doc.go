// Package eqsearch is a symbolic-regression engine: it discovers closed-form
// equations that explain a numeric dataset, by Markov-chain Monte Carlo search
// over equation trees scored by description length.
//
// 🚀 What is eqsearch?
//
//	A Bayesian machine-scientist toolkit that brings together:
//		• primitive/ — the closed vocabulary of equation-tree node operations
//		• exprtree/  — candidate equation trees: build, render, evaluate
//		• prior/     — prior hyperparameter tables over primitive usage
//		• fit/       — derivative-free least-squares fitting of tree constants
//		• mcmc/      — a single annealed Metropolis chain over tree shapes
//		• parallel/  — parallel tempering across a temperature ladder
//		• search/    — one-call orchestration: dataset in, best equation out
//
// ✨ Why choose eqsearch?
//
//   - Deterministic – every stochastic component is seeded; same seed ⇒ same run
//   - Strict numerics – out-of-domain inputs fail loudly, never silently clamp
//   - Pure Go – no cgo, no runtime code generation
//   - Composable – use the one-call search, or drive chains and swaps yourself
//
// Quick sketch of a candidate tree for y ≈ a0 · exp(X0):
//
//	    (*)
//	   /   \
//	  a0   exp
//	        │
//	        X0
//
// Start with search.Run for the batteries-included path, or read
// primitive/doc.go for the exact numeric contract of every operation.
//
//	go get github.com/katalvlaran/eqsearch
package eqsearch
