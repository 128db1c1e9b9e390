// Package parallel couples a ladder of MCMC chains by parallel tempering.
//
// 🚀 What is parallel tempering?
//
//	One chain per temperature walks the same dataset: the cold chain (T=1)
//	samples the target distribution, hotter chains flatten it and cross
//	description-length barriers freely.  After each sweep, two adjacent
//	temperatures may swap their candidate equations, letting discoveries
//	percolate down the ladder to the cold chain.
//
// ✨ Key features:
//   - The canonical ladder DefaultTemperatures(): 1.0, 1.04¹ … 1.04¹⁹
//   - One goroutine per chain per sweep via errgroup, context-aware
//   - Independent deterministic RNG streams per temperature: a seeded
//     ensemble replays exactly
//   - Swap acceptance min(1, exp((1/Tᵢ − 1/Tⱼ)(Eᵢ − Eⱼ))) preserving each
//     chain's stationary distribution
//
// ⚙️ Usage:
//
//	pt, err := parallel.New(ds, parallel.Options{Seed: 42})
//	for epoch := 0; epoch < 1500; epoch++ {
//	    if err = pt.Step(ctx); err != nil { ... }
//	}
//	tree, params, energy := pt.Best() // the cold chain's candidate
//
// Concurrency: Step owns all chains while it runs; do not call Tempering
// methods from other goroutines concurrently with Step.
//
// Complexity: one Step costs one mcmc.Chain.Step per temperature, run
// concurrently, plus an O(1) swap attempt.
package parallel
