// Package search is the one-call front of the engine: dataset in, best
// equation out.
//
// 🚀 What does Run do?
//
//	It builds a parallel-tempering ensemble over the dataset, sweeps it for
//	a fixed number of epochs, records the cold chain's description length
//	after every sweep, and keeps the single best candidate ever seen at the
//	cold end.  The result carries the winning tree, its fitted constants,
//	its description length, the per-epoch trace, and the final state of
//	every temperature.
//
// ⚙️ Usage:
//
//	ds, err := exprtree.NewDataset(map[string][]float64{"X0": xs}, ys)
//	res, err := search.Run(ctx, ds, search.DefaultOptions())
//	fmt.Println(res.Tree.Render(res.Params, 2)) // e.g. (2 * pow2(X0))
//
// Progress logging is opt-in: set Options.Logger to a *slog.Logger and the
// run reports the best description length every LogEvery epochs.  The
// library stays silent otherwise.
//
// Complexity: Epochs · len(Temperatures) chain steps, each one constant fit.
package search
