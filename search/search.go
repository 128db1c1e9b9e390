// Package search - options, result and the Run loop.
package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/fit"
	"github.com/katalvlaran/eqsearch/parallel"
	"github.com/katalvlaran/eqsearch/prior"
)

// ErrBadOptions indicates a non-positive epoch budget or LogEvery.
var ErrBadOptions = errors.New("search: options out of range")

// defaultEpochs is the sweep budget a default search spends; enough for the
// default ladder to equilibrate on small symbolic-regression problems.
const defaultEpochs = 1500

// Options configures a search run.
//
// Zero-value fields take defaults; Options{} is a valid argument except for
// explicit negatives.
//
// Fields:
//   - Epochs       — tempering sweeps to run (default 1500).
//   - Temperatures — ladder (default parallel.DefaultTemperatures()).
//   - Prior        — structural prior table (default prior.Default()).
//   - NumParams    — fitted constants a0..a{n-1} available (default 1).
//   - MaxSize      — node-count cap on candidates (default mcmc's 50).
//   - Seed         — base seed for every stream in the run; 0 is the fixed
//     default stream, so even unseeded runs replay.
//   - Fit          — constant-fitting budget per proposal.
//   - Logger       — optional progress logger; nil keeps the run silent.
//   - LogEvery     — epochs between progress records (default 100).
type Options struct {
	Epochs       int
	Temperatures []float64
	Prior        prior.Table
	NumParams    int
	MaxSize      int
	Seed         int64
	Fit          fit.Options
	Logger       *slog.Logger
	LogEvery     int
}

// DefaultOptions returns the default search tuning.
func DefaultOptions() Options {
	return Options{
		Epochs:   defaultEpochs,
		LogEvery: 100,
	}
}

// Model is the final state of one temperature after a run.
type Model struct {
	Tree        *exprtree.Node
	Params      map[string]float64
	Energy      float64
	Temperature float64
}

// Result is the outcome of a run.
type Result struct {
	// Tree is the best candidate seen at the cold end of the ladder.
	Tree *exprtree.Node
	// Params holds Tree's fitted constants.
	Params map[string]float64
	// Loss is Tree's description length.
	Loss float64
	// Trace records the cold chain's description length after every epoch.
	Trace []float64
	// Models is the final candidate of every temperature, coldest first.
	Models []Model
}

// Render returns the best equation with fitted constants substituted,
// rounded to the given decimals.
func (r Result) Render(decimals int) string { return r.Tree.Render(r.Params, decimals) }

// Run executes the search.
//
// Contracts:
//   - ds must be a valid exprtree.Dataset;
//   - negative Epochs or LogEvery is ErrBadOptions; zeros take defaults;
//   - ctx cancellation stops the run with ctx.Err(); partial progress is
//     discarded, matching the all-or-nothing contract of the Result.
//
// Complexity: O(Epochs · temperatures) chain steps.
func Run(ctx context.Context, ds *exprtree.Dataset, opts Options) (Result, error) {
	if opts.Epochs < 0 || opts.LogEvery < 0 {
		return Result{}, ErrBadOptions
	}
	def := DefaultOptions()
	if opts.Epochs == 0 {
		opts.Epochs = def.Epochs
	}
	if opts.LogEvery == 0 {
		opts.LogEvery = def.LogEvery
	}

	pt, err := parallel.New(ds, parallel.Options{
		Temperatures: opts.Temperatures,
		Prior:        opts.Prior,
		NumParams:    opts.NumParams,
		MaxSize:      opts.MaxSize,
		Seed:         opts.Seed,
		Fit:          opts.Fit,
	})
	if err != nil {
		return Result{}, err
	}

	// Stage 1 - seed the best-seen record with the cold start.
	bestTree, bestParams, bestLoss := pt.Best()
	trace := make([]float64, 0, opts.Epochs)

	// Stage 2 - sweep.
	for epoch := 1; epoch <= opts.Epochs; epoch++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = pt.Step(ctx); err != nil {
			return Result{}, err
		}

		tree, params, energy := pt.Best()
		trace = append(trace, energy)
		if energy < bestLoss {
			bestTree, bestParams, bestLoss = tree, params, energy
		}

		if opts.Logger != nil && epoch%opts.LogEvery == 0 {
			opts.Logger.InfoContext(ctx, "search progress",
				slog.Int("epoch", epoch),
				slog.Float64("cold_energy", energy),
				slog.Float64("best_loss", bestLoss),
				slog.String("best", bestTree.String()),
				slog.Float64("swap_rate", pt.SwapRate()),
			)
		}
	}

	// Stage 3 - final per-temperature models.
	chains := pt.Chains()
	ts := pt.Temperatures()
	models := make([]Model, len(chains))
	for i, ch := range chains {
		models[i] = Model{
			Tree:        ch.Tree(),
			Params:      ch.Params(),
			Energy:      ch.Energy(),
			Temperature: ts[i],
		}
	}

	return Result{
		Tree:   bestTree,
		Params: bestParams,
		Loss:   bestLoss,
		Trace:  trace,
		Models: models,
	}, nil
}
