// Package parallel - the Tempering ensemble.
package parallel

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/fit"
	"github.com/katalvlaran/eqsearch/mcmc"
	"github.com/katalvlaran/eqsearch/prior"
)

var (
	// ErrNoTemperatures indicates an empty ladder.
	ErrNoTemperatures = errors.New("parallel: temperature ladder must not be empty")
	// ErrBadLadder indicates a ladder that is not positive and non-decreasing
	// from the cold end.
	ErrBadLadder = errors.New("parallel: temperatures must be positive and non-decreasing")
)

// defaultLadderLen and defaultLadderBase define the canonical ladder:
// T_k = base^k for k = 0..len-1.
const (
	defaultLadderLen  = 20
	defaultLadderBase = 1.04
)

// DefaultTemperatures returns the canonical ladder 1.0, 1.04, … 1.04¹⁹.
// Geometric spacing keeps neighbouring swap acceptance roughly uniform.
func DefaultTemperatures() []float64 {
	ts := make([]float64, defaultLadderLen)
	ts[0] = 1
	for k := 1; k < defaultLadderLen; k++ {
		ts[k] = ts[k-1] * defaultLadderBase
	}
	return ts
}

// Options configures a tempering ensemble.
//
// Zero-value fields take defaults: DefaultTemperatures, prior.Default(),
// one fitted parameter, the mcmc default size cap, seed 0 (fixed stream).
type Options struct {
	Temperatures []float64
	Prior        prior.Table
	NumParams    int
	MaxSize      int
	Seed         int64
	Fit          fit.Options
}

// Tempering is a ladder of chains over one dataset.  Index 0 is coldest.
type Tempering struct {
	chains []*mcmc.Chain
	ts     []float64
	rng    *rand.Rand
	swaps  int
	tried  int
}

// New validates the ladder and builds one chain per temperature, each with
// an independent RNG stream derived from opts.Seed.
//
// Complexity: O(len(ladder)) constant fits (each chain scores its start).
func New(ds *exprtree.Dataset, opts Options) (*Tempering, error) {
	ts := opts.Temperatures
	if ts == nil {
		ts = DefaultTemperatures()
	}
	if len(ts) == 0 {
		return nil, ErrNoTemperatures
	}
	for i, T := range ts {
		if T <= 0 || math.IsNaN(T) || math.IsInf(T, 0) {
			return nil, ErrBadLadder
		}
		if i > 0 && ts[i] < ts[i-1] {
			return nil, ErrBadLadder
		}
	}

	base := mcmc.DefaultConfig()
	if opts.NumParams != 0 {
		base.NumParams = opts.NumParams
	}
	if opts.MaxSize != 0 {
		base.MaxSize = opts.MaxSize
	}
	if opts.Prior.NumVars != 0 {
		base.Prior = opts.Prior
	}
	if opts.Fit != (fit.Options{}) {
		base.Fit = opts.Fit
	}

	chains := make([]*mcmc.Chain, len(ts))
	for i, T := range ts {
		cfg := base
		cfg.Temperature = T
		cfg.Seed = mcmc.DeriveSeed(opts.Seed, uint64(i))
		ch, err := mcmc.New(ds, cfg)
		if err != nil {
			return nil, err
		}
		chains[i] = ch
	}

	return &Tempering{
		chains: chains,
		ts:     append([]float64(nil), ts...),
		// Stream id past the chain ids keeps the swap RNG uncorrelated.
		rng: rand.New(rand.NewSource(mcmc.DeriveSeed(opts.Seed, uint64(len(ts))))),
	}, nil
}

// Step advances every chain one MCMC step concurrently, then attempts one
// swap between a random adjacent temperature pair.
//
// Chains are independent between swaps, so the sweep parallelizes cleanly;
// ctx cancellation aborts the sweep early with ctx.Err().
func (t *Tempering) Step(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, ch := range t.chains {
		ch := ch
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := ch.Step()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	t.trySwap()
	return nil
}

// trySwap proposes exchanging the candidates of one adjacent pair.
func (t *Tempering) trySwap() {
	if len(t.chains) < 2 {
		return
	}
	i := t.rng.Intn(len(t.chains) - 1)
	a, b := t.chains[i], t.chains[i+1]
	t.tried++

	// Joint-distribution ratio for exchanging states between T_i and T_i+1.
	delta := (1/a.Temperature() - 1/b.Temperature()) * (a.Energy() - b.Energy())
	if math.IsNaN(delta) {
		return
	}
	if delta >= 0 || t.rng.Float64() < math.Exp(delta) {
		mcmc.Swap(a, b)
		t.swaps++
	}
}

// Chains returns the ladder's chains, coldest first.  The slice is shared;
// treat it as read-only and never drive a chain while Step is running.
func (t *Tempering) Chains() []*mcmc.Chain { return t.chains }

// Temperatures returns a copy of the ladder.
func (t *Tempering) Temperatures() []float64 { return append([]float64(nil), t.ts...) }

// Best returns the cold chain's candidate: tree, fitted constants, energy.
func (t *Tempering) Best() (*exprtree.Node, map[string]float64, float64) {
	cold := t.chains[0]
	return cold.Tree(), cold.Params(), cold.Energy()
}

// SwapRate returns accepted/attempted swaps so far (0 before any attempt).
func (t *Tempering) SwapRate() float64 {
	if t.tried == 0 {
		return 0
	}
	return float64(t.swaps) / float64(t.tried)
}
