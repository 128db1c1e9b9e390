// Package mcmc - the chain: state, scoring, Metropolis acceptance.
package mcmc

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/fit"
)

// Chain is one Metropolis–Hastings walker over equation trees.
//
// All state is private; a Chain must be driven from a single goroutine.
type Chain struct {
	ds     *exprtree.Dataset
	vars   []string
	params []string
	cfg    Config
	rng    *rand.Rand

	tree   *exprtree.Node
	fitted map[string]float64
	sse    float64
	energy float64

	// cache maps canonical tree form → fitted constants and SSE, so a shape
	// revisited anywhere in the walk skips the simplex entirely.
	cache map[string]fitEntry

	steps    int
	accepted int
}

// fitEntry is one cached constant fit.
type fitEntry struct {
	params map[string]float64
	sse    float64
}

// New builds a chain over ds.
//
// Contracts:
//   - ds must be non-nil with at least one row (exprtree.ErrEmptyDataset);
//   - cfg.Temperature > 0 (ErrBadTemperature);
//   - cfg.NumParams ≥ 1 and cfg.MaxSize ≥ 3 after defaulting (ErrBadConfig);
//     zero NumParams/MaxSize take DefaultConfig values.
//
// The walk starts from a uniformly chosen variable leaf.
//
// Complexity: one constant fit.
func New(ds *exprtree.Dataset, cfg Config) (*Chain, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, exprtree.ErrEmptyDataset
	}
	if cfg.Temperature <= 0 || math.IsNaN(cfg.Temperature) || math.IsInf(cfg.Temperature, 0) {
		return nil, ErrBadTemperature
	}
	def := DefaultConfig()
	if cfg.NumParams == 0 {
		cfg.NumParams = def.NumParams
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = def.MaxSize
	}
	if cfg.Prior.NumVars == 0 {
		cfg.Prior = def.Prior
	}
	if cfg.NumParams < 0 || cfg.MaxSize < minTreeSize {
		return nil, ErrBadConfig
	}

	params := make([]string, cfg.NumParams)
	for i := range params {
		params[i] = fmt.Sprintf("a%d", i)
	}

	c := &Chain{
		ds:     ds,
		vars:   ds.Vars(),
		params: params,
		cfg:    cfg,
		rng:    rngFromSeed(cfg.Seed),
		cache:  map[string]fitEntry{},
	}

	c.tree = exprtree.NewVar(c.vars[c.rng.Intn(len(c.vars))])
	entry, err := c.score(c.tree)
	if err != nil {
		return nil, err
	}
	c.adopt(c.tree, entry)
	return c, nil
}

// Step proposes one move and applies the Metropolis–Hastings decision.
// It reports whether the proposal was adopted.  A step whose move family
// has no applicable site counts as a rejection, not an error.
func (c *Chain) Step() (bool, error) {
	c.steps++

	var p proposal
	switch c.rng.Intn(3) {
	case 0:
		p = c.proposeNodeReplacement()
	case 1:
		p = c.proposeElementaryReplacement()
	default:
		p = c.proposeRootReplacement()
	}
	if !p.ok {
		return false, nil
	}

	entry, err := c.score(p.tree)
	if err != nil {
		return false, err
	}
	newE := DescriptionLength(entry.sse, c.ds.Len(), len(p.tree.Params()), c.cfg.Prior.Energy(p.tree.OpCounts()))

	// Metropolis–Hastings at temperature T with proposal correction q.
	dE := newE - c.energy
	if math.IsNaN(dE) {
		// Both energies infinite: fall back to the bare correction factor.
		dE = 0
	}
	accept := dE <= 0 && p.qcorr >= 1
	if !accept {
		prob := p.qcorr * math.Exp(-dE/c.cfg.Temperature)
		accept = c.rng.Float64() < prob
	}
	if !accept {
		return false, nil
	}

	c.adoptWithEnergy(p.tree, entry, newE)
	c.accepted++
	return true, nil
}

// score returns the fitted constants and SSE for tree, via the cache.
// The current fitted values warm-start the simplex for related shapes.
func (c *Chain) score(tree *exprtree.Node) (fitEntry, error) {
	key := tree.String()
	if e, ok := c.cache[key]; ok {
		return e, nil
	}
	params, sse, err := fit.LeastSquares(tree, c.ds, c.fitted, c.cfg.Fit)
	if err != nil {
		return fitEntry{}, err
	}
	e := fitEntry{params: params, sse: sse}
	c.cache[key] = e
	return e, nil
}

// adopt recomputes the energy for the entry and installs the state.
func (c *Chain) adopt(tree *exprtree.Node, e fitEntry) {
	c.adoptWithEnergy(tree, e,
		DescriptionLength(e.sse, c.ds.Len(), len(tree.Params()), c.cfg.Prior.Energy(tree.OpCounts())))
}

// adoptWithEnergy installs a scored state without recomputation.
func (c *Chain) adoptWithEnergy(tree *exprtree.Node, e fitEntry, energy float64) {
	c.tree = tree
	c.fitted = e.params
	c.sse = e.sse
	c.energy = energy
}

// Tree returns a deep copy of the current candidate.
func (c *Chain) Tree() *exprtree.Node { return c.tree.Clone() }

// Params returns a copy of the current fitted constants.
func (c *Chain) Params() map[string]float64 {
	out := make(map[string]float64, len(c.fitted))
	for k, v := range c.fitted {
		out[k] = v
	}
	return out
}

// Energy returns the description length of the current candidate.
func (c *Chain) Energy() float64 { return c.energy }

// SSE returns the sum of squared errors of the current candidate.
func (c *Chain) SSE() float64 { return c.sse }

// Temperature returns the chain's Metropolis temperature.
func (c *Chain) Temperature() float64 { return c.cfg.Temperature }

// AcceptanceRate returns accepted/attempted steps so far (0 before any step).
func (c *Chain) AcceptanceRate() float64 {
	if c.steps == 0 {
		return 0
	}
	return float64(c.accepted) / float64(c.steps)
}

// Swap exchanges the candidate states of two chains, leaving temperatures,
// RNG streams and fit caches in place.  Energies do not depend on
// temperature, so they travel with the trees.  Parallel tempering's swap
// move is exactly this exchange after its own acceptance test.
func Swap(a, b *Chain) {
	a.tree, b.tree = b.tree, a.tree
	a.fitted, b.fitted = b.fitted, a.fitted
	a.sse, b.sse = b.sse, a.sse
	a.energy, b.energy = b.energy, a.energy
}
