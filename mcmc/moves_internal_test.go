package mcmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/primitive"
)

// slopeChain builds a chain with three fitted names, so the slope-name
// draw is a genuine 1/3 choice rather than the degenerate single name.
func slopeChain(t *testing.T) *Chain {
	t.Helper()
	ds, err := exprtree.NewDataset(
		map[string][]float64{"X0": {1, 2, 3, 4}},
		[]float64{2, 4, 6, 8},
	)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.NumParams = 3
	cfg.Seed = 7
	c, err := New(ds, cfg)
	require.NoError(t, err)
	return c
}

// TestRootMove_SlopeNameFactor pins the proposal corrections across a
// slope-carrying root.  Drawing one of P slope names dilutes the growing
// direction by 1/P, so its correction carries the compensating P and the
// stripping direction the inverse; a slope-free root carries neither.
func TestRootMove_SlopeNameFactor(t *testing.T) {
	c := slopeChain(t)

	p := c.growRoot([]primitive.Kind{primitive.Sig})
	require.True(t, p.ok)
	assert.InDelta(t, 3.0, p.qcorr, 1e-12, "growing sig{b}(·) draws 1 of 3 names")

	c.tree = p.tree
	p = c.stripRoot([]primitive.Kind{primitive.Sig})
	require.True(t, p.ok)
	assert.InDelta(t, 1.0/3.0, p.qcorr, 1e-12, "stripping must mirror the grow correction")

	p = c.growRoot([]primitive.Kind{primitive.Exp})
	require.True(t, p.ok)
	assert.InDelta(t, 1.0, p.qcorr, 1e-12, "slope-free unary root needs no factor")
}

// TestElementaryMove_SlopeNameFactor checks the same factors on the
// elementary grow/shrink pair, isolated to a one-op pool over a one-leaf
// tree so every other choice count is 1.
func TestElementaryMove_SlopeNameFactor(t *testing.T) {
	c := slopeChain(t)

	p := c.growElementary([]primitive.Kind{primitive.Sig})
	require.True(t, p.ok)
	// |leaves(old)|=1, O=1, L^0=1, |elementary(new)|=1, slope factor 3.
	assert.InDelta(t, 3.0, p.qcorr, 1e-12)

	c.tree = p.tree
	p = c.shrinkElementary([]primitive.Kind{primitive.Sig})
	require.True(t, p.ok)
	assert.InDelta(t, 1.0/3.0, p.qcorr, 1e-12)
}
