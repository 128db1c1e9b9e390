package parallel_test

import (
	"context"
	"sort"
	"testing"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadDS builds y = x² − 3 over 16 rows.
func quadDS(t *testing.T) *exprtree.Dataset {
	t.Helper()
	xs := make([]float64, 16)
	ys := make([]float64, 16)
	for i := range xs {
		xs[i] = float64(i)/3 - 2
		ys[i] = xs[i]*xs[i] - 3
	}
	ds, err := exprtree.NewDataset(map[string][]float64{"X0": xs}, ys)
	require.NoError(t, err)
	return ds
}

// TestDefaultTemperatures locks the canonical ladder shape.
func TestDefaultTemperatures(t *testing.T) {
	ts := parallel.DefaultTemperatures()
	require.Len(t, ts, 20)
	assert.Equal(t, 1.0, ts[0], "the cold end samples the target")
	assert.InDelta(t, 1.04, ts[1], 1e-12)
	assert.True(t, sort.Float64sAreSorted(ts), "ladder must be non-decreasing")
	assert.InDelta(t, 2.1068, ts[19], 1e-3, "1.04^19")
}

// TestNew_Validation covers ladder contracts.
func TestNew_Validation(t *testing.T) {
	ds := quadDS(t)

	_, err := parallel.New(ds, parallel.Options{Temperatures: []float64{}})
	assert.ErrorIs(t, err, parallel.ErrNoTemperatures)

	_, err = parallel.New(ds, parallel.Options{Temperatures: []float64{1, 0.5}})
	assert.ErrorIs(t, err, parallel.ErrBadLadder, "decreasing ladder")

	_, err = parallel.New(ds, parallel.Options{Temperatures: []float64{-1}})
	assert.ErrorIs(t, err, parallel.ErrBadLadder, "non-positive temperature")
}

// TestNew_ChainsMatchLadder checks one chain per rung with its temperature.
func TestNew_ChainsMatchLadder(t *testing.T) {
	ladder := []float64{1, 1.2, 1.5}
	pt, err := parallel.New(quadDS(t), parallel.Options{Temperatures: ladder, Seed: 5})
	require.NoError(t, err)

	chains := pt.Chains()
	require.Len(t, chains, 3)
	for i, ch := range chains {
		assert.Equal(t, ladder[i], ch.Temperature(), "rung %d", i)
	}
	assert.Equal(t, ladder, pt.Temperatures())
}

// TestStep_RunsAndStaysValid sweeps the ensemble and checks every chain
// keeps a valid candidate.
func TestStep_RunsAndStaysValid(t *testing.T) {
	pt, err := parallel.New(quadDS(t), parallel.Options{
		Temperatures: []float64{1, 1.1, 1.3, 1.6},
		Seed:         21,
		MaxSize:      10,
	})
	require.NoError(t, err)

	ctx := context.Background()
	for epoch := 0; epoch < 60; epoch++ {
		require.NoError(t, pt.Step(ctx), "epoch %d", epoch)
		for i, ch := range pt.Chains() {
			require.NoError(t, ch.Tree().Validate(), "epoch %d rung %d", epoch, i)
			require.LessOrEqual(t, ch.Tree().Size(), 10, "epoch %d rung %d", epoch, i)
		}
	}

	tree, params, energy := pt.Best()
	assert.NotNil(t, tree)
	assert.NotNil(t, params)
	assert.False(t, energy != energy, "best energy must not be NaN")
}

// TestStep_Cancellation aborts a sweep through the context.
func TestStep_Cancellation(t *testing.T) {
	pt, err := parallel.New(quadDS(t), parallel.Options{
		Temperatures: []float64{1, 1.1},
		Seed:         2,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pt.Step(ctx), context.Canceled)
}

// TestStep_Deterministic demands identical ensembles for identical seeds.
func TestStep_Deterministic(t *testing.T) {
	run := func() []string {
		pt, err := parallel.New(quadDS(t), parallel.Options{
			Temperatures: []float64{1, 1.2, 1.5},
			Seed:         77,
		})
		require.NoError(t, err)
		for epoch := 0; epoch < 40; epoch++ {
			require.NoError(t, pt.Step(context.Background()))
		}
		out := make([]string, 0, 3)
		for _, ch := range pt.Chains() {
			out = append(out, ch.Tree().String())
		}
		return out
	}

	assert.Equal(t, run(), run(), "seeded ensembles must replay exactly")
}
