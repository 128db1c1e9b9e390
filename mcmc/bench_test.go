package mcmc_test

import (
	"testing"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/mcmc"
)

// benchmarkStep drives a seeded chain with the given fit budget.
func benchmarkStep(b *testing.B, rows int) {
	xs := make([]float64, rows)
	ys := make([]float64, rows)
	for i := range xs {
		xs[i] = float64(i) / float64(rows)
		ys[i] = 2*xs[i] + 1
	}
	ds, err := exprtree.NewDataset(map[string][]float64{"X0": xs}, ys)
	if err != nil {
		b.Fatalf("dataset: %v", err)
	}

	cfg := mcmc.DefaultConfig()
	cfg.Seed = 1
	ch, err := mcmc.New(ds, cfg)
	if err != nil {
		b.Fatalf("chain: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = ch.Step(); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkStep_SmallData benchmarks one proposal+fit cycle on 50 rows.
func BenchmarkStep_SmallData(b *testing.B) { benchmarkStep(b, 50) }

// BenchmarkStep_MediumData benchmarks one proposal+fit cycle on 500 rows.
func BenchmarkStep_MediumData(b *testing.B) { benchmarkStep(b, 500) }
