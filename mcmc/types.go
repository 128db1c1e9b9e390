package mcmc

import (
	"errors"

	"github.com/katalvlaran/eqsearch/fit"
	"github.com/katalvlaran/eqsearch/prior"
)

var (
	// ErrBadTemperature indicates a non-positive chain temperature.
	ErrBadTemperature = errors.New("mcmc: temperature must be positive")
	// ErrBadConfig indicates a config outside the documented ranges
	// (NumParams < 1, or MaxSize too small to hold any operation node).
	ErrBadConfig = errors.New("mcmc: config out of range")
)

// minTreeSize is the smallest usable MaxSize: a binary root plus two leaves.
const minTreeSize = 3

// Config tunes one chain.
//
// Fields:
//   - Temperature — Metropolis temperature; 1 is the target distribution,
//     larger values flatten it (used by parallel tempering ladders).
//   - Prior       — structural prior table (prior.Default() when zero).
//   - NumParams   — how many fitted constants a0..a{n-1} proposals may use.
//   - MaxSize     — node-count cap on candidate trees.
//   - Seed        — RNG seed; 0 selects the fixed default stream.
//   - Fit         — constant-fitting budget per proposal.
type Config struct {
	Temperature float64
	Prior       prior.Table
	NumParams   int
	MaxSize     int
	Seed        int64
	Fit         fit.Options
}

// DefaultConfig returns the tuning the search orchestrator starts from:
// unit temperature, the default prior, one fitted constant, trees of at
// most 50 nodes.
func DefaultConfig() Config {
	return Config{
		Temperature: 1.0,
		Prior:       prior.Default(),
		NumParams:   1,
		MaxSize:     50,
		Fit:         fit.DefaultOptions(),
	}
}
