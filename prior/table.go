// Package prior - the Table type and structural-energy evaluation.
package prior

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/eqsearch/primitive"
)

var (
	// ErrUnknownOp indicates a weight key naming a primitive outside the
	// catalogue (or a key without the Nopi_/Nopi2_ prefix).
	ErrUnknownOp = errors.New("prior: weight key names an unknown primitive")
	// ErrBadTable indicates a non-positive regime (num_vars or num_params < 1).
	ErrBadTable = errors.New("prior: table regime must have at least one variable and one parameter")
	// ErrNoTable indicates no embedded default exists for the requested regime.
	ErrNoTable = errors.New("prior: no default table for the requested regime")
)

// linearPrefix and quadraticPrefix are the two key families of a table.
const (
	linearPrefix    = "Nopi_"
	quadraticPrefix = "Nopi2_"
)

// Table is an immutable prior over primitive usage, calibrated for a given
// (NumVars, NumParams) regime.  Build one with For, Load, LoadFile or New.
type Table struct {
	// NumVars and NumParams record the regime the weights were calibrated
	// for; they are informative, not enforced against the dataset.
	NumVars   int
	NumParams int

	weights map[string]float64
}

// New validates the weight map and wraps it in a Table.
//
// Every key must be Nopi_<op> or Nopi2_<op> where <op> is a catalogue name;
// otherwise ErrUnknownOp with the offending key.
//
// Complexity: O(len(weights)).
func New(numVars, numParams int, weights map[string]float64) (Table, error) {
	if numVars < 1 || numParams < 1 {
		return Table{}, ErrBadTable
	}
	w := make(map[string]float64, len(weights))
	for key, v := range weights {
		name := strings.TrimPrefix(key, quadraticPrefix)
		if name == key {
			name = strings.TrimPrefix(key, linearPrefix)
			if name == key {
				return Table{}, fmt.Errorf("%w: %q", ErrUnknownOp, key)
			}
		}
		if _, err := primitive.Lookup(name); err != nil {
			return Table{}, fmt.Errorf("%w: %q", ErrUnknownOp, key)
		}
		w[key] = v
	}
	return Table{NumVars: numVars, NumParams: numParams, weights: w}, nil
}

// Weight returns the value stored under the full key ("Nopi_+", "Nopi2_exp").
// Absent keys weigh zero.
func (t Table) Weight(key string) float64 { return t.weights[key] }

// Energy returns the structural part of a tree's description length for the
// given per-primitive instantiation counts (see exprtree.Node.OpCounts):
//
//	Σ_o  Nopi_o·n_o + Nopi2_o·n_o²
//
// Primitives without a weight contribute nothing, so default tables leave
// fitted constants free and let BIC penalize their parameters instead.
//
// Complexity: O(len(counts)).
func (t Table) Energy(counts map[primitive.Kind]int) float64 {
	var e float64
	for k, n := range counts {
		if n == 0 {
			continue
		}
		name := k.String()
		c := float64(n)
		e += t.weights[linearPrefix+name]*c + t.weights[quadraticPrefix+name]*c*c
	}
	return e
}
