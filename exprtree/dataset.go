// Package exprtree - the engine-facing dataset shape.
package exprtree

import "sort"

// Dataset holds named independent-variable columns and the target vector,
// all of one shared length.  It is the evaluation substrate for EvalColumn
// and the scoring substrate for the search engine.
//
// Construct with NewDataset; the struct is read-only afterwards.
type Dataset struct {
	vars    []string
	columns map[string][]float64
	target  []float64
	n       int
}

// NewDataset validates and wraps columns plus target.
//
// Contracts:
//   - at least one column and at least one row (ErrEmptyDataset);
//   - every column and the target share one length (ErrColumnLength);
//   - no empty column name (ErrEmptyName).
//
// Column slices are referenced, not copied; callers must not mutate them
// after construction.
//
// Complexity: O(columns).
func NewDataset(columns map[string][]float64, target []float64) (*Dataset, error) {
	if len(columns) == 0 || len(target) == 0 {
		return nil, ErrEmptyDataset
	}
	n := len(target)
	vars := make([]string, 0, len(columns))
	for name, col := range columns {
		if name == "" {
			return nil, ErrEmptyName
		}
		if len(col) != n {
			return nil, ErrColumnLength
		}
		vars = append(vars, name)
	}
	// Stable variable order regardless of map iteration.
	sort.Strings(vars)
	return &Dataset{vars: vars, columns: columns, target: target, n: n}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// Vars returns the column names in stable (sorted) order.
// The returned slice is shared; do not mutate.
func (d *Dataset) Vars() []string { return d.vars }

// Column returns the named column, or nil when absent.
func (d *Dataset) Column(name string) []float64 { return d.columns[name] }

// Target returns the dependent-variable vector.
func (d *Dataset) Target() []float64 { return d.target }
