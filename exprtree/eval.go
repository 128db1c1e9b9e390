// Package exprtree - tree evaluation, scalar and vectorized.
package exprtree

import (
	"fmt"

	"github.com/katalvlaran/eqsearch/primitive"
)

// Eval computes the tree's value for one binding of variables and fitted
// parameters.
//
// Contracts:
//   - every variable leaf must have a value in vars (ErrUnknownVariable);
//   - every fitted parameter must have a value in params (ErrUnknownParameter);
//   - policy follows package primitive: under StrictDomain the first domain
//     failure aborts with an error wrapping primitive.ErrNumericDomain;
//     under NaNPropagation non-finite values flow through arithmetic.
//
// Complexity: O(n) in node count.
func (n *Node) Eval(vars, params map[string]float64, policy primitive.Policy) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	if n.Type == VarNode {
		v, ok := vars[n.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, n.Name)
		}
		return v, nil
	}

	var param float64
	if n.Op.NumParams() == 1 {
		p, ok := params[n.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownParameter, n.Name)
		}
		param = p
	}

	// Binary is the widest arity in the catalogue; evaluate into a fixed
	// buffer to keep the recursion allocation-free.
	var args [2]float64
	for i, c := range n.Children {
		v, err := c.Eval(vars, params, policy)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return n.Op.Eval(policy, param, args[:len(n.Children)]...)
}

// EvalColumn evaluates the tree over every row of the dataset, returning one
// prediction per row.
//
// Under StrictDomain the first out-of-domain row aborts the whole column;
// under NaNPropagation the output may contain NaN/±Inf entries, which is the
// mode the search engine uses before penalizing non-finite predictions.
//
// Complexity: O(rows · n) time, O(rows) space for the result.
func EvalColumn(n *Node, ds *Dataset, params map[string]float64, policy primitive.Policy) ([]float64, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if ds == nil || ds.n == 0 {
		return nil, ErrEmptyDataset
	}

	// Bind only the variables the tree actually references.
	names := n.Vars()
	cols := make([][]float64, len(names))
	for i, name := range names {
		col := ds.Column(name)
		if col == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
		}
		cols[i] = col
	}

	out := make([]float64, ds.n)
	vars := make(map[string]float64, len(names))
	var err error
	for row := 0; row < ds.n; row++ {
		for i, name := range names {
			vars[name] = cols[i][row]
		}
		out[row], err = n.Eval(vars, params, policy)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return out, nil
}
