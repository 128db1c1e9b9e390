// Package fit - the Nelder–Mead downhill simplex.
//
// Standard coefficients (reflection 1, expansion 2, contraction ½, shrink ½)
// and deterministic tie-breaking: no randomness anywhere, so a given start
// always yields the same minimum.
package fit

import (
	"math"
	"sort"
)

// Simplex coefficients; the classic Nelder–Mead values.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

// NelderMead minimizes obj starting from x0.
//
// Contracts:
//   - obj must be non-nil (ErrNoObjective), x0 non-empty (ErrEmptyStart);
//   - negative MaxIter/Step/tolerances are ErrBadOptions; zeros take the
//     DefaultOptions() values;
//   - obj may return +Inf or NaN; such vertices sort worst and are walked
//     away from, which is how infeasible constant values are repelled.
//
// Complexity: O(MaxIter · dim) objective evaluations, O(dim²) memory.
func NelderMead(obj Objective, x0 []float64, opts Options) (Result, error) {
	if obj == nil {
		return Result{}, ErrNoObjective
	}
	if len(x0) == 0 {
		return Result{}, ErrEmptyStart
	}
	if opts.MaxIter < 0 || opts.Step < 0 || opts.TolF < 0 || opts.TolX < 0 {
		return Result{}, ErrBadOptions
	}
	def := DefaultOptions()
	if opts.MaxIter == 0 {
		opts.MaxIter = def.MaxIter
	}
	if opts.Step == 0 {
		opts.Step = def.Step
	}
	if opts.TolF == 0 {
		opts.TolF = def.TolF
	}
	if opts.TolX == 0 {
		opts.TolX = def.TolX
	}

	dim := len(x0)

	// Stage 1 - initial simplex: x0 plus one vertex per coordinate offset.
	verts := make([][]float64, dim+1)
	fvals := make([]float64, dim+1)
	verts[0] = append([]float64(nil), x0...)
	for i := 1; i <= dim; i++ {
		v := append([]float64(nil), x0...)
		v[i-1] += opts.Step
		verts[i] = v
	}
	for i := range verts {
		fvals[i] = sanitize(obj(verts[i]))
	}

	order := make([]int, dim+1)
	centroid := make([]float64, dim)
	trial := make([]float64, dim)

	res := Result{}
	for iter := 0; iter < opts.MaxIter; iter++ {
		res.Iters = iter + 1

		// Stage 2 - order vertices best → worst (stable for determinism).
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return fvals[order[a]] < fvals[order[b]] })
		best, worst, second := order[0], order[dim], order[dim-1]

		// Stage 3 - convergence: the objective spread AND the simplex diameter
		// must both collapse.  Spread alone is not enough: two vertices placed
		// symmetrically about the minimum score equal values while still
		// bracketing it.
		if spread(fvals[best], fvals[worst]) < opts.TolF && diameter(verts, best) < opts.TolX {
			res.Converged = true
			break
		}

		// Stage 4 - centroid of all but the worst vertex.
		for j := 0; j < dim; j++ {
			centroid[j] = 0
		}
		for _, i := range order[:dim] {
			for j := 0; j < dim; j++ {
				centroid[j] += verts[i][j]
			}
		}
		for j := 0; j < dim; j++ {
			centroid[j] /= float64(dim)
		}

		// Stage 5 - reflection.
		for j := 0; j < dim; j++ {
			trial[j] = centroid[j] + nmReflect*(centroid[j]-verts[worst][j])
		}
		fr := sanitize(obj(trial))

		switch {
		case fr < fvals[best]:
			// Expansion.
			expanded := make([]float64, dim)
			for j := 0; j < dim; j++ {
				expanded[j] = centroid[j] + nmExpand*(centroid[j]-verts[worst][j])
			}
			fe := sanitize(obj(expanded))
			if fe < fr {
				copy(verts[worst], expanded)
				fvals[worst] = fe
			} else {
				copy(verts[worst], trial)
				fvals[worst] = fr
			}
		case fr < fvals[second]:
			copy(verts[worst], trial)
			fvals[worst] = fr
		default:
			// Contraction toward the centroid.
			for j := 0; j < dim; j++ {
				trial[j] = centroid[j] + nmContract*(verts[worst][j]-centroid[j])
			}
			fc := sanitize(obj(trial))
			if fc < fvals[worst] {
				copy(verts[worst], trial)
				fvals[worst] = fc
			} else {
				// Shrink everything toward the best vertex.
				for _, i := range order[1:] {
					for j := 0; j < dim; j++ {
						verts[i][j] = verts[best][j] + nmShrink*(verts[i][j]-verts[best][j])
					}
					fvals[i] = sanitize(obj(verts[i]))
				}
			}
		}
	}

	// Stage 6 - report the best vertex.
	bi := 0
	for i := 1; i <= dim; i++ {
		if fvals[i] < fvals[bi] {
			bi = i
		}
	}
	res.X = append([]float64(nil), verts[bi]...)
	res.F = fvals[bi]
	return res, nil
}

// sanitize maps NaN objective values to +Inf so ordering stays total.
func sanitize(f float64) float64 {
	if math.IsNaN(f) {
		return math.Inf(1)
	}
	return f
}

// spread is the best-worst objective gap, finite-safe: any non-finite
// endpoint keeps the simplex iterating.
func spread(best, worst float64) float64 {
	if math.IsInf(worst, 0) || math.IsInf(best, 0) {
		return math.Inf(1)
	}
	return math.Abs(worst - best)
}

// diameter is the max coordinate distance from the best vertex.
func diameter(verts [][]float64, best int) float64 {
	var d float64
	for i := range verts {
		if i == best {
			continue
		}
		for j := range verts[i] {
			if dx := math.Abs(verts[i][j] - verts[best][j]); dx > d {
				d = dx
			}
		}
	}
	return d
}
