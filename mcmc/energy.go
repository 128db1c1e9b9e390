// Package mcmc - description length of a fitted candidate.
package mcmc

import "math"

// mseFloor bounds the mean squared error away from zero inside the BIC
// log term; a perfect fit would otherwise score −Inf and absorb the chain.
const mseFloor = 1e-15

// DescriptionLength scores a fitted candidate:
//
//	E = BIC/2 + structural
//	BIC = k·ln n + n·(ln(2π·SSE/n) + 1)
//
// where n is the number of rows, k the number of distinct fitted parameters
// the tree uses, and structural the prior energy over primitive usage
// (prior.Table.Energy).  The BIC term is the Gaussian maximum-likelihood
// value with the noise variance profiled out.
//
// Non-finite SSE (a candidate whose predictions blow up on the data) scores
// +Inf: such trees are never adopted, only proposed.
//
// Complexity: O(1).
func DescriptionLength(sse float64, rows, numParams int, structural float64) float64 {
	if rows <= 0 || math.IsNaN(sse) || math.IsInf(sse, 0) || sse < 0 {
		return math.Inf(1)
	}
	n := float64(rows)
	mse := sse / n
	if mse < mseFloor {
		mse = mseFloor
	}
	bic := float64(numParams)*math.Log(n) + n*(math.Log(2*math.Pi*mse)+1)
	return bic/2 + structural
}
