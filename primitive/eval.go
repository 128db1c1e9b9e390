// Package primitive - numeric semantics and domain checking.
//
// Eval is the single entry point: an exhaustive switch over the catalogue,
// with explicit pre-checks for partial functions and a post-check that
// classifies overflow to a non-finite value.  Under NaNPropagation the raw
// IEEE result is returned instead; the primitive layer never substitutes a
// finite placeholder in either mode.
package primitive

import (
	"fmt"
	"math"
)

// Policy selects how out-of-domain inputs and non-finite results are handled.
//
//   - StrictDomain   — classify them as ErrNumericDomain (the default; the
//     value returned alongside the error is NaN and must not be used).
//   - NaNPropagation — return raw IEEE ±Inf/NaN without error.  Intended for
//     hosts that score whole predictions and penalize non-finite output
//     themselves, such as the MCMC search engine.
type Policy int

const (
	// StrictDomain mode: out-of-domain input and non-finite results fail.
	StrictDomain Policy = iota

	// NaNPropagation mode: IEEE semantics, never an ErrNumericDomain.
	NaNPropagation
)

// Eval applies the primitive to its arguments.
//
// Contracts:
//   - len(args) must equal k.Arity(); otherwise ErrArityMismatch.
//   - param is the fitted parameter for Constant (the value a) and Sig (the
//     slope b); it is ignored by every other primitive.
//   - policy must be StrictDomain or NaNPropagation; otherwise ErrBadPolicy.
//
// Errors wrap the sentinels from errors.go and carry the primitive's name
// and the offending input, so errors.Is(err, ErrNumericDomain) always works.
//
// Complexity: O(1).
func (k Kind) Eval(policy Policy, param float64, args ...float64) (float64, error) {
	if policy != StrictDomain && policy != NaNPropagation {
		return math.NaN(), ErrBadPolicy
	}
	if !k.Valid() {
		return math.NaN(), ErrUnknownPrimitive
	}
	if len(args) != kindArity[k] {
		return math.NaN(), fmt.Errorf("%w: %s wants %d args, got %d",
			ErrArityMismatch, kindNames[k], kindArity[k], len(args))
	}

	// Stage 1 - pre-checks for partial functions (strict mode only).
	if policy == StrictDomain {
		if err := k.domainCheck(args); err != nil {
			return math.NaN(), err
		}
	}

	// Stage 2 - the exhaustive numeric switch.
	var v float64
	switch k {
	case Constant:
		v = param
	case Add:
		v = args[0] + args[1]
	case Sub:
		v = args[0] - args[1]
	case Mul:
		v = args[0] * args[1]
	case Div:
		v = args[0] / args[1]
	case Pow:
		v = math.Pow(args[0], args[1])
	case Abs:
		v = math.Abs(args[0])
	case Relu:
		v = math.Max(0, args[0])
	case Exp:
		v = math.Exp(args[0])
	case Log:
		v = math.Log(args[0])
	case Sig:
		v = 1 / (1 + math.Exp(-param*args[0]))
	case Fac:
		v = math.Gamma(1 + args[0])
	case Sqrt:
		v = math.Sqrt(args[0])
	case Pow2:
		v = args[0] * args[0]
	case Pow3:
		v = args[0] * args[0] * args[0]
	case Sin:
		v = math.Sin(args[0])
	case Cos:
		v = math.Cos(args[0])
	case Tan:
		v = math.Tan(args[0])
	case Sinh:
		v = math.Sinh(args[0])
	case Cosh:
		v = math.Cosh(args[0])
	case Tanh:
		v = math.Tanh(args[0])
	default:
		return math.NaN(), ErrUnknownPrimitive
	}

	// Stage 3 - saturation policy: overflow to a non-finite value is a
	// domain failure under StrictDomain, never a clamped finite number.
	if policy == StrictDomain && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return math.NaN(), domainErr(k, args, "non-finite result")
	}

	return v, nil
}

// domainCheck rejects inputs outside the primitive's natural real domain
// before any computation.  Only the partial members of the catalogue have
// pre-conditions; total functions rely on the post-check in Eval.
func (k Kind) domainCheck(args []float64) error {
	switch k {
	case Div:
		if args[1] == 0 {
			return domainErr(k, args, "division by zero")
		}
	case Log:
		if args[0] <= 0 {
			return domainErr(k, args, "log of non-positive")
		}
	case Sqrt:
		if args[0] < 0 {
			return domainErr(k, args, "sqrt of negative")
		}
	case Fac:
		// Γ(1+x) has its first pole at x = −1 and is unbounded below it.
		if args[0] <= -1 {
			return domainErr(k, args, "gamma pole")
		}
	case Pow:
		// Real-arithmetic convention: a negative base demands an integer
		// exponent; anything else has no real value.
		if args[0] < 0 && args[1] != math.Trunc(args[1]) {
			return domainErr(k, args, "negative base, non-integer exponent")
		}
	}
	return nil
}

// domainErr builds a wrapped ErrNumericDomain with the primitive's name,
// the offending inputs and a short reason.
func domainErr(k Kind, args []float64, reason string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("%w: %s: %s", ErrNumericDomain, kindNames[k], reason)
	case 1:
		return fmt.Errorf("%w: %s(%g): %s", ErrNumericDomain, kindNames[k], args[0], reason)
	default:
		return fmt.Errorf("%w: %s(%g, %g): %s", ErrNumericDomain, kindNames[k], args[0], args[1], reason)
	}
}
