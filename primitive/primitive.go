// Package primitive - the catalogue: kinds, names, arities, parameters.
//
// This file declares the closed enum of primitives and the read-only lookup
// tables around it.  Numeric semantics live in eval.go.
package primitive

// Kind identifies one primitive in the closed catalogue.
//
// The zero value is Constant; use Lookup to map symbolic names to kinds.
type Kind uint8

// The full catalogue.  Order is part of the public contract: Kinds(),
// UnaryKinds() and BinaryKinds() enumerate in declaration order, and the
// search engine relies on that order for reproducible proposals.
const (
	// Constant is the fitted scalar leaf: arity 0, one free parameter a.
	Constant Kind = iota

	// Add is x + y.
	Add
	// Sub is x − y.
	Sub
	// Mul is x · y.
	Mul
	// Div is x / y; fails when y == 0.
	Div
	// Pow is x^y; fails for a negative base with a non-integer exponent.
	Pow

	// Abs is |x|.
	Abs
	// Relu is max(0, x).
	Relu
	// Exp is e^x; overflow to +Inf is a domain failure under StrictDomain.
	Exp
	// Log is ln x; fails for x ≤ 0.
	Log
	// Sig is the logistic 1/(1+e^(−b·x)) with fitted slope b.
	Sig
	// Fac is Γ(1+x), the factorial's analytic continuation; fails for x ≤ −1.
	Fac
	// Sqrt is √x; fails for x < 0.
	Sqrt
	// Pow2 is x².
	Pow2
	// Pow3 is x³.
	Pow3
	// Sin is the sine.
	Sin
	// Cos is the cosine.
	Cos
	// Tan is the tangent; the poles at odd multiples of π/2 surface as a
	// non-finite result and fail under StrictDomain.
	Tan
	// Sinh is the hyperbolic sine; may overflow for large |x|.
	Sinh
	// Cosh is the hyperbolic cosine; may overflow for large |x|.
	Cosh
	// Tanh is the hyperbolic tangent.
	Tanh

	// numKinds bounds the enum; every loop and table below is sized by it.
	numKinds
)

// kindNames maps Kind → symbolic name.  Names follow the conventional
// infix/function spelling used when rendering equations.
var kindNames = [numKinds]string{
	Constant: "constant",
	Add:      "+",
	Sub:      "-",
	Mul:      "*",
	Div:      "/",
	Pow:      "**",
	Abs:      "abs",
	Relu:     "relu",
	Exp:      "exp",
	Log:      "log",
	Sig:      "sig",
	Fac:      "fac",
	Sqrt:     "sqrt",
	Pow2:     "pow2",
	Pow3:     "pow3",
	Sin:      "sin",
	Cos:      "cos",
	Tan:      "tan",
	Sinh:     "sinh",
	Cosh:     "cosh",
	Tanh:     "tanh",
}

// kindArity maps Kind → declared input arity.
var kindArity = [numKinds]int{
	Constant: 0,
	Add:      2,
	Sub:      2,
	Mul:      2,
	Div:      2,
	Pow:      2,
	Abs:      1,
	Relu:     1,
	Exp:      1,
	Log:      1,
	Sig:      1,
	Fac:      1,
	Sqrt:     1,
	Pow2:     1,
	Pow3:     1,
	Sin:      1,
	Cos:      1,
	Tan:      1,
	Sinh:     1,
	Cosh:     1,
	Tanh:     1,
}

// byName is the inverse of kindNames; built once at init, read-only after.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	var k Kind
	for k = 0; k < numKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// String returns the primitive's symbolic name ("+", "exp", "pow2", …).
// Out-of-range kinds render as "invalid" rather than panicking.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return kindNames[k]
}

// Arity returns the number of real-valued inputs the primitive consumes:
// 0 for the fitted constant, 1 for unary functions, 2 for binary operators.
func (k Kind) Arity() int {
	if !k.Valid() {
		return 0
	}
	return kindArity[k]
}

// NumParams returns the number of free fitted parameters the primitive
// carries: 1 for Constant (the scalar a) and Sig (the slope b), 0 otherwise.
func (k Kind) NumParams() int {
	if k == Constant || k == Sig {
		return 1
	}
	return 0
}

// Valid reports whether k is a member of the catalogue.
func (k Kind) Valid() bool { return k < numKinds }

// Lookup resolves a symbolic name to its Kind.
// Returns ErrUnknownPrimitive for names outside the catalogue.
//
// Complexity: O(1).
func Lookup(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, ErrUnknownPrimitive
	}
	return k, nil
}

// Kinds returns the full catalogue in declaration order.
// The returned slice is freshly allocated; callers may mutate it freely.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	var k Kind
	for k = 0; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// UnaryKinds returns every arity-1 primitive in declaration order.
func UnaryKinds() []Kind { return kindsOfArity(1) }

// BinaryKinds returns every arity-2 primitive in declaration order.
func BinaryKinds() []Kind { return kindsOfArity(2) }

// kindsOfArity filters the catalogue by arity, preserving declaration order.
func kindsOfArity(n int) []Kind {
	out := make([]Kind, 0, numKinds)
	var k Kind
	for k = 0; k < numKinds; k++ {
		if kindArity[k] == n {
			out = append(out, k)
		}
	}
	return out
}
