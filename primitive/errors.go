package primitive

import "errors"

var (
	// ErrNumericDomain indicates an input outside a primitive's mathematically
	// valid real domain (log x ≤ 0, sqrt x < 0, division by zero, the Γ pole,
	// negative base under a non-integer exponent, or overflow to a non-finite
	// value under StrictDomain).
	ErrNumericDomain = errors.New("primitive: input outside numeric domain")

	// ErrUnknownPrimitive indicates a name (or Kind value) not present in the
	// catalogue.
	ErrUnknownPrimitive = errors.New("primitive: unknown primitive")

	// ErrArityMismatch indicates Eval received a number of arguments different
	// from the primitive's declared arity.
	ErrArityMismatch = errors.New("primitive: argument count does not match arity")

	// ErrBadPolicy indicates an evaluation policy outside the declared enum.
	ErrBadPolicy = errors.New("primitive: unknown evaluation policy")
)
