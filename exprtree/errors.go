package exprtree

import "errors"

var (
	// ErrNilNode indicates a nil *Node where a tree was required.
	ErrNilNode = errors.New("exprtree: nil node")
	// ErrArity indicates a child count different from the primitive's arity.
	ErrArity = errors.New("exprtree: child count does not match primitive arity")
	// ErrParamName indicates a missing or superfluous fitted-parameter name
	// for the primitive being attached.
	ErrParamName = errors.New("exprtree: fitted-parameter name mismatch for primitive")
	// ErrUnknownVariable indicates a variable leaf with no bound value.
	ErrUnknownVariable = errors.New("exprtree: variable not present in bindings")
	// ErrUnknownParameter indicates a fitted parameter with no current value.
	ErrUnknownParameter = errors.New("exprtree: parameter has no fitted value")
	// ErrEmptyDataset indicates a dataset with no rows or no columns.
	ErrEmptyDataset = errors.New("exprtree: dataset must have at least one row and one column")
	// ErrColumnLength indicates dataset columns (or target) of unequal length.
	ErrColumnLength = errors.New("exprtree: all dataset columns must share one length")
	// ErrEmptyName indicates an empty variable or parameter name.
	ErrEmptyName = errors.New("exprtree: empty variable or parameter name")
)
