package fields

import "errors"

var (
	// ErrInvalidConfig reports a field constructed or resolved with contradictory
	// or malformed arguments.
	ErrInvalidConfig = errors.New("invalid field configuration")
	// ErrIllegalType reports a value of a type the operation cannot handle.
	ErrIllegalType = errors.New("illegal type")
	// ErrNotImplemented is returned by Pack of fields that declare but do not
	// provide a conversion.
	ErrNotImplemented = errors.New("not implemented")
)

// lazyEvaluationLabel prefixes every error raised while resolving the schema
// instance of a linked-object field.
const lazyEvaluationLabel = "lazy evaluation of schema instance"
