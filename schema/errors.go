package schema

import "errors"

var (
	// ErrInvalidDeclaration reports a class declared with contradictory or
	// malformed declarations.
	ErrInvalidDeclaration = errors.New("invalid schema declaration")
	// ErrNotIterable reports a collection dump of a value that is not a slice
	// or an array.
	ErrNotIterable = errors.New("value is not iterable")
)
