package fields

import "fmt"

// Boolean is a field holding a boolean value. It behaves like Field and only
// documents the value type.
type Boolean struct{ Field }

// Float is a field holding a floating point value.
type Float struct{ Field }

// Integer is a field holding an integer value.
type Integer struct{ Field }

// String is a field holding a string value.
type String struct{ Field }

// NewBoolean creates a Boolean field.
func NewBoolean(opts ...Option) (*Boolean, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &Boolean{f}, nil
}

// NewFloat creates a Float field.
func NewFloat(opts ...Option) (*Float, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &Float{f}, nil
}

// NewInteger creates an Integer field.
func NewInteger(opts ...Option) (*Integer, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &Integer{f}, nil
}

// NewString creates a String field.
func NewString(opts ...Option) (*String, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &String{f}, nil
}

func plain(opts []Option) (Field, error) {
	c := newConfig(opts)
	if c.linkage {
		return Field{}, fmt.Errorf("%w: schema options given to a field without a linked schema", ErrInvalidConfig)
	}

	return c.field()
}
