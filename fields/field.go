package fields

import (
	"fmt"

	"lima/core"
	"lima/internal/common"
	"lima/registry"
)

// Field is the base field: it describes how to obtain one value from a
// source object and passes that value through unconverted.
//
// Attr, Get and Val are mutually exclusive. A field given none of them is
// dumped from the attribute named like the field itself; see Resolve for the
// precedence applied when a field type provides more than one.
type Field struct {
	attr   string
	getter Getter
	val    any
}

// Option configures a field at construction time.
type Option func(*config)

type config struct {
	attr    *string
	get     any
	val     any
	linkage bool

	schemaOpts []core.Option
	registry   *registry.Registry
}

// Attr makes the field read the attribute name of the source object. name must
// be a valid identifier; keywords such as "type" are allowed.
func Attr(name string) Option {
	return func(c *config) {
		c.attr = &name
	}
}

// Get makes the field call fn with the source object. fn must be a function
// of one argument returning a value and, optionally, an error.
func Get(fn any) Option {
	return func(c *config) {
		c.get = fn
	}
}

// Val makes the field yield v regardless of the source object. A nil v is
// the same as not giving Val at all.
func Val(v any) Option {
	return func(c *config) {
		c.val = v
	}
}

// With passes opts to the linked schema when it is instantiated. Only
// linked-object fields accept it.
func With(opts ...core.Option) Option {
	return func(c *config) {
		c.linkage = true
		c.schemaOpts = append(c.schemaOpts, opts...)
	}
}

// InRegistry makes a linked-object field resolve schema names in r instead of
// registry.Global. Only linked-object fields accept it.
func InRegistry(r *registry.Registry) Option {
	return func(c *config) {
		c.linkage = true
		c.registry = r
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// New creates a plain field.
func New(opts ...Option) (*Field, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// field validates the attr/get/val part of c and builds the base field.
func (c config) field() (Field, error) {
	given := 0
	if c.attr != nil {
		given++
	}
	if c.get != nil {
		given++
	}
	if c.val != nil {
		given++
	}

	if given > 1 {
		return Field{}, fmt.Errorf("%w: attr, get and val are mutually exclusive", ErrInvalidConfig)
	}

	var f Field

	switch {
	case c.attr != nil:
		if !common.IsAttrName(*c.attr) {
			return Field{}, fmt.Errorf("%w: attr is not a valid identifier: %q", ErrInvalidConfig, *c.attr)
		}

		f.attr = *c.attr

	case c.get != nil:
		getter, err := ParseGetter(c.get)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		f.getter = getter

	case c.val != nil:
		f.val = c.val
	}

	return f, nil
}

// IsField marks Field as a core.Field.
func (f *Field) IsField() {}

// AttrName returns the attribute name given with Attr.
func (f *Field) AttrName() (string, bool) {
	return f.attr, f.attr != ""
}

// Getter returns the getter given with Get.
func (f *Field) Getter() (Getter, bool) {
	return f.getter, !f.getter.IsZero()
}

// Constant returns the constant given with Val.
func (f *Field) Constant() (any, bool) {
	return f.val, f.val != nil
}

// Must panics if err is non-nil and returns f otherwise. It is meant for
// fields declared in package-level variables.
func Must[F core.Field](f F, err error) F {
	if err != nil {
		panic(err)
	}

	return f
}
