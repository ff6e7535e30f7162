package fields

import (
	"fmt"
	"sync"

	"lima/core"
	"lima/internal/common"
	"lima/registry"
)

// SchemaRef identifies the schema a linked-object field delegates to. It is
// one of InstanceRef, ClassRef or NameRef.
type SchemaRef interface {
	isSchemaRef()
}

// InstanceRef refers to an existing schema instance.
type InstanceRef struct{ Schema core.Schema }

// ClassRef refers to a schema class, instantiated on first use.
type ClassRef struct{ Class core.Class }

// NameRef refers to a schema class by its (qualified) registry name, looked
// up and instantiated on first use.
type NameRef struct{ Name string }

// illegalRef keeps an unsupported schema argument around so that the error is
// raised on first use rather than at construction.
type illegalRef struct{ value any }

func (InstanceRef) isSchemaRef() {}
func (ClassRef) isSchemaRef()    {}
func (NameRef) isSchemaRef()     {}
func (illegalRef) isSchemaRef()  {}

// RefOf classifies a schema argument: a SchemaRef is returned as is, a
// core.Schema becomes an InstanceRef, a core.Class a ClassRef and a string a
// NameRef. Anything else is accepted here and rejected on first use.
func RefOf(schema any) SchemaRef {
	switch s := schema.(type) {
	case SchemaRef:
		return s
	case core.Schema:
		return InstanceRef{Schema: s}
	case core.Class:
		return ClassRef{Class: s}
	case string:
		return NameRef{Name: s}
	default:
		return illegalRef{value: schema}
	}
}

// LinkedObject is the base of fields whose value is dumped by another schema.
// It does not pack values itself; Embed and Reference build on it.
//
// The linked schema is resolved lazily, exactly once, the first time it is
// needed. This allows schemas to refer to each other (or to themselves) by
// name before they are declared, and means a malformed schema argument only
// surfaces on first use.
type LinkedObject struct {
	Field

	ref        SchemaRef
	schemaOpts []core.Option
	instance   func() (core.Schema, error)
}

// NewLinkedObject creates a linked-object field delegating to schema, which is
// a core.Schema, a core.Class, a registry name or a SchemaRef. Options given
// with With are applied when the schema gets instantiated.
func NewLinkedObject(schema any, opts ...Option) (*LinkedObject, error) {
	lo, err := newLinkedObject(schema, opts)
	if err != nil {
		return nil, err
	}

	return &lo, nil
}

func newLinkedObject(schema any, opts []Option) (LinkedObject, error) {
	c := newConfig(opts)

	f, err := c.field()
	if err != nil {
		return LinkedObject{}, err
	}

	ref := RefOf(schema)
	schemaOpts := c.schemaOpts
	reg := c.registry

	return LinkedObject{
		Field:      f,
		ref:        ref,
		schemaOpts: schemaOpts,
		instance: sync.OnceValues(func() (core.Schema, error) {
			s, err := resolveSchema(ref, schemaOpts, reg)
			return s, common.Complain(lazyEvaluationLabel, err)
		}),
	}, nil
}

// Ref returns the schema reference the field was created with.
func (lo *LinkedObject) Ref() SchemaRef {
	return lo.ref
}

// SchemaOptions returns the options passed on to the linked schema.
func (lo *LinkedObject) SchemaOptions() []core.Option {
	return lo.schemaOpts
}

// SchemaInstance returns the linked schema instance, resolving it on the
// first call. The outcome of the first call, success or failure, is kept for
// the lifetime of the field; concurrent first calls resolve only once.
func (lo *LinkedObject) SchemaInstance() (core.Schema, error) {
	if lo.instance == nil {
		return nil, fmt.Errorf("%w: linked-object field was not created by its constructor", ErrInvalidConfig)
	}

	return lo.instance()
}

// Pack is not implemented by the base linked-object field.
func (*LinkedObject) Pack(any) (any, error) {
	return nil, fmt.Errorf("%w: linked-object fields must implement Pack", ErrNotImplemented)
}

func resolveSchema(ref SchemaRef, opts []core.Option, reg *registry.Registry) (core.Schema, error) {
	switch r := ref.(type) {
	case InstanceRef:
		if len(opts) > 0 {
			return nil, fmt.Errorf("%w: no schema options must be supplied "+
				"to the field if schema already is a schema instance", ErrInvalidConfig)
		}

		if IsAbsent(r.Schema) {
			return nil, fmt.Errorf("%w: schema instance is nil", ErrInvalidConfig)
		}

		return r.Schema, nil

	case ClassRef:
		if IsAbsent(r.Class) {
			return nil, fmt.Errorf("%w: schema class is nil", ErrInvalidConfig)
		}

		return r.Class.New(opts...)

	case NameRef:
		if reg == nil {
			reg = registry.Global
		}

		class, err := reg.Lookup(r.Name)
		if err != nil {
			return nil, err
		}

		return class.New(opts...)

	case illegalRef:
		return nil, fmt.Errorf("%w: schema arg supplied to constructor has illegal type (%T)", ErrIllegalType, r.value)

	default:
		return nil, fmt.Errorf("%w: unsupported schema reference %T", ErrIllegalType, ref)
	}
}
