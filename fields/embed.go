package fields

import "fmt"

// Embed is a field embedding linked object(s): its value is the full dump of
// the linked object by the linked schema.
//
// Examples:
//
//	// refer to a schema class
//	author, err := fields.NewEmbed(PersonSchema)
//
//	// refer to a schema class with schema options
//	artists, err := fields.NewEmbed(PersonSchema, fields.With(schema.WithExclude("email"), schema.WithMany(true)))
//
//	// refer to a schema instance (options belong to the instance, not the field)
//	artists, err := fields.NewEmbed(schema.MustNew(PersonSchema, schema.WithMany(true)))
//
//	// refer to a schema class by name, possibly before it is declared
//	boss, err := fields.NewEmbed("lima/store.PersonSchema", fields.With(schema.WithExclude("boss")))
//
//	// read the linked object from a differently named attribute
//	user, err := fields.NewEmbed(PersonSchema, fields.Attr("LoginUser"))
type Embed struct{ LinkedObject }

// NewEmbed creates an Embed field. See NewLinkedObject for the accepted
// schema arguments.
func NewEmbed(schema any, opts ...Option) (*Embed, error) {
	lo, err := newLinkedObject(schema, opts)
	if err != nil {
		return nil, err
	}

	return &Embed{lo}, nil
}

// Pack returns the dump of v by the linked schema, or nil if v is absent. An
// absent v never triggers schema resolution.
func (e *Embed) Pack(v any) (any, error) {
	if IsAbsent(v) {
		return nil, nil
	}

	s, err := e.SchemaInstance()
	if err != nil {
		return nil, err
	}

	return s.Dump(v)
}

// Nested is the former name of Embed.
//
// Deprecated: use Embed.
type Nested = Embed

// NewNested creates an Embed field.
//
// Deprecated: use NewEmbed.
func NewNested(schema any, opts ...Option) (*Nested, error) {
	return NewEmbed(schema, opts...)
}

// Reference is a field referencing linked object(s) by key rather than
// embedding them. Packing is not implemented yet: there is no convention for
// which attribute of a linked object identifies it.
type Reference struct{ LinkedObject }

// NewReference creates a Reference field. See NewLinkedObject for the accepted
// schema arguments.
func NewReference(schema any, opts ...Option) (*Reference, error) {
	lo, err := newLinkedObject(schema, opts)
	if err != nil {
		return nil, err
	}

	return &Reference{lo}, nil
}

// Pack always fails with ErrNotImplemented.
func (*Reference) Pack(any) (any, error) {
	return nil, fmt.Errorf("%w: reference fields cannot be packed yet", ErrNotImplemented)
}
