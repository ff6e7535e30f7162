// Package core declares the small set of interfaces shared by fields, schemas
// and the schema class registry.
//
// It exists so that package fields can delegate to schemas (embedding) and
// package schema can own fields without the two importing each other.
package core

// Field is implemented by every field type. The method carries no behavior; it
// only marks a value as usable as a schema field.
type Field interface {
	IsField()
}

// Packer is implemented by fields that convert the raw extracted value
// before it is placed into the output structure.
type Packer interface {
	Pack(v any) (any, error)
}

// Schema is a schema instance: something able to turn an object (or a
// collection of objects) into a plain structure.
type Schema interface {
	Dump(obj any) (any, error)
}

// Class is a schema type: a named, instantiable description of a schema.
type Class interface {
	// QualifiedName returns the name the class is known under in a registry,
	// e.g. "lima/store.OrderSchema".
	QualifiedName() string
	// New creates a schema instance configured by opts.
	New(opts ...Option) (Schema, error)
}

// Settings holds the construction parameters of a schema instance.
type Settings struct {
	Exclude []string
	Only    []string
	Include []NamedField
	Many    bool
	Ordered bool
}

// NamedField pairs a field with the key it is dumped under.
type NamedField struct {
	Name  string
	Field Field
}

// Option configures Settings.
type Option func(*Settings)

// Apply returns the Settings produced by applying opts to the zero value.
func Apply(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}
