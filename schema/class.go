package schema

import (
	"fmt"
	"strings"

	"lima/core"
	"lima/internal/common"
	"lima/registry"
)

// Class is a declared schema type: a qualified name and an ordered set of
// fields. Classes are immutable once declared.
type Class struct {
	name   string
	fields *fieldSet
}

// Decl is one building block of a class declaration.
type Decl func(*declaration)

type declaration struct {
	fields  []core.NamedField
	bases   []*Class
	include []core.NamedField
	exclude []string
	only    []string

	local    bool
	registry *registry.Registry

	errs []error
}

func (d *declaration) fail(format string, args ...any) {
	d.errs = append(d.errs, fmt.Errorf(format, args...))
}

// Field declares the field f under name. Fields keep declaration order;
// a field named like an inherited one replaces it in place.
func Field(name string, f core.Field) Decl {
	return func(d *declaration) {
		switch {
		case name == "":
			d.fail("field name is empty")
		case strings.ContainsAny(name, `"'`):
			d.fail("quotes are not allowed in field names: %s", name)
		case f == nil:
			d.fail("field %q is nil", name)
		default:
			d.fields = append(d.fields, core.NamedField{Name: name, Field: f})
		}
	}
}

// Bases makes the class inherit the fields of classes. When several bases
// define a field of the same name, the base listed first wins.
func Bases(classes ...*Class) Decl {
	return func(d *declaration) {
		for _, c := range classes {
			if c == nil {
				d.fail("base class is nil")
				continue
			}

			d.bases = append(d.bases, c)
		}
	}
}

// Include adds fields after inheritance and field declarations. Including a
// field also declared with Field is an error.
func Include(fields ...core.NamedField) Decl {
	return func(d *declaration) {
		d.include = append(d.include, fields...)
	}
}

// Exclude removes the named fields from the class. Must not be combined with
// Only.
func Exclude(names ...string) Decl {
	return func(d *declaration) {
		d.exclude = append(d.exclude, names...)
	}
}

// Only removes all but the named fields from the class, which then keeps
// the order given here. Must not be combined with Exclude.
func Only(names ...string) Decl {
	return func(d *declaration) {
		d.only = append(d.only, names...)
	}
}

// Local keeps the class out of any registry, like a type declared inside a
// function. It cannot be referred to by name.
func Local() Decl {
	return func(d *declaration) {
		d.local = true
	}
}

// InRegistry registers the class in r instead of registry.Global.
func InRegistry(r *registry.Registry) Decl {
	return func(d *declaration) {
		d.registry = r
	}
}

// Declare creates the class qualifiedName from decls and registers it.
//
// The field set is built as follows: the fields of all bases are copied
// (bases listed first have precedence), fields declared with Field replace
// inherited ones, fields given with Include are added, and finally Exclude or
// Only is applied.
func Declare(qualifiedName string, decls ...Decl) (*Class, error) {
	var d declaration
	for _, decl := range decls {
		if decl != nil {
			decl(&d)
		}
	}

	class, err := d.build(qualifiedName)
	if err != nil {
		return nil, common.Complainf(err, "declaring %s", qualifiedName)
	}

	if d.local {
		return class, nil
	}

	r := d.registry
	if r == nil {
		r = registry.Global
	}

	if err := r.Register(class); err != nil {
		return nil, common.Complainf(err, "declaring %s", qualifiedName)
	}

	return class, nil
}

// MustDeclare is like Declare but panics on error. It is meant for classes
// declared in package-level variables.
func MustDeclare(qualifiedName string, decls ...Decl) *Class {
	class, err := Declare(qualifiedName, decls...)
	if err != nil {
		panic(err)
	}

	return class
}

func (d *declaration) build(qualifiedName string) (*Class, error) {
	if qualifiedName == "" {
		return nil, fmt.Errorf("%w: class name is empty", ErrInvalidDeclaration)
	}

	if len(d.errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeclaration, d.errs[0])
	}

	declared := make([]string, 0, len(d.fields))
	for _, nf := range d.fields {
		declared = append(declared, nf.Name)
	}

	if dups := common.Duplicates(declared); len(dups) > 0 {
		return nil, fmt.Errorf("%w: fields declared more than once: %q", ErrInvalidDeclaration, dups)
	}

	fs := newFieldSet()
	for i := len(d.bases) - 1; i >= 0; i-- {
		for pair := d.bases[i].fields.Oldest(); pair != nil; pair = pair.Next() {
			fs.Set(pair.Key, pair.Value)
		}
	}

	for _, nf := range d.fields {
		fs.Set(nf.Name, nf.Field)
	}

	for _, nf := range d.include {
		if nf.Name == "" || nf.Field == nil {
			return nil, fmt.Errorf("%w: included field %q is incomplete", ErrInvalidDeclaration, nf.Name)
		}

		for _, name := range declared {
			if name == nf.Name {
				return nil, fmt.Errorf("%w: field %q is both declared and included", ErrInvalidDeclaration, name)
			}
		}

		fs.Set(nf.Name, nf.Field)
	}

	fs, err := filter(fs, d.exclude, d.only, ErrInvalidDeclaration)
	if err != nil {
		return nil, err
	}

	return &Class{name: qualifiedName, fields: fs}, nil
}

// QualifiedName returns the name the class is registered under.
func (c *Class) QualifiedName() string {
	return c.name
}

// ShortName returns the qualified name without its qualifier.
func (c *Class) ShortName() string {
	_, short := common.SplitQualified(c.name)
	return short
}

// New creates a schema instance of c.
func (c *Class) New(opts ...core.Option) (core.Schema, error) {
	s, err := New(c, opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Fields returns the fields of c in order.
func (c *Class) Fields() []core.NamedField {
	return namedFields(c.fields)
}

// FieldNames returns the names of the fields of c in order.
func (c *Class) FieldNames() []string {
	return fieldNames(c.fields)
}

// Field returns the field named name.
func (c *Class) Field(name string) (core.Field, bool) {
	return c.fields.Get(name)
}

func (c *Class) String() string {
	return c.name
}
