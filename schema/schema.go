package schema

import (
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lima/core"
	"lima/fields"
	"lima/internal/common"
)

// Schema is an instance of a Class. It is immutable and safe for concurrent
// use.
type Schema struct {
	class   *Class
	keys    []string
	steps   []step
	many    bool
	ordered bool
}

// New creates an instance of class configured by opts.
//
// The instance starts out with the fields of the class. Fields given with
// WithInclude are added (replacing fields of the same name), then WithExclude
// or WithOnly is applied.
func New(class *Class, opts ...core.Option) (*Schema, error) {
	if class == nil {
		return nil, fmt.Errorf("%w: schema class is nil", fields.ErrInvalidConfig)
	}

	settings := core.Apply(opts...)

	fs := copyFieldSet(class.fields)
	for _, nf := range settings.Include {
		if nf.Name == "" || nf.Field == nil {
			return nil, fmt.Errorf("%w: included field %q is incomplete", fields.ErrInvalidConfig, nf.Name)
		}

		fs.Set(nf.Name, nf.Field)
	}

	fs, err := filter(fs, settings.Exclude, settings.Only, fields.ErrInvalidConfig)
	if err != nil {
		return nil, common.Complainf(err, "creating %s", class.name)
	}

	s := &Schema{
		class:   class,
		keys:    make([]string, 0, fs.Len()),
		steps:   make([]step, 0, fs.Len()),
		many:    settings.Many,
		ordered: settings.Ordered,
	}

	for pair := fs.Oldest(); pair != nil; pair = pair.Next() {
		st, err := compile(pair.Key, pair.Value)
		if err != nil {
			return nil, common.Complainf(err, "creating %s", class.name)
		}

		s.keys = append(s.keys, pair.Key)
		s.steps = append(s.steps, st)
	}

	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(class *Class, opts ...core.Option) *Schema {
	s, err := New(class, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Class returns the class s is an instance of.
func (s *Schema) Class() *Class {
	return s.class
}

// FieldNames returns the keys s dumps, in order.
func (s *Schema) FieldNames() []string {
	return append([]string(nil), s.keys...)
}

// Many reports whether Dump treats its argument as a collection.
func (s *Schema) Many() bool {
	return s.many
}

// Ordered reports whether dumps are ordered maps.
func (s *Schema) Ordered() bool {
	return s.ordered
}

// Dump returns the marshalled representation of obj: a map from field names
// to field values, or a slice of such maps if s was created WithMany.
//
// Maps are map[string]any, or *orderedmap.OrderedMap[string, any] if s was
// created WithOrdered.
func (s *Schema) Dump(obj any) (any, error) {
	if s.many {
		return s.DumpMany(obj)
	}

	return s.DumpOne(obj)
}

// DumpOne dumps obj as a single object regardless of WithMany.
func (s *Schema) DumpOne(obj any) (any, error) {
	if s.ordered {
		return s.dumpOrdered(obj)
	}

	out := make(map[string]any, len(s.steps))
	for _, st := range s.steps {
		v, err := st.value(obj)
		if err != nil {
			return nil, common.Complainf(err, "field %q", st.key)
		}

		out[st.key] = v
	}

	return out, nil
}

func (s *Schema) dumpOrdered(obj any) (any, error) {
	out := orderedmap.New[string, any]()
	for _, st := range s.steps {
		v, err := st.value(obj)
		if err != nil {
			return nil, common.Complainf(err, "field %q", st.key)
		}

		out.Set(st.key, v)
	}

	return out, nil
}

// DumpMany dumps every element of objs, a slice or an array (or a pointer to
// one), regardless of WithMany.
func (s *Schema) DumpMany(objs any) (any, error) {
	rv := reflect.ValueOf(objs)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T", ErrNotIterable, objs)
	}

	out := make([]any, rv.Len())
	for i := range rv.Len() {
		v, err := s.DumpOne(rv.Index(i).Interface())
		if err != nil {
			return nil, common.Complainf(err, "item %d", i)
		}

		out[i] = v
	}

	return out, nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s(many=%t, ordered=%t)", s.class.name, s.many, s.ordered)
}
