package schema

import (
	"fmt"
	"reflect"

	"lima/fields"
	"lima/internal/attr"
)

// FieldsFor derives field declarations from the exported fields of the struct
// type t (or a pointer to it). Each field is keyed by its json name and reads
// the Go field. Fields whose type has no field type in fields.TypeMapping and
// fields tagged `json:"-"` are skipped.
func FieldsFor(t reflect.Type) ([]Decl, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: cannot derive fields from %v", fields.ErrIllegalType, t)
	}

	var decls []Decl

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous || attr.Omitted(sf) {
			continue
		}

		f, ok, err := fields.ForType(sf.Type, fields.Attr(sf.Name))
		if err != nil {
			return nil, fmt.Errorf("deriving field %s.%s: %w", t.Name(), sf.Name, err)
		}

		if !ok {
			continue
		}

		decls = append(decls, Field(attr.JSONName(sf), f))
	}

	return decls, nil
}
