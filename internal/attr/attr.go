// Package attr reads named attributes from arbitrary Go values.
//
// An attribute of a struct is, in order of preference: the exported field
// with exactly that name, the exported field whose json tag carries that
// name, the only exported field whose name matches case-insensitively, or a
// method with that name taking no arguments and returning a value (optionally
// followed by an error). An attribute of a map with string keys is the entry
// under that key.
package attr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNoAttribute = errors.New("no such attribute")
	ErrNilSource   = errors.New("source object is nil")
)

var errorType = reflect.TypeFor[error]()

// Get returns the attribute name of obj.
func Get(obj any, name string) (any, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: reading %q", ErrNilSource, name)
	}

	// every level is kept so that methods with pointer receivers are found
	levels := []reflect.Value{v}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: reading %q", ErrNilSource, name)
		}

		v = v.Elem()
		levels = append(levels, v)
	}

	switch v.Kind() {
	case reflect.Struct:
		if f, ok := lookupField(v, name); ok && f.CanInterface() {
			return f.Interface(), nil
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if entry.IsValid() {
				return entry.Interface(), nil
			}
		}
	}

	for _, level := range levels {
		if m, ok := lookupMethod(level, name); ok {
			return callMethod(m, name)
		}
	}

	return nil, fmt.Errorf("%w: %s has no attribute %q", ErrNoAttribute, v.Type(), name)
}

func lookupField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()

	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return fieldAt(v, sf), true
	}

	var folded []reflect.StructField

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		if JSONName(sf) == name {
			return fieldAt(v, sf), true
		}

		if strings.EqualFold(sf.Name, name) {
			folded = append(folded, sf)
		}
	}

	if len(folded) == 1 {
		return fieldAt(v, folded[0]), true
	}

	return reflect.Value{}, false
}

// fieldAt returns the field sf of v, or its zero value when it is promoted
// through a nil embedded pointer.
func fieldAt(v reflect.Value, sf reflect.StructField) reflect.Value {
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Zero(sf.Type)
	}

	return f
}

func lookupMethod(v reflect.Value, name string) (reflect.Value, bool) {
	if v.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}

	if v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, false
	}

	m := v.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}

	mt := m.Type()
	if mt.NumIn() != 0 {
		return reflect.Value{}, false
	}

	switch mt.NumOut() {
	case 1:
		return m, true
	case 2:
		return m, mt.Out(1) == errorType
	default:
		return reflect.Value{}, false
	}
}

func callMethod(m reflect.Value, name string) (any, error) {
	out := m.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, fmt.Errorf("calling %s: %w", name, out[1].Interface().(error))
	}

	return out[0].Interface(), nil
}

// JSONName returns the json tag name of sf if present, otherwise the field name.
func JSONName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return sf.Name
	}

	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}

	return sf.Name
}

// Omitted reports whether sf is excluded from JSON by a "-" tag.
func Omitted(sf reflect.StructField) bool {
	return sf.Tag.Get("json") == "-"
}
