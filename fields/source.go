package fields

import (
	"reflect"

	"lima/core"
)

// Source describes where the raw value of a field comes from. It is one of
// FromConstant, FromGetter, FromAttr or Unset.
type Source interface {
	isSource()
}

// FromConstant yields Value regardless of the source object.
type FromConstant struct{ Value any }

// FromGetter yields the result of calling Getter with the source object.
type FromGetter struct{ Getter Getter }

// FromAttr yields the attribute Name of the source object.
type FromAttr struct{ Name string }

// Unset leaves the choice to the owning schema, which reads the attribute
// named like the field.
type Unset struct{}

func (FromConstant) isSource() {}
func (FromGetter) isSource()   {}
func (FromAttr) isSource()     {}
func (Unset) isSource()        {}

// Capabilities a field type may expose. Field implements all three; types
// embedding a field can shadow any of them to provide a source at the type
// level.
type (
	HasConstant interface {
		Constant() (any, bool)
	}

	HasGetter interface {
		Getter() (Getter, bool)
	}

	HasAttr interface {
		AttrName() (string, bool)
	}
)

// Resolve returns the effective source of f. When f provides more than one,
// a constant wins over a getter and a getter wins over an attribute name.
func Resolve(f core.Field) Source {
	if c, ok := f.(HasConstant); ok {
		if v, ok := c.Constant(); ok {
			return FromConstant{Value: v}
		}
	}

	if g, ok := f.(HasGetter); ok {
		if getter, ok := g.Getter(); ok {
			return FromGetter{Getter: getter}
		}
	}

	if a, ok := f.(HasAttr); ok {
		if name, ok := a.AttrName(); ok {
			return FromAttr{Name: name}
		}
	}

	return Unset{}
}

// IsAbsent reports whether v is the absence marker: nil, or a nil pointer or
// interface.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
