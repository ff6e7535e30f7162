package fields

import (
	"fmt"
	"reflect"
	"time"

	"lima/core"
	"lima/primitive"
)

// TypeMapping maps native Go types to the field types describing them. It can
// be used to derive fields for objects whose attribute types are known.
var TypeMapping = map[reflect.Type]reflect.Type{
	reflect.TypeFor[bool]():           reflect.TypeFor[Boolean](),
	reflect.TypeFor[float32]():        reflect.TypeFor[Float](),
	reflect.TypeFor[float64]():        reflect.TypeFor[Float](),
	reflect.TypeFor[int]():            reflect.TypeFor[Integer](),
	reflect.TypeFor[int8]():           reflect.TypeFor[Integer](),
	reflect.TypeFor[int16]():          reflect.TypeFor[Integer](),
	reflect.TypeFor[int32]():          reflect.TypeFor[Integer](),
	reflect.TypeFor[int64]():          reflect.TypeFor[Integer](),
	reflect.TypeFor[uint]():           reflect.TypeFor[Integer](),
	reflect.TypeFor[uint8]():          reflect.TypeFor[Integer](),
	reflect.TypeFor[uint16]():         reflect.TypeFor[Integer](),
	reflect.TypeFor[uint32]():         reflect.TypeFor[Integer](),
	reflect.TypeFor[uint64]():         reflect.TypeFor[Integer](),
	reflect.TypeFor[string]():         reflect.TypeFor[String](),
	reflect.TypeFor[primitive.Date](): reflect.TypeFor[Date](),
	reflect.TypeFor[time.Time]():      reflect.TypeFor[DateTime](),
}

// KindFor returns the field type describing values of kind k, or nil.
func KindFor(k primitive.KindEnum) reflect.Type {
	switch {
	case k == primitive.KindBool:
		return reflect.TypeFor[Boolean]()
	case k.IsFloat():
		return reflect.TypeFor[Float]()
	case k.IsInteger():
		return reflect.TypeFor[Integer]()
	case k == primitive.KindString:
		return reflect.TypeFor[String]()
	case k == primitive.KindDate:
		return reflect.TypeFor[Date]()
	case k == primitive.KindTime:
		return reflect.TypeFor[DateTime]()
	default:
		return nil
	}
}

// ForType creates the field describing values of type t. Pointers are
// dereferenced and named types over integers, floats, booleans and strings
// are treated like their underlying type. ok is false for types without a
// matching field type.
func ForType(t reflect.Type, opts ...Option) (f core.Field, ok bool, err error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fieldType, ok := TypeMapping[t]
	if !ok {
		fieldType = KindFor(primitive.Underlying(t))
	}

	if fieldType == nil && t != nil {
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			fieldType = reflect.TypeFor[Float]()
		case reflect.Bool:
			fieldType = reflect.TypeFor[Boolean]()
		}
	}

	if fieldType == nil {
		return nil, false, nil
	}

	f, err = NewOf(fieldType, opts...)
	if err != nil {
		return nil, true, err
	}

	return f, true, nil
}

// NewOf creates a field of the given field type (one of the values of
// TypeMapping, or Field).
func NewOf(fieldType reflect.Type, opts ...Option) (core.Field, error) {
	switch fieldType {
	case reflect.TypeFor[Boolean]():
		return NewBoolean(opts...)
	case reflect.TypeFor[Float]():
		return NewFloat(opts...)
	case reflect.TypeFor[Integer]():
		return NewInteger(opts...)
	case reflect.TypeFor[String]():
		return NewString(opts...)
	case reflect.TypeFor[Date]():
		return NewDate(opts...)
	case reflect.TypeFor[DateTime]():
		return NewDateTime(opts...)
	case reflect.TypeFor[Field]():
		return New(opts...)
	default:
		return nil, fmt.Errorf("%w: %v is not a plain field type", ErrIllegalType, fieldType)
	}
}
