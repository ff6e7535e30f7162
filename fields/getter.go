package fields

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

var (
	ErrGetterIsNotAFunction = errors.New("get is not callable")
	ErrIsNotAGetter         = errors.New("get is not a recognizable getter")
)

var errorType = reflect.TypeFor[error]()

// Getter is a validated unary function extracting a value from a source object.
type Getter struct {
	fn     reflect.Value
	in     reflect.Type
	hasErr bool
	name   string

	// direct holds fn when it needs no reflection to be called.
	direct func(any) (any, error)
}

// ParseGetter inspects fn and returns a Getter if it is a valid getter function.
//
// Supports signatures:
//   - func(src T) (dst R)
//   - func(src T) (dst R, error)
func ParseGetter(fn any) (Getter, error) {
	switch f := fn.(type) {
	case func(any) (any, error):
		if f != nil {
			return Getter{direct: f, name: funcName(fn)}, nil
		}
	case func(any) any:
		if f != nil {
			return Getter{direct: func(obj any) (any, error) { return f(obj), nil }, name: funcName(fn)}, nil
		}
	}

	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Getter{}, fmt.Errorf("%w: %T", ErrGetterIsNotAFunction, fn)
	}

	if fnVal.IsNil() {
		return Getter{}, fmt.Errorf("%w: nil function", ErrGetterIsNotAFunction)
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.IsVariadic() {
		return Getter{}, fmt.Errorf("%w: %s must accept exactly one argument", ErrIsNotAGetter, fnType)
	}

	getter := Getter{
		fn:   fnVal,
		in:   fnType.In(0),
		name: funcName(fn),
	}

	switch fnType.NumOut() {
	default:
		return Getter{}, fmt.Errorf("%w: %s must return a value and optionally an error", ErrIsNotAGetter, fnType)
	case 1:
		return getter, nil
	case 2:
		if fnType.Out(1) != errorType {
			return Getter{}, fmt.Errorf("%w: second result of %s must be an error", ErrIsNotAGetter, fnType)
		}

		getter.hasErr = true
		return getter, nil
	}
}

// IsZero reports whether g holds no function.
func (g Getter) IsZero() bool {
	return g.direct == nil && !g.fn.IsValid()
}

// Name returns the runtime name of the wrapped function.
func (g Getter) Name() string {
	return g.name
}

// Call invokes the getter with obj.
func (g Getter) Call(obj any) (any, error) {
	if g.direct != nil {
		return g.direct(obj)
	}

	if g.IsZero() {
		return nil, fmt.Errorf("%w: getter is empty", ErrInvalidConfig)
	}

	arg, err := g.argument(obj)
	if err != nil {
		return nil, err
	}

	out := g.fn.Call([]reflect.Value{arg})
	if g.hasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}

// argument adapts obj to the parameter type of the getter, dereferencing a
// pointer when the getter takes the pointed-to type.
func (g Getter) argument(obj any) (reflect.Value, error) {
	if obj == nil {
		switch g.in.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(g.in), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: getter %s cannot accept nil", ErrIllegalType, g.name)
		}
	}

	v := reflect.ValueOf(obj)
	if v.Type().AssignableTo(g.in) {
		return v, nil
	}

	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Type().AssignableTo(g.in) {
		return v.Elem(), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: getter %s cannot accept %T", ErrIllegalType, g.name, obj)
}

func funcName(fn any) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}

	return "<unknown>"
}
