package schema

import (
	"fmt"

	"lima/core"
	"lima/fields"
	"lima/internal/common"
	"lima/internal/attr"
)

// step dumps a single field.
type step struct {
	key   string
	value func(obj any) (any, error)
}

// compile turns the field named key into a step. The source is resolved once
// here so that dumping does not inspect fields again.
func compile(key string, f core.Field) (step, error) {
	var value func(obj any) (any, error)

	switch src := fields.Resolve(f).(type) {
	case fields.FromConstant:
		constant := src.Value
		value = func(any) (any, error) { return constant, nil }

	case fields.FromGetter:
		value = src.Getter.Call

	case fields.FromAttr:
		name := src.Name
		value = func(obj any) (any, error) { return attr.Get(obj, name) }

	case fields.Unset:
		if !common.IsAttrName(key) {
			return step{}, fmt.Errorf("%w: not a valid attribute name: %q", fields.ErrInvalidConfig, key)
		}

		value = func(obj any) (any, error) { return attr.Get(obj, key) }

	default:
		return step{}, fmt.Errorf("%w: unsupported source %T of field %q", fields.ErrIllegalType, src, key)
	}

	if p, ok := f.(core.Packer); ok {
		raw := value
		value = func(obj any) (any, error) {
			v, err := raw(obj)
			if err != nil {
				return nil, err
			}

			return p.Pack(v)
		}
	}

	return step{key: key, value: value}, nil
}
