package declfile

import (
	"fmt"
	"time"

	"lima/primitive"
)

const dateLayout = "2006-01-02"

// value converts the constant of fd to the Go value its kind packs.
func (fd *FieldDecl) value() (any, error) {
	switch fd.Kind {
	case KindDate:
		switch v := fd.Val.(type) {
		case string:
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				return nil, fmt.Errorf("val %q is not a date: %w", v, err)
			}
			return primitive.DateOf(t), nil
		case time.Time:
			return primitive.DateOf(v), nil
		}

	case KindDateTime:
		switch v := fd.Val.(type) {
		case string:
			t, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				return nil, fmt.Errorf("val %q is not a date and time: %w", v, err)
			}
			return t, nil
		case time.Time:
			return v, nil
		}

	case KindFloat:
		switch v := fd.Val.(type) {
		case int:
			return float64(v), nil
		case float64:
			return v, nil
		}

	case KindInteger:
		if _, ok := fd.Val.(int); ok {
			return fd.Val, nil
		}

	case KindBoolean:
		if _, ok := fd.Val.(bool); ok {
			return fd.Val, nil
		}

	case KindString:
		if _, ok := fd.Val.(string); ok {
			return fd.Val, nil
		}

	default:
		return fd.Val, nil
	}

	return nil, fmt.Errorf("val %v (%T) does not fit kind %s", fd.Val, fd.Val, fd.Kind)
}
