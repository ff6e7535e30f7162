package fields

import (
	"fmt"
	"time"

	"lima/primitive"
)

const (
	dateTimeLayout         = "2006-01-02T15:04:05-07:00"
	dateTimeFractionLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Date is a field holding a calendar date. It packs time.Time and
// primitive.Date values (or pointers to them) as YYYY-MM-DD.
type Date struct{ Field }

// DateTime is a field holding a point in time. It packs time.Time values (or
// pointers to them) as ISO 8601 combined date and time with offset.
type DateTime struct{ Field }

// NewDate creates a Date field.
func NewDate(opts ...Option) (*Date, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &Date{f}, nil
}

// NewDateTime creates a DateTime field.
func NewDateTime(opts ...Option) (*DateTime, error) {
	f, err := plain(opts)
	if err != nil {
		return nil, err
	}

	return &DateTime{f}, nil
}

// Pack returns the ISO 8601 representation of v, see PackDate.
func (*Date) Pack(v any) (any, error) {
	return PackDate(v)
}

// Pack returns the ISO 8601 representation of v, see PackDateTime.
func (*DateTime) Pack(v any) (any, error) {
	return PackDateTime(v)
}

// PackDate returns the ISO 8601 representation (YYYY-MM-DD) of a time.Time
// or primitive.Date, or nil if v is absent.
func PackDate(v any) (any, error) {
	switch d := v.(type) {
	case time.Time:
		return primitive.DateOf(d).String(), nil
	case primitive.Date:
		return d.String(), nil
	case *time.Time:
		if d != nil {
			return primitive.DateOf(*d).String(), nil
		}
	case *primitive.Date:
		if d != nil {
			return d.String(), nil
		}
	}

	if IsAbsent(v) {
		return nil, nil
	}

	return nil, fmt.Errorf("%w: cannot pack %T as a date", ErrIllegalType, v)
}

// PackDateTime returns the ISO 8601 representation of a time.Time, or nil if
// v is absent. Fractional seconds are rendered with microsecond precision and
// only when present. The offset is always rendered.
//
// Example: 1952-09-01T23:11:59.123456+02:00
func PackDateTime(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return formatDateTime(t), nil
	case *time.Time:
		if t != nil {
			return formatDateTime(*t), nil
		}
	}

	if IsAbsent(v) {
		return nil, nil
	}

	return nil, fmt.Errorf("%w: cannot pack %T as a date and time", ErrIllegalType, v)
}

func formatDateTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(dateTimeFractionLayout)
	}

	return t.Format(dateTimeLayout)
}
