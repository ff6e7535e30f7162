package fields_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lima/fields"
	"lima/primitive"
)

func ExamplePackDateTime() {
	loc := time.FixedZone("", 2*60*60)
	t := time.Date(1952, time.September, 1, 23, 11, 59, 123456000, loc)

	v, _ := fields.PackDateTime(t)
	fmt.Println(v)

	v, _ = fields.PackDateTime(t.Truncate(time.Second))
	fmt.Println(v)

	v, _ = fields.PackDateTime(t.UTC())
	fmt.Println(v)
	// Output:
	// 1952-09-01T23:11:59.123456+02:00
	// 1952-09-01T23:11:59+02:00
	// 1952-09-01T21:11:59.123456+00:00
}

func ExamplePackDate() {
	v, _ := fields.PackDate(primitive.Date{Year: 501, Month: time.January, Day: 1})
	fmt.Println(v)

	v, _ = fields.PackDate(time.Date(2020, time.January, 15, 23, 59, 0, 0, time.UTC))
	fmt.Println(v)
	// Output:
	// 0501-01-01
	// 2020-01-15
}

func TestPackDate(t *testing.T) {
	d := primitive.Date{Year: 2020, Month: time.January, Day: 15}
	tm := time.Date(2020, time.January, 15, 10, 0, 0, 0, time.UTC)

	var nilDate *primitive.Date
	var nilTime *time.Time

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"date", d, "2020-01-15"},
		{"date pointer", &d, "2020-01-15"},
		{"time", tm, "2020-01-15"},
		{"time pointer", &tm, "2020-01-15"},
		{"nil", nil, nil},
		{"nil date pointer", nilDate, nil},
		{"nil time pointer", nilTime, nil},
	}

	field := fields.Must(fields.NewDate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.Pack(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := field.Pack("2020-01-15")
	assert.ErrorIs(t, err, fields.ErrIllegalType)
}

func TestPackDateTime(t *testing.T) {
	tm := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)

	field := fields.Must(fields.NewDateTime())

	got, err := field.Pack(tm)
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03T04:05:06+00:00", got)

	got, err = field.Pack(&tm)
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03T04:05:06+00:00", got)

	// sub-microsecond precision is dropped
	got, err = field.Pack(tm.Add(999 * time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03T04:05:06+00:00", got)

	got, err = field.Pack(tm.Add(1500 * time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03T04:05:06.000001+00:00", got)

	got, err = field.Pack(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = field.Pack(primitive.Date{Year: 2001, Month: time.February, Day: 3})
	assert.ErrorIs(t, err, fields.ErrIllegalType)
}
