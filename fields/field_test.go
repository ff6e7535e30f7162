package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lima/core"
	"lima/fields"
)

type point struct{ X, Y int }

func sumXY(p point) int { return p.X + p.Y }

func TestNew_MutuallyExclusive(t *testing.T) {
	tests := []struct {
		name string
		opts []fields.Option
	}{
		{"attr and get", []fields.Option{fields.Attr("X"), fields.Get(sumXY)}},
		{"attr and val", []fields.Option{fields.Attr("X"), fields.Val(1)}},
		{"get and val", []fields.Option{fields.Get(sumXY), fields.Val(1)}},
		{"all three", []fields.Option{fields.Attr("X"), fields.Get(sumXY), fields.Val(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fields.New(tt.opts...)
			require.ErrorIs(t, err, fields.ErrInvalidConfig)
			assert.Contains(t, err.Error(), "mutually exclusive")
		})
	}
}

func TestNew_InvalidAttr(t *testing.T) {
	for _, name := range []string{"", "1abc", "a.b", "a b", "a-b"} {
		t.Run(name, func(t *testing.T) {
			_, err := fields.New(fields.Attr(name))
			assert.ErrorIs(t, err, fields.ErrInvalidConfig)
		})
	}

	f, err := fields.New(fields.Attr("Foo_1"))
	require.NoError(t, err)

	name, ok := f.AttrName()
	assert.True(t, ok)
	assert.Equal(t, "Foo_1", name)

	// keywords are fine as attribute names
	for _, name := range []string{"type", "for", "range", "default"} {
		_, err := fields.NewString(fields.Attr(name))
		assert.NoError(t, err, name)
	}
}

func TestNew_InvalidGetter(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want error
	}{
		{"not a function", 42, fields.ErrGetterIsNotAFunction},
		{"nil function", (func(any) any)(nil), fields.ErrGetterIsNotAFunction},
		{"no arguments", func() int { return 0 }, fields.ErrIsNotAGetter},
		{"two arguments", func(a, b int) int { return a + b }, fields.ErrIsNotAGetter},
		{"variadic", func(a ...int) int { return 0 }, fields.ErrIsNotAGetter},
		{"no results", func(int) {}, fields.ErrIsNotAGetter},
		{"second result not error", func(int) (int, int) { return 0, 0 }, fields.ErrIsNotAGetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fields.New(fields.Get(tt.fn))
			require.ErrorIs(t, err, fields.ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_NilValIsNotGiven(t *testing.T) {
	f, err := fields.New(fields.Attr("X"), fields.Val(nil))
	require.NoError(t, err)
	assert.Equal(t, fields.FromAttr{Name: "X"}, fields.Resolve(f))
}

func TestPlainFields_RejectSchemaOptions(t *testing.T) {
	_, err := fields.NewString(fields.With())
	assert.ErrorIs(t, err, fields.ErrInvalidConfig)

	_, err = fields.NewInteger(fields.InRegistry(nil))
	assert.ErrorIs(t, err, fields.ErrInvalidConfig)
}

func TestGetter_Call(t *testing.T) {
	f, err := fields.New(fields.Get(sumXY))
	require.NoError(t, err)

	getter, ok := f.Getter()
	require.True(t, ok)

	v, err := getter.Call(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	// pointers are dereferenced for getters taking the value type
	v, err = getter.Call(&point{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = getter.Call("nope")
	assert.ErrorIs(t, err, fields.ErrIllegalType)

	_, err = getter.Call(nil)
	assert.ErrorIs(t, err, fields.ErrIllegalType)
}

func TestGetter_CallWithError(t *testing.T) {
	errBoom := assert.AnError
	getter, err := fields.ParseGetter(func(p *point) (string, error) {
		if p == nil {
			return "", errBoom
		}
		return "ok", nil
	})
	require.NoError(t, err)

	v, err := getter.Call(&point{})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = getter.Call(nil)
	assert.ErrorIs(t, err, errBoom)
}

func TestGetter_Direct(t *testing.T) {
	getter, err := fields.ParseGetter(func(obj any) any { return obj })
	require.NoError(t, err)

	v, err := getter.Call("same")
	require.NoError(t, err)
	assert.Equal(t, "same", v)
	assert.NotEmpty(t, getter.Name())
}

// constantString shadows the constant of the embedded field at the type level.
type constantString struct{ fields.String }

func (constantString) Constant() (any, bool) { return "fixed", true }

func TestResolve_Precedence(t *testing.T) {
	plain := fields.Must(fields.New())
	assert.Equal(t, fields.Unset{}, fields.Resolve(plain))

	byAttr := fields.Must(fields.New(fields.Attr("X")))
	assert.Equal(t, fields.FromAttr{Name: "X"}, fields.Resolve(byAttr))

	byVal := fields.Must(fields.New(fields.Val(12)))
	assert.Equal(t, fields.FromConstant{Value: 12}, fields.Resolve(byVal))

	byGet := fields.Must(fields.New(fields.Get(sumXY)))
	src, ok := fields.Resolve(byGet).(fields.FromGetter)
	require.True(t, ok)
	assert.False(t, src.Getter.IsZero())

	// a type level constant wins over an attribute given at construction
	overridden := &constantString{String: *fields.Must(fields.NewString(fields.Attr("X")))}
	assert.Equal(t, fields.FromConstant{Value: "fixed"}, fields.Resolve(overridden))
}

func TestResolve_ForeignField(t *testing.T) {
	var f core.Field = foreignField{}
	assert.Equal(t, fields.Unset{}, fields.Resolve(f))
}

type foreignField struct{}

func (foreignField) IsField() {}

func TestIsAbsent(t *testing.T) {
	var p *point
	var e error

	assert.True(t, fields.IsAbsent(nil))
	assert.True(t, fields.IsAbsent(p))
	assert.True(t, fields.IsAbsent(e))
	assert.False(t, fields.IsAbsent(0))
	assert.False(t, fields.IsAbsent(""))
	assert.False(t, fields.IsAbsent([]int(nil)))
	assert.False(t, fields.IsAbsent(&point{}))
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() {
		fields.Must(fields.New(fields.Attr("X"), fields.Val(1)))
	})
}
