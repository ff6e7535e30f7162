package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		input     string
		qualifier string
		short     string
	}{
		{"lima/store.OrderSchema", "lima/store", "OrderSchema"},
		{"github.com/acme/app.v2.User", "github.com/acme/app.v2", "User"},
		{"OrderSchema", "", "OrderSchema"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, s := SplitQualified(tt.input)
			assert.Equal(t, tt.qualifier, q)
			assert.Equal(t, tt.short, s)
			if tt.input != "" {
				assert.Equal(t, tt.input, Qualify(q, s))
			}
		})
	}
}

func TestComplain(t *testing.T) {
	cause := errors.New("boom")

	err := Complain("lazy evaluation of schema instance", cause)
	require.Error(t, err)
	assert.Equal(t, "lazy evaluation of schema instance: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, Complain("label", nil))

	err = Complainf(cause, "field %q", "name")
	assert.EqualError(t, err, `field "name": boom`)
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, Duplicates([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, Duplicates([]string{"a", "b", "a", "c", "b"}))

	assert.True(t, IsEmpty([]int(nil)))
}

func TestIsAttrName(t *testing.T) {
	for _, name := range []string{"Title", "full_name", "type", "range", "_x", "größe"} {
		assert.True(t, IsAttrName(name), name)
	}

	for _, name := range []string{"", "1abc", "a b", "a-b", "a.b", "0not;an,identifier"} {
		assert.False(t, IsAttrName(name), name)
	}
}
