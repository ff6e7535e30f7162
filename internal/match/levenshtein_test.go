package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "embed", 5},
		{"embed", "", 5},
		{"embed", "embed", 0},
		{"strng", "string", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"datum", "datetime", 4},
		{"größe", "grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("order", "order"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 5.0/6.0, Similarity("strng", "string"), 1e-9)
	assert.InDelta(t, 0.6, Similarity("größe", "grose"), 1e-9)
}
