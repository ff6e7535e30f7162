package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"order", []string{"order"}},
		{"OrderSchema", []string{"order", "schema"}},
		{"orderItem", []string{"order", "item"}},
		{"created_at", []string{"created", "at"}},
		{"full-name", []string{"full", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"OrderID", []string{"order", "id"}},
		{"lima/store.HTTPOrderSchema", []string{"lima", "store", "http", "order", "schema"}},
		{"__x__", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "orderschema", Normalize("OrderSchema"))
	assert.Equal(t, Normalize("OrderSchema"), Normalize("order_schema"))
	assert.Equal(t, "limastoreorderschema", Normalize("lima/store.OrderSchema"))
	assert.Equal(t, "datetime", Normalize("date_time"))
}

func TestNormalizeStripped(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"OrderSchema", "order"},
		{"lima/store.OrderSchema", "limastoreorder"},
		{"CustomerID", "customer"},
		{"TitleField", "title"},
		{"Schema", "schema"},
		{"SchemaOrder", "schemaorder"},
		{"IDSchema", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStripped(tt.input))
		})
	}
}
