package declfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lima/internal/analyze"
	"lima/registry"
)

func TestScaffold_Store(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages(context.Background(), "lima/store")
	require.NoError(t, err)

	f, notes, err := Scaffold(graph, "lima/store", "Order")
	require.NoError(t, err)
	assert.True(t, notes.IsValid())

	assert.Equal(t, "lima/store", f.Package)
	require.Len(t, f.Schemas, 3)

	var names []string
	for _, sd := range f.Schemas {
		names = append(names, sd.Name)
	}
	assert.Equal(t, []string{"OrderSchema", "CustomerSchema", "OrderItemSchema"}, names)

	assert.Equal(t, []FieldDecl{
		{Name: "id", Attr: "ID", Kind: KindInteger},
		{Name: "customer", Attr: "Customer", Kind: KindEmbed, Schema: "CustomerSchema"},
		{Name: "status", Attr: "Status", Kind: KindString},
		{Name: "items", Attr: "Items", Kind: KindEmbed, Schema: "OrderItemSchema", Many: true},
		{Name: "ordered_at", Attr: "OrderedAt", Kind: KindDateTime},
		{Name: "DeliveryOn", Kind: KindDate},
	}, f.Schemas[0].Fields)

	customer := f.Schemas[1].Fields
	require.Len(t, customer, 7)
	assert.Equal(t, FieldDecl{Name: "address", Attr: "Address", Kind: KindString}, customer[3])
	assert.Equal(t, FieldDecl{Name: "birthday", Attr: "Birthday", Kind: KindDate}, customer[5])
	assert.Equal(t, FieldDecl{Name: "referrer", Attr: "Referrer", Kind: KindEmbed, Schema: "CustomerSchema"}, customer[6])

	// the scaffold applies as is
	assert.True(t, Validate(f, nil).IsValid())

	classes, err := Apply(f, registry.New())
	require.NoError(t, err)
	assert.Len(t, classes, 3)
}

func TestScaffold_Errors(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages(context.Background(), "lima/store")
	require.NoError(t, err)

	_, _, err = Scaffold(graph, "lima/store", "Missing")
	require.ErrorContains(t, err, "lima/store.Missing not found")

	_, _, err = Scaffold(graph, "lima/store", "OrderStatus")
	require.ErrorContains(t, err, "is not a struct")
}
