// Package store holds a small order domain and the schemas dumping it. It
// doubles as the reference for declaring schemas in Go code.
package store

import (
	"reflect"

	"lima/fields"
	"lima/schema"
)

// CustomerSchema dumps a Customer. A referrer is dumped by the same schema,
// without its own referrer.
var CustomerSchema = schema.MustDeclare("lima/store.CustomerSchema",
	schema.Field("id", fields.Must(fields.NewInteger(fields.Attr("ID")))),
	schema.Field("email", fields.Must(fields.NewString())),
	schema.Field("name", fields.Must(fields.NewString(fields.Attr("FullName")))),
	schema.Field("active", fields.Must(fields.NewBoolean(fields.Attr("IsActive")))),
	schema.Field("birthday", fields.Must(fields.NewDate())),
	schema.Field("referrer", fields.Must(fields.NewEmbed("lima/store.CustomerSchema",
		fields.With(schema.WithExclude("referrer"))))),
)

// ProductSchema dumps a Product with every field derived from its json tags.
var ProductSchema = schema.MustDeclare("lima/store.ProductSchema", productFields()...)

func productFields() []schema.Decl {
	decls, err := schema.FieldsFor(reflect.TypeFor[Product]())
	if err != nil {
		panic(err)
	}

	return decls
}

// OrderItemSchema dumps an OrderItem.
var OrderItemSchema = schema.MustDeclare("lima/store.OrderItemSchema",
	schema.Field("product_id", fields.Must(fields.NewInteger(fields.Attr("ProductID")))),
	schema.Field("name", fields.Must(fields.NewString())),
	schema.Field("quantity", fields.Must(fields.NewInteger())),
	schema.Field("unit_price", fields.Must(fields.NewInteger(fields.Attr("UnitPrice")))),
)

// OrderSchema dumps an Order with its customer and items embedded. Items are
// referred to by name to show that declaration order does not matter.
var OrderSchema = schema.MustDeclare("lima/store.OrderSchema",
	schema.Field("id", fields.Must(fields.NewInteger(fields.Attr("ID")))),
	schema.Field("status", fields.Must(fields.NewString(fields.Get(orderStatus)))),
	schema.Field("customer", fields.Must(fields.NewEmbed(CustomerSchema,
		fields.With(schema.WithOnly("id", "name"))))),
	schema.Field("items", fields.Must(fields.NewEmbed("OrderItemSchema",
		fields.With(schema.WithMany(true))))),
	schema.Field("total_cents", fields.Must(fields.NewInteger(fields.Attr("TotalCents")))),
	schema.Field("ordered_at", fields.Must(fields.NewDateTime(fields.Attr("OrderedAt")))),
	schema.Field("delivery_on", fields.Must(fields.NewDate(fields.Attr("DeliveryOn")))),
)

// OrderSummarySchema is OrderSchema without line items.
var OrderSummarySchema = schema.MustDeclare("lima/store.OrderSummarySchema",
	schema.Bases(OrderSchema),
	schema.Exclude("items", "customer"),
)

func orderStatus(o *Order) string {
	return string(o.Status)
}
