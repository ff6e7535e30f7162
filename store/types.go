package store

import (
	"time"

	"lima/primitive"
)

// 1. Product represents an individual item available for sale.
// We use int64 for Price to represent cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	Weight      float64   `json:"weight_kg"`
	CreatedAt   time.Time `json:"created_at"`
}

// 2. Customer represents the user placing orders.
type Customer struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	FullName string         `json:"full_name"`
	Address  *string        `json:"address"`
	IsActive bool           `json:"is_active"`
	Birthday primitive.Date `json:"birthday"`
	Referrer *Customer      `json:"referrer,omitempty"`
}

// 3. Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	Customer   *Customer   `json:"customer"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
	DeliveryOn *primitive.Date
}

// TotalCents sums up the line totals of the order.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}

// 4. OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// 5. OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
