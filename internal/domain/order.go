package domain

import (
	"context"
	"time"
)

// ShippingMethod selects how an order is delivered.
type ShippingMethod string

const (
	ShippingPickupStore      ShippingMethod = "pickupStore"
	ShippingDeliveryStandard ShippingMethod = "deliveryStandard"
	ShippingDeliveryExpress  ShippingMethod = "deliveryExpress"
)

// Cost returns the flat shipping cost for the method. Unrecognised methods
// fall back to the free in-store pickup cost rather than failing.
func (m ShippingMethod) Cost() float64 {
	switch m {
	case ShippingDeliveryStandard:
		return 150
	case ShippingDeliveryExpress:
		return 250
	default:
		return 0
	}
}

// Order is an immutable record snapshotted from the cart at checkout time.
// Total equals the sum of the item totals plus the shipping cost at creation;
// the record is never re-validated or mutated afterwards.
type Order struct {
	OrderID        string         `json:"orderId"`
	Date           time.Time      `json:"date"`
	Username       string         `json:"username"`
	Items          []CartItem     `json:"items"`
	ShippingMethod ShippingMethod `json:"shippingMethod"`
	ShippingCost   float64        `json:"shippingCost"`
	Total          float64        `json:"total"`
}

// OrderRepository is the port for the append-only order history.
type OrderRepository interface {
	AppendOrder(ctx context.Context, order Order) error
	// ListOrdersByUsername returns the orders whose username matches exactly,
	// in insertion order.
	ListOrdersByUsername(ctx context.Context, username string) ([]Order, error)
}
