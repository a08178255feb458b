package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is an order lifecycle state; its string form is logged verbatim.
type OrderStatus string

const (
	OrderStatusConfirmed      OrderStatus = "ORDER_CONFIRMED"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// IsValid checks if the OrderStatus is one of the five known states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusShipped, OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order belongs to exactly one user; each creation and status change notifies that user.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Items             []OrderItem
	TotalAmount       float64
	Status            OrderStatus
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
