package repository

import (
	"context"
	"errors"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID      *uuid.UUID
	Status      entity.OrderStatus
	Search      string // substring of the order ID
	SearchOwner bool   // Search also matches the owner's name or email
	From        *time.Time
	To          *time.Time
	Offset      int
	Limit       int
}

// OrderRepository persists orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Count counts orders matching filter, ignoring Offset and Limit.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// List returns orders matching filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
