package usecase

import (
	"context"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderInput carries a new order.
type OrderInput struct {
	Items       []entity.OrderItem
	TotalAmount float64
}

// OrderQuery is a paginated order listing request.
type OrderQuery struct {
	Page   int
	Limit  int
	Status entity.OrderStatus
	Search string // order ID; owner name or email in the operator listing
	From   *time.Time
	To     *time.Time
}

// OrderUsecase defines order creation and status changes.
type OrderUsecase interface {
	// CreateOrder stores a confirmed order for userID and notifies the user.
	CreateOrder(ctx context.Context, userID uuid.UUID, input OrderInput) (*entity.Order, error)

	// UpdateOrderStatus changes the order status and notifies the owner.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// ListMyOrders returns a page of userID's orders.
	ListMyOrders(ctx context.Context, userID uuid.UUID, query OrderQuery) (*entity.Page[*entity.Order], error)

	// ListOrders returns a page of every user's orders.
	ListOrders(ctx context.Context, query OrderQuery) (*entity.Page[*entity.Order], error)
}

// OrderNotifier writes order notifications for the owning user. Hooks run after
// the order row is persisted and return the number of log rows written.
type OrderNotifier interface {
	// OnOrderCreated logs the confirmation on each enabled order_updates channel.
	OnOrderCreated(ctx context.Context, order *entity.Order) (int, error)

	// OnOrderStatusChanged logs status on each enabled order_updates channel.
	OnOrderStatusChanged(ctx context.Context, order *entity.Order, status entity.OrderStatus) (int, error)
}
