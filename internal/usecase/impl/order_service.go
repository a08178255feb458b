package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// estimatedDeliveryWindow is added to the creation time of a new order.
	estimatedDeliveryWindow = 5 * 24 * time.Hour
	// maxOrderPageLimit bounds order listings.
	maxOrderPageLimit = 50
)

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	notifier  usecase.OrderNotifier
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Notifier  usecase.OrderNotifier
	Logger    *slog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder stores a confirmed order and notifies the owner.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.OrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}

	if input.TotalAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total amount must not be negative")
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to create order")
		}

		return nil, errors.Wrap(err, "failed to find order owner")
	}

	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New(),
		UserID:            userID,
		Items:             input.Items,
		TotalAmount:       input.TotalAmount,
		Status:            entity.OrderStatusConfirmed,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if _, err := s.notifier.OnOrderCreated(ctx, order); err != nil {
		s.log(ctx).Error("Failed to notify order creation",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// UpdateOrderStatus changes the status and notifies the owner.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown order status " + string(status))
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("failed to update order status")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("failed to update order status")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	if _, err := s.notifier.OnOrderStatusChanged(ctx, order, status); err != nil {
		s.log(ctx).Error("Failed to notify order status change",
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// ListMyOrders returns a page of userID's orders, newest first. Search matches the order ID.
func (s *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	filter := repository.OrderFilter{UserID: &userID}

	return s.listPage(ctx, filter, query)
}

// ListOrders returns a page of all orders, newest first. Search also matches
// the owner's name or email.
func (s *orderService) ListOrders(ctx context.Context, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	filter := repository.OrderFilter{SearchOwner: true}

	return s.listPage(ctx, filter, query)
}

func (s *orderService) listPage(ctx context.Context, filter repository.OrderFilter, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("invalid status " + string(query.Status))
	}

	filter.Status = query.Status
	filter.Search = query.Search
	filter.From = query.From
	filter.To = query.To

	page, limit := entity.ClampPageRequest(query.Page, query.Limit, maxOrderPageLimit)

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &entity.Page[*entity.Order]{Items: orders, Meta: meta}, nil
}
