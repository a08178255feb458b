package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderNotifier struct {
	preferenceRepo   repository.PreferenceRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// OrderNotifierParams holds dependencies for OrderNotifier, injected by Fx.
type OrderNotifierParams struct {
	fx.In

	PreferenceRepo   repository.PreferenceRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewOrderNotifier creates the order notification hooks.
func NewOrderNotifier(params OrderNotifierParams) usecase.OrderNotifier {
	return &orderNotifier{
		preferenceRepo:   params.PreferenceRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (n *orderNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// OnOrderCreated logs the initial status of a new order.
func (n *orderNotifier) OnOrderCreated(ctx context.Context, order *entity.Order) (int, error) {
	return n.notify(ctx, order, order.Status)
}

// OnOrderStatusChanged logs status for the order owner.
func (n *orderNotifier) OnOrderStatusChanged(ctx context.Context, order *entity.Order, status entity.OrderStatus) (int, error) {
	return n.notify(ctx, order, status)
}

// notify writes one row per enabled order_updates channel. The row status is
// the order status, not the success marker used by campaigns and newsletters.
func (n *orderNotifier) notify(ctx context.Context, order *entity.Order, status entity.OrderStatus) (int, error) {
	pref, err := n.preferenceRepo.FindByUserID(ctx, order.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to load order owner preferences")
	}

	channels := pref.Channels(entity.CategoryOrderUpdates)
	if len(channels) == 0 {
		return 0, nil
	}

	pairs := make([]entity.Recipient, 0, len(channels))
	for _, channel := range channels {
		pairs = append(pairs, entity.Recipient{UserID: order.UserID, Channel: channel})
	}

	at := time.Now()
	written, err := appendDeliveryLogs(ctx, n.notificationRepo, entity.OrderSource(order.ID), pairs, string(status), at)
	if err != nil {
		return 0, err
	}

	publishDeliveryEvent(ctx, n.publisher, n.log(ctx), &service.DeliveryEvent{
		Type:       service.EventOrderStatusLogged,
		SourceID:   order.ID.String(),
		Recipients: 1,
		LogCount:   written,
		Status:     string(status),
		OccurredAt: at,
	})

	return written, nil
}
