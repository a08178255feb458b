package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/service"
)

// publishDeliveryEvent announces a committed delivery. The delivery is already
// durable, so a publish failure is only logged.
func publishDeliveryEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DeliveryEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := publisher.PublishDeliveryEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish delivery event",
			slog.String("type", event.Type),
			slog.String("source_id", event.SourceID),
			slog.Any("error", err),
		)
	}
}
