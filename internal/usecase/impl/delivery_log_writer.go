package impl

import (
	"context"
	"time"

	"relay/internal/domain/entity"
	"relay/internal/domain/repository"

	"github.com/pkg/errors"
)

// appendDeliveryLogs writes one success or status row per pair, all tagged with
// source and stamped with the same at. repo must be bound to the caller's
// transaction when the rows are part of an atomic delivery.
func appendDeliveryLogs(
	ctx context.Context,
	repo repository.NotificationRepository,
	source entity.SourceRef,
	pairs []entity.Recipient,
	status string,
	at time.Time,
) (int, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	logs := make([]*entity.NotificationLog, 0, len(pairs))
	for _, pair := range pairs {
		logs = append(logs, entity.NewNotificationLog(source, pair, status, at))
	}

	if err := repo.BatchCreateNotificationLogs(ctx, logs); err != nil {
		return 0, errors.Wrapf(err, "failed to write %d %s delivery logs", len(logs), source.Kind)
	}

	return len(logs), nil
}
