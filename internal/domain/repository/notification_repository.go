package repository

import (
	"context"

	"relay/internal/domain/entity"
)

// NotificationRepository is the append-only store of delivery log rows.
type NotificationRepository interface {
	// BatchCreateNotificationLogs persists multiple notification log entries in a batch.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// CountNotificationLogs counts rows matching filter, ignoring Offset and Limit.
	CountNotificationLogs(ctx context.Context, filter entity.LogFilter) (int64, error)

	// ListNotificationLogs returns rows matching filter, newest first.
	ListNotificationLogs(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, error)
}
