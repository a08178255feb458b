package usecase

import (
	"context"
	"time"

	"relay/internal/domain/entity"
)

// LogQuery is a paginated notification history request.
type LogQuery struct {
	Page     int
	Limit    int
	Status   string
	Search   string
	Category entity.Category
	From     *time.Time
	To       *time.Time
}

// NotificationUsecase exposes the delivery log for reporting.
type NotificationUsecase interface {
	// ListMyNotifications returns successful deliveries to the actor.
	ListMyNotifications(ctx context.Context, actor Actor, query LogQuery) (*entity.Page[*entity.NotificationLog], error)

	// ListLogs returns delivery rows for operators; creators only see their campaigns.
	ListLogs(ctx context.Context, actor Actor, query LogQuery) (*entity.Page[*entity.NotificationLog], error)

	// MyStats counts successful deliveries to the actor, in total and per campaign type.
	MyStats(ctx context.Context, actor Actor) (*entity.NotificationStats, error)
}
