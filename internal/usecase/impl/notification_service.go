package impl

import (
	"context"

	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	"relay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxLogPageLimit bounds operator log listings.
	maxLogPageLimit = 100
	// maxMyNotificationsPageLimit bounds a user's own history.
	maxMyNotificationsPageLimit = 50
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
}

// NewNotificationService creates the notification history service.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
	}
}

// ListMyNotifications returns successful deliveries to the actor, newest first.
func (s *notificationService) ListMyNotifications(
	ctx context.Context,
	actor usecase.Actor,
	query usecase.LogQuery,
) (*entity.Page[*entity.NotificationLog], error) {
	userID := actor.UserID
	filter := entity.LogFilter{
		UserID:   &userID,
		Status:   entity.LogStatusSuccess,
		Category: query.Category,
		From:     query.From,
		To:       query.To,
	}

	return s.listPage(ctx, filter, query.Page, query.Limit, maxMyNotificationsPageLimit)
}

// ListLogs returns delivery rows for operators. Creators only see rows of
// campaigns they created.
func (s *notificationService) ListLogs(
	ctx context.Context,
	actor usecase.Actor,
	query usecase.LogQuery,
) (*entity.Page[*entity.NotificationLog], error) {
	filter := entity.LogFilter{
		Status:   query.Status,
		Search:   query.Search,
		Category: query.Category,
		From:     query.From,
		To:       query.To,
	}

	if actor.ScopedToOwn() {
		creatorID := actor.UserID
		filter.CreatorID = &creatorID
	}
	filter.WithUser = true

	return s.listPage(ctx, filter, query.Page, query.Limit, maxLogPageLimit)
}

// MyStats counts successful deliveries to the actor.
func (s *notificationService) MyStats(ctx context.Context, actor usecase.Actor) (*entity.NotificationStats, error) {
	userID := actor.UserID
	filter := entity.LogFilter{UserID: &userID, Status: entity.LogStatusSuccess}

	total, err := s.notificationRepo.CountNotificationLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	stats := &entity.NotificationStats{
		Total:     total,
		Breakdown: make(map[entity.Category]int64, len(entity.AllCategories)),
	}
	for _, category := range entity.AllCategories {
		filter.Category = category

		count, err := s.notificationRepo.CountNotificationLogs(ctx, filter)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s notifications", category)
		}
		stats.Breakdown[category] = count
	}

	return stats, nil
}

func (s *notificationService) listPage(
	ctx context.Context,
	filter entity.LogFilter,
	page, limit, maxLimit int,
) (*entity.Page[*entity.NotificationLog], error) {
	page, limit = entity.ClampPageRequest(page, limit, maxLimit)

	total, err := s.notificationRepo.CountNotificationLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notification logs")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	logs, err := s.notificationRepo.ListNotificationLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification logs")
	}

	return &entity.Page[*entity.NotificationLog]{Items: logs, Meta: meta}, nil
}
