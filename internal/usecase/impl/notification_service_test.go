package impl

import (
	"context"
	"testing"

	"relay/internal/domain/entity"
	mockRepo "relay/internal/mocks/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	return NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo}), notificationRepo
}

func TestNotificationService_ListMyNotifications(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}

	notificationRepo.EXPECT().
		CountNotificationLogs(ctx, mock.MatchedBy(func(f entity.LogFilter) bool {
			return f.UserID != nil && *f.UserID == actor.UserID && f.Status == entity.LogStatusSuccess && f.CreatorID == nil
		})).
		Return(int64(120), nil)
	notificationRepo.EXPECT().
		ListNotificationLogs(ctx, mock.MatchedBy(func(f entity.LogFilter) bool {
			return f.Limit == 50 && f.Offset == 50
		})).
		Return([]*entity.NotificationLog{}, nil)

	page, err := svc.ListMyNotifications(ctx, actor, usecase.LogQuery{Page: 2, Limit: 500, Status: "ORDER_CONFIRMED"})

	require.NoError(t, err)
	assert.Equal(t, entity.PageMeta{Page: 2, Limit: 50, Total: 120, TotalPages: 3, HasPrev: true, HasNext: true}, page.Meta)
}

func TestNotificationService_ListLogs_CreatorScopedToOwnCampaigns(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCreator}

	notificationRepo.EXPECT().
		CountNotificationLogs(ctx, mock.MatchedBy(func(f entity.LogFilter) bool {
			return f.CreatorID != nil && *f.CreatorID == actor.UserID && f.UserID == nil
		})).
		Return(int64(3), nil)
	notificationRepo.EXPECT().ListNotificationLogs(ctx, mock.Anything).Return([]*entity.NotificationLog{{}, {}, {}}, nil)

	page, err := svc.ListLogs(ctx, actor, usecase.LogQuery{Page: 9, Limit: 1})

	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, entity.PageMeta{Page: 1, Limit: 5, Total: 3, TotalPages: 1}, page.Meta)
}

func TestNotificationService_ListLogs_AdminSeesEverything(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	notificationRepo.EXPECT().
		CountNotificationLogs(ctx, entity.LogFilter{Status: "SHIPPED", WithUser: true}).
		Return(int64(0), nil)
	notificationRepo.EXPECT().
		ListNotificationLogs(ctx, entity.LogFilter{Status: "SHIPPED", Limit: 10, WithUser: true}).
		Return(nil, nil)

	page, err := svc.ListLogs(ctx, actor, usecase.LogQuery{Status: "SHIPPED"})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.TotalPages)
	assert.False(t, page.Meta.HasNext)
}

func TestNotificationService_ListLogs_CountError(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().CountNotificationLogs(ctx, mock.Anything).Return(int64(0), errors.New("timeout"))

	_, err := svc.ListLogs(ctx, usecase.Actor{Role: entity.RoleAdmin}, usecase.LogQuery{})

	assert.Error(t, err)
}

func TestNotificationService_ListLogs_ViewerIsNotScoped(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleViewer}

	notificationRepo.EXPECT().
		CountNotificationLogs(ctx, mock.MatchedBy(func(f entity.LogFilter) bool {
			return f.CreatorID == nil && f.UserID == nil
		})).
		Return(int64(1), nil)
	notificationRepo.EXPECT().ListNotificationLogs(ctx, mock.Anything).Return([]*entity.NotificationLog{{}}, nil)

	page, err := svc.ListLogs(ctx, actor, usecase.LogQuery{})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestNotificationService_MyStats(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}

	counts := map[entity.Category]int64{
		"":                          9,
		entity.CategoryOffers:       6,
		entity.CategoryOrderUpdates: 0,
		entity.CategoryNewsletter:   3,
	}
	notificationRepo.EXPECT().
		CountNotificationLogs(ctx, mock.MatchedBy(func(f entity.LogFilter) bool {
			return f.UserID != nil && *f.UserID == actor.UserID && f.Status == entity.LogStatusSuccess
		})).
		RunAndReturn(func(_ context.Context, f entity.LogFilter) (int64, error) {
			return counts[f.Category], nil
		}).
		Times(4)

	stats, err := svc.MyStats(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.Total)
	assert.Equal(t, map[entity.Category]int64{
		entity.CategoryOffers:       6,
		entity.CategoryOrderUpdates: 0,
		entity.CategoryNewsletter:   3,
	}, stats.Breakdown)
}

func TestNotificationService_MyStats_CountError(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().CountNotificationLogs(ctx, mock.Anything).Return(int64(0), errors.New("timeout"))

	_, err := svc.MyStats(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser})

	assert.Error(t, err)
}
