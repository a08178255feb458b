package impl

import (
	"context"
	"testing"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	mockRepo "relay/internal/mocks/repository"
	mockSvc "relay/internal/mocks/service"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockUserRepository,
	*mockUsecase.MockOrderNotifier,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUsecase.NewMockOrderNotifier(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	})

	return svc, orderRepo, userRepo, notifier
}

func sampleItems() []entity.OrderItem {
	return []entity.OrderItem{{ProductID: "sku-1", Name: "Kettle", Quantity: 1, Price: 1499}}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	svc, orderRepo, userRepo, notifier := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().
		OnOrderCreated(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Status == entity.OrderStatusConfirmed })).
		Return(2, nil)

	order, err := svc.CreateOrder(ctx, userID, usecase.OrderInput{Items: sampleItems(), TotalAmount: 1499})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.WithinDuration(t, order.CreatedAt.Add(5*24*time.Hour), order.EstimatedDelivery, time.Second)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.OrderInput
	}{
		{name: "no items", input: usecase.OrderInput{TotalAmount: 10}},
		{name: "negative total", input: usecase.OrderInput{Items: sampleItems(), TotalAmount: -1}},
		{name: "zero quantity", input: usecase.OrderInput{Items: []entity.OrderItem{{ProductID: "p", Name: "n"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := createTestOrderService(t)

			_, err := svc.CreateOrder(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_CreateOrder_UnknownUser(t *testing.T) {
	svc, _, userRepo, _ := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.CreateOrder(ctx, userID, usecase.OrderInput{Items: sampleItems()})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOrderService_CreateOrder_NotifierFailureKeepsOrder(t *testing.T) {
	svc, orderRepo, userRepo, notifier := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().OnOrderCreated(ctx, mock.Anything).Return(0, errors.New("insert failed"))

	order, err := svc.CreateOrder(ctx, userID, usecase.OrderInput{Items: sampleItems()})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	svc, orderRepo, _, notifier := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusShipped).Return(nil)
	notifier.EXPECT().OnOrderStatusChanged(ctx, order, entity.OrderStatusShipped).Return(1, nil)

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := createTestOrderService(t)

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.New(), "LOST")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := svc.UpdateOrderStatus(ctx, id, entity.OrderStatusDelivered)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListMyOrders_ScopedToOwner(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	filter := repository.OrderFilter{UserID: &userID, Status: entity.OrderStatusShipped, Search: "7f3", From: &from}
	paged := filter
	paged.Offset = 50
	paged.Limit = 50

	orderRepo.EXPECT().Count(ctx, filter).Return(int64(60), nil)
	orderRepo.EXPECT().List(ctx, paged).Return([]*entity.Order{{ID: uuid.New(), UserID: userID}}, nil)

	page, err := svc.ListMyOrders(ctx, userID, usecase.OrderQuery{
		Page:   2,
		Limit:  80,
		Status: entity.OrderStatusShipped,
		Search: "7f3",
		From:   &from,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PageMeta{Page: 2, Limit: 50, Total: 60, TotalPages: 2, HasPrev: true}, page.Meta)
}

func TestOrderService_ListOrders_SearchesOwners(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()
	filter := repository.OrderFilter{Search: "asha", SearchOwner: true}
	paged := filter
	paged.Limit = 10

	orderRepo.EXPECT().Count(ctx, filter).Return(int64(0), nil)
	orderRepo.EXPECT().List(ctx, paged).Return(nil, nil)

	page, err := svc.ListOrders(ctx, usecase.OrderQuery{Search: "asha"})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Meta.TotalPages)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	svc, _, _, _ := createTestOrderService(t)

	_, err := svc.ListOrders(context.Background(), usecase.OrderQuery{Status: "LOST"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func createTestOrderNotifier(t *testing.T) (
	usecase.OrderNotifier,
	*mockRepo.MockPreferenceRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	logRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	notifier := NewOrderNotifier(OrderNotifierParams{
		PreferenceRepo:   prefRepo,
		NotificationRepo: logRepo,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})

	return notifier, prefRepo, logRepo, publisher
}

func TestOrderNotifier_OnOrderCreated_ScenarioE(t *testing.T) {
	notifier, prefRepo, logRepo, publisher := createTestOrderNotifier(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}
	pref := &entity.Preference{UserID: order.UserID, OrderUpdatesPush: true, OrderUpdatesEmail: true}

	prefRepo.EXPECT().FindByUserID(ctx, order.UserID).Return(pref, nil)
	logRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			if len(logs) != 2 || logs[0].Channel != entity.ChannelPush || logs[1].Channel != entity.ChannelEmail {
				return false
			}
			for _, l := range logs {
				if l.OrderID == nil || *l.OrderID != order.ID || l.Status != "ORDER_CONFIRMED" || l.UserID != order.UserID {
					return false
				}
			}
			return true
		})).
		Return(nil)
	publisher.EXPECT().
		PublishDeliveryEvent(ctx, mock.MatchedBy(func(e *service.DeliveryEvent) bool {
			return e.Type == service.EventOrderStatusLogged && e.Status == "ORDER_CONFIRMED" && e.LogCount == 2
		})).
		Return(nil)

	written, err := notifier.OnOrderCreated(ctx, order)

	require.NoError(t, err)
	assert.Equal(t, 2, written)
}

func TestOrderNotifier_OnOrderStatusChanged_LogsNewStatus(t *testing.T) {
	notifier, prefRepo, logRepo, publisher := createTestOrderNotifier(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}

	prefRepo.EXPECT().FindByUserID(ctx, order.UserID).Return(&entity.Preference{OrderUpdatesSMS: true}, nil)
	logRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			return len(logs) == 1 && logs[0].Status == "OUT_FOR_DELIVERY" && logs[0].Channel == entity.ChannelSMS
		})).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	written, err := notifier.OnOrderStatusChanged(ctx, order, entity.OrderStatusOutForDelivery)

	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestOrderNotifier_MissingPreferenceWritesNothing(t *testing.T) {
	notifier, prefRepo, _, _ := createTestOrderNotifier(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}

	prefRepo.EXPECT().FindByUserID(ctx, order.UserID).Return(nil, repository.ErrPreferenceNotFound)

	written, err := notifier.OnOrderCreated(ctx, order)

	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestOrderNotifier_AllChannelsDisabledWritesNothing(t *testing.T) {
	notifier, prefRepo, _, _ := createTestOrderNotifier(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}

	prefRepo.EXPECT().FindByUserID(ctx, order.UserID).Return(&entity.Preference{OffersPush: true}, nil)

	written, err := notifier.OnOrderCreated(ctx, order)

	require.NoError(t, err)
	assert.Zero(t, written)
}
