package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sendingOnly = []entity.CampaignStatus{entity.CampaignStatusSending}

func createTestSchedulerService(t *testing.T) (usecase.SchedulerUsecase, *mockRepo.MockCampaignRepository, *mockUsecase.MockCampaignDeliveryUsecase) {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	delivery := mockUsecase.NewMockCampaignDeliveryUsecase(t)

	svc := NewSchedulerService(SchedulerServiceParams{
		CampaignRepo: campaignRepo,
		Delivery:     delivery,
		Config:       newTestConfig(50, 0),
		Logger:       newDiscardLogger(),
	})

	return svc, campaignRepo, delivery
}

func dueCampaign() *entity.Campaign {
	at := time.Now().Add(-time.Minute)

	return &entity.Campaign{
		ID:               uuid.New(),
		NotificationType: entity.CategoryOffers,
		Status:           entity.CampaignStatusScheduled,
		ScheduledAt:      &at,
	}
}

func TestSchedulerService_RunOnce_DeliversClaimedCampaign(t *testing.T) {
	svc, campaignRepo, delivery := createTestSchedulerService(t)
	ctx := context.Background()
	campaign := dueCampaign()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).Return([]*entity.Campaign{campaign}, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, campaign.ID, claimTransition).Return(true, nil)
	delivery.EXPECT().DeliverNow(mock.Anything, campaign.ID, sendingOnly).Return(&entity.DeliveryResult{Recipients: 2, LogCount: 3}, nil)

	report, err := svc.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.SchedulerReport{Due: 1, Claimed: 1, Sent: 1}, report)
}

func TestSchedulerService_RunOnce_SkipsLostClaim(t *testing.T) {
	svc, campaignRepo, _ := createTestSchedulerService(t)
	ctx := context.Background()
	campaign := dueCampaign()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).Return([]*entity.Campaign{campaign}, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, campaign.ID, claimTransition).Return(false, nil)

	report, err := svc.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.SchedulerReport{Due: 1, Skipped: 1}, report)
}

func TestSchedulerService_RunOnce_ZeroRecipientsReturnsToDraft(t *testing.T) {
	svc, campaignRepo, delivery := createTestSchedulerService(t)
	ctx := context.Background()
	campaign := dueCampaign()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).Return([]*entity.Campaign{campaign}, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, campaign.ID, claimTransition).Return(true, nil)
	delivery.EXPECT().DeliverNow(mock.Anything, campaign.ID, sendingOnly).Return(&entity.DeliveryResult{}, nil)
	campaignRepo.EXPECT().
		TransitionStatus(mock.Anything, campaign.ID, repository.StatusTransition{
			From:          sendingOnly,
			To:            entity.CampaignStatusDraft,
			ClearSchedule: true,
		}).
		Return(true, nil)

	report, err := svc.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.SchedulerReport{Due: 1, Claimed: 1, Unlocked: 1}, report)
}

func TestSchedulerService_RunOnce_FailedDeliveryIsRetriedNextTick(t *testing.T) {
	svc, campaignRepo, delivery := createTestSchedulerService(t)
	ctx := context.Background()
	failing := dueCampaign()
	healthy := dueCampaign()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).Return([]*entity.Campaign{failing, healthy}, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, failing.ID, claimTransition).Return(true, nil)
	delivery.EXPECT().DeliverNow(mock.Anything, failing.ID, sendingOnly).Return(nil, errors.New("deadlock detected"))
	campaignRepo.EXPECT().
		TransitionStatus(mock.Anything, failing.ID, repository.StatusTransition{From: sendingOnly, To: entity.CampaignStatusScheduled}).
		Return(true, nil)

	campaignRepo.EXPECT().TransitionStatus(ctx, healthy.ID, claimTransition).Return(true, nil)
	delivery.EXPECT().DeliverNow(mock.Anything, healthy.ID, sendingOnly).Return(&entity.DeliveryResult{Recipients: 1, LogCount: 1}, nil)

	report, err := svc.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.SchedulerReport{Due: 2, Claimed: 2, Sent: 1, Failed: 1}, report)
}

func TestSchedulerService_RunOnce_DueScanError(t *testing.T) {
	svc, campaignRepo, _ := createTestSchedulerService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).Return(nil, errors.New("connection refused"))

	report, err := svc.RunOnce(ctx)

	assert.Nil(t, report)
	assert.Error(t, err)
}

func TestSchedulerService_RunOnce_RevertSurvivesDeliveryTimeout(t *testing.T) {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	delivery := mockUsecase.NewMockCampaignDeliveryUsecase(t)
	svc := NewSchedulerService(SchedulerServiceParams{
		CampaignRepo: campaignRepo,
		Delivery:     delivery,
		Config:       newTestConfig(10, 10*time.Millisecond),
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	campaign := dueCampaign()

	campaignRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 10).Return([]*entity.Campaign{campaign}, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, campaign.ID, claimTransition).Return(true, nil)
	delivery.EXPECT().
		DeliverNow(mock.Anything, campaign.ID, sendingOnly).
		RunAndReturn(func(deliverCtx context.Context, _ uuid.UUID, _ []entity.CampaignStatus) (*entity.DeliveryResult, error) {
			<-deliverCtx.Done()
			return nil, deliverCtx.Err()
		})
	campaignRepo.EXPECT().
		TransitionStatus(mock.Anything, campaign.ID, revertToScheduled).
		RunAndReturn(func(revertCtx context.Context, _ uuid.UUID, _ repository.StatusTransition) (bool, error) {
			assert.NoError(t, revertCtx.Err())
			return true, nil
		})

	report, err := svc.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func TestSchedulerService_RunOnce_ConcurrentTicksClaimOnce(t *testing.T) {
	campaign := dueCampaign()
	_, candidates := scenarioA()
	store := newMemoryStore(candidates, campaign)

	newScheduler := func() usecase.SchedulerUsecase {
		delivery := NewCampaignDeliveryService(CampaignDeliveryServiceParams{
			TxManager: store,
			Logger:    newDiscardLogger(),
		})

		return NewSchedulerService(SchedulerServiceParams{
			CampaignRepo: store.NewCampaignRepository(),
			Delivery:     delivery,
			Config:       newTestConfig(50, 0),
			Logger:       newDiscardLogger(),
		})
	}

	schedulers := []usecase.SchedulerUsecase{newScheduler(), newScheduler()}
	reports := make([]*entity.SchedulerReport, len(schedulers))

	var wg sync.WaitGroup
	for i, s := range schedulers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			report, err := s.RunOnce(context.Background())
			assert.NoError(t, err)
			reports[i] = report
		}()
	}
	wg.Wait()

	claimed, sent := 0, 0
	for _, r := range reports {
		require.NotNil(t, r)
		claimed += r.Claimed
		sent += r.Sent
	}

	assert.Equal(t, 1, claimed)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, store.countTransitions(campaign.ID, entity.CampaignStatusSending))
	assert.Equal(t, 1, store.countTransitions(campaign.ID, entity.CampaignStatusSent))
	assert.Equal(t, entity.CampaignStatusSent, store.campaign(campaign.ID).Status)
	assert.Nil(t, store.campaign(campaign.ID).ScheduledAt)
}

func TestSchedulerService_RunOnce_NoRecipientsUnlocksToDraft(t *testing.T) {
	campaign := dueCampaign()
	store := newMemoryStore(nil, campaign)

	delivery := NewCampaignDeliveryService(CampaignDeliveryServiceParams{
		TxManager: store,
		Logger:    newDiscardLogger(),
	})
	svc := NewSchedulerService(SchedulerServiceParams{
		CampaignRepo: store.NewCampaignRepository(),
		Delivery:     delivery,
		Config:       newTestConfig(50, 0),
		Logger:       newDiscardLogger(),
	})

	report, err := svc.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Unlocked)
	assert.Equal(t, entity.CampaignStatusDraft, store.campaign(campaign.ID).Status)
	assert.Nil(t, store.campaign(campaign.ID).ScheduledAt)
	assert.Empty(t, store.logsFor(campaign.ID))
}

func TestSchedulerService_DeliveryAfterClaimRejectsDraftSend(t *testing.T) {
	campaign := dueCampaign()
	_, candidates := scenarioA()
	store := newMemoryStore(candidates, campaign)
	delivery := NewCampaignDeliveryService(CampaignDeliveryServiceParams{
		TxManager: store,
		Logger:    newDiscardLogger(),
	})

	claimed, err := store.NewCampaignRepository().TransitionStatus(context.Background(), campaign.ID, claimTransition)
	require.NoError(t, err)
	require.True(t, claimed)

	_, err = delivery.DeliverNow(context.Background(), campaign.ID, []entity.CampaignStatus{entity.CampaignStatusDraft})

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotDeliverable)
	assert.Empty(t, store.logsFor(campaign.ID))
}

// staleReadCampaignRepo answers FindByID from a snapshot taken before any
// write, like an asynchronous replica that has not caught up yet.
type staleReadCampaignRepo struct {
	memoryCampaignRepo
	snapshot map[uuid.UUID]entity.Campaign
}

func (r staleReadCampaignRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Campaign, error) {
	c, ok := r.snapshot[id]
	if !ok {
		return nil, repository.ErrCampaignNotFound
	}

	return &c, nil
}

func TestSchedulerService_RunOnce_DeliversWhenReadsLagBehindClaim(t *testing.T) {
	campaign := dueCampaign()
	_, candidates := scenarioA()
	store := newMemoryStore(candidates, campaign)
	stale := staleReadCampaignRepo{
		memoryCampaignRepo: memoryCampaignRepo{store},
		snapshot:           map[uuid.UUID]entity.Campaign{campaign.ID: store.campaign(campaign.ID)},
	}

	svc := NewSchedulerService(SchedulerServiceParams{
		CampaignRepo: stale,
		Delivery: NewCampaignDeliveryService(CampaignDeliveryServiceParams{
			TxManager: store,
			Logger:    newDiscardLogger(),
		}),
		Config: newTestConfig(50, 0),
		Logger: newDiscardLogger(),
	})

	first, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.SchedulerReport{Due: 1, Claimed: 1, Sent: 1}, first)

	for range 2 {
		report, err := svc.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &entity.SchedulerReport{}, report)
	}

	assert.Equal(t, entity.CampaignStatusSent, store.campaign(campaign.ID).Status)
	assert.Equal(t, 1, store.countTransitions(campaign.ID, entity.CampaignStatusSending))
	assert.Zero(t, store.countTransitions(campaign.ID, entity.CampaignStatusScheduled))
	assert.Len(t, store.logsFor(campaign.ID), 9)
}
