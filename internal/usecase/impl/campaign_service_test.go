package impl

import (
	"context"
	"testing"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCampaignService(t *testing.T) (usecase.CampaignUsecase, *mockRepo.MockCampaignRepository, *mockUsecase.MockCampaignDeliveryUsecase) {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	delivery := mockUsecase.NewMockCampaignDeliveryUsecase(t)

	svc := NewCampaignService(CampaignServiceParams{
		CampaignRepo: campaignRepo,
		Delivery:     delivery,
		Logger:       newDiscardLogger(),
	})

	return svc, campaignRepo, delivery
}

func creatorActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleCreator}
}

func draftCampaign(owner uuid.UUID) *entity.Campaign {
	return &entity.Campaign{
		ID:               uuid.New(),
		Name:             "Weekend sale",
		Message:          "Everything must go",
		NotificationType: entity.CategoryOffers,
		Status:           entity.CampaignStatusDraft,
		CreatedBy:        owner,
	}
}

func TestCampaignService_CreateCampaign_Success(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()

	campaignRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Campaign) bool {
			return c.Status == entity.CampaignStatusDraft && c.CreatedBy == actor.UserID
		})).
		Return(nil)

	campaign, err := svc.CreateCampaign(ctx, actor, usecase.CampaignInput{
		Name:             "  Weekend sale ",
		Message:          "Everything must go",
		NotificationType: entity.CategoryOffers,
		CityFilters:      []string{" pune", "Pune", "", "Indore"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Weekend sale", campaign.Name)
	assert.Equal(t, []string{"pune", "Indore"}, campaign.CityFilters)
	assert.Nil(t, campaign.ScheduledAt)
}

func TestCampaignService_CreateCampaign_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CampaignInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   usecase.CampaignInput{Message: "m", NotificationType: entity.CategoryOffers},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown type",
			input:   usecase.CampaignInput{Name: "n", Message: "m", NotificationType: "promotions"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unsupported city",
			input:   usecase.CampaignInput{Name: "n", Message: "m", NotificationType: entity.CategoryOffers, CityFilters: []string{"Atlantis"}},
			wantErr: domainerrors.ErrInvalidCityFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestCampaignService(t)

			campaign, err := svc.CreateCampaign(context.Background(), creatorActor(), tt.input)

			assert.Nil(t, campaign)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCampaignService_UpdateCampaign_ClearsCityFilters(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	campaign := draftCampaign(actor.UserID)
	campaign.CityFilters = []string{"Pune"}
	empty := []string{}

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	campaignRepo.EXPECT().UpdateContent(ctx, mock.Anything).Return(nil)

	updated, err := svc.UpdateCampaign(ctx, actor, campaign.ID, usecase.CampaignUpdate{
		Message:     strPtr("New message"),
		CityFilters: &empty,
	})

	require.NoError(t, err)
	assert.Nil(t, updated.CityFilters)
	assert.Equal(t, "New message", updated.Message)
	assert.Equal(t, "Weekend sale", updated.Name)
}

func TestCampaignService_UpdateCampaign_RejectsNonDraft(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	campaign := draftCampaign(actor.UserID)
	campaign.Status = entity.CampaignStatusScheduled

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := svc.UpdateCampaign(ctx, actor, campaign.ID, usecase.CampaignUpdate{Name: strPtr("x")})

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotEditable)
}

func TestCampaignService_UpdateCampaign_ForbiddenForOtherCreator(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	campaign := draftCampaign(uuid.New())

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := svc.UpdateCampaign(ctx, creatorActor(), campaign.ID, usecase.CampaignUpdate{Name: strPtr("x")})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCampaignService_ScheduleCampaign(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	campaign := draftCampaign(actor.UserID)
	at := time.Now().Add(time.Hour)

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	campaignRepo.EXPECT().
		TransitionStatus(ctx, campaign.ID, mock.MatchedBy(func(tr repository.StatusTransition) bool {
			return tr.To == entity.CampaignStatusScheduled &&
				len(tr.From) == 1 && tr.From[0] == entity.CampaignStatusDraft &&
				tr.ScheduleAt != nil && tr.ScheduleAt.Equal(at)
		})).
		Return(true, nil)

	scheduled, err := svc.ScheduleCampaign(ctx, actor, campaign.ID, at)

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledAt)
	assert.True(t, scheduled.ScheduledAt.Equal(at))
}

func TestCampaignService_ScheduleCampaign_InPast(t *testing.T) {
	svc, _, _ := createTestCampaignService(t)

	_, err := svc.ScheduleCampaign(context.Background(), creatorActor(), uuid.New(), time.Now().Add(-time.Second))

	assert.ErrorIs(t, err, domainerrors.ErrScheduleInPast)
}

func TestCampaignService_UnscheduleCampaign_NotScheduled(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	campaign := draftCampaign(actor.UserID)
	campaign.Status = entity.CampaignStatusSending

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	campaignRepo.EXPECT().TransitionStatus(ctx, campaign.ID, mock.Anything).Return(false, nil)

	_, err := svc.UnscheduleCampaign(ctx, actor, campaign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotScheduled)
}

func TestCampaignService_SendCampaign(t *testing.T) {
	svc, campaignRepo, delivery := createTestCampaignService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	campaign := draftCampaign(uuid.New())

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	delivery.EXPECT().
		DeliverNow(ctx, campaign.ID, []entity.CampaignStatus{entity.CampaignStatusDraft}).
		Return(&entity.DeliveryResult{Recipients: 4, LogCount: 9}, nil)

	result, err := svc.SendCampaign(ctx, actor, campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, 9, result.LogCount)
}

func TestCampaignService_SendCampaign_RejectsScheduled(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	campaign := draftCampaign(actor.UserID)
	campaign.Status = entity.CampaignStatusScheduled

	campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := svc.SendCampaign(ctx, actor, campaign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotDeliverable)
}

func TestCampaignService_ListCampaigns_CreatorSeesOwn(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	actor := creatorActor()
	owned := repository.CampaignFilter{Status: entity.CampaignStatusDraft, CreatedBy: &actor.UserID}
	paged := owned
	paged.Offset = 10
	paged.Limit = 10

	campaignRepo.EXPECT().Count(ctx, owned).Return(int64(25), nil)
	campaignRepo.EXPECT().List(ctx, paged).Return([]*entity.Campaign{draftCampaign(actor.UserID)}, nil)

	page, err := svc.ListCampaigns(ctx, actor, usecase.CampaignQuery{Status: entity.CampaignStatusDraft, Page: 2})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, entity.PageMeta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasPrev: true, HasNext: true}, page.Meta)
}

func TestCampaignService_ListCampaigns_ViewerSeesEveryCreator(t *testing.T) {
	svc, campaignRepo, _ := createTestCampaignService(t)
	ctx := context.Background()
	viewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleViewer}
	filter := repository.CampaignFilter{
		Type:          entity.CategoryOffers,
		Search:        "sale",
		City:          "Pune",
		CreatorSearch: "asha",
	}
	paged := filter
	paged.Limit = 10

	campaignRepo.EXPECT().Count(ctx, filter).Return(int64(2), nil)
	campaignRepo.EXPECT().List(ctx, paged).Return([]*entity.Campaign{draftCampaign(uuid.New()), draftCampaign(uuid.New())}, nil)

	page, err := svc.ListCampaigns(ctx, viewer, usecase.CampaignQuery{
		Type:    entity.CategoryOffers,
		Search:  "sale",
		City:    "Pune",
		Creator: "asha",
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestCampaignService_ListCampaigns_UnknownType(t *testing.T) {
	svc, _, _ := createTestCampaignService(t)

	_, err := svc.ListCampaigns(context.Background(), creatorActor(), usecase.CampaignQuery{Type: "promos"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
