package usecase

import (
	"context"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignDeliveryUsecase resolves, logs and transitions a campaign as one unit.
type CampaignDeliveryUsecase interface {
	// DeliverNow delivers the campaign if its status is one of allowed.
	// An empty recipient set returns a zero result and leaves the campaign untouched.
	DeliverNow(ctx context.Context, campaignID uuid.UUID, allowed []entity.CampaignStatus) (*entity.DeliveryResult, error)
}

// CampaignInput carries the fields of a new campaign.
type CampaignInput struct {
	Name             string
	Message          string
	ImageURL         *string
	NotificationType entity.Category
	CityFilters      []string
}

// CampaignUpdate carries a partial edit; nil fields are left unchanged.
// A non-nil CityFilters pointing to an empty slice clears the filters.
type CampaignUpdate struct {
	Name        *string
	Message     *string
	ImageURL    *string
	CityFilters *[]string
}

// CampaignQuery is a paginated campaign listing request.
type CampaignQuery struct {
	Page    int
	Limit   int
	Status  entity.CampaignStatus
	Type    entity.Category
	Search  string // name or message
	City    string // campaigns with no city filter, or one naming this city
	Creator string // creator name or email
}

// CampaignUsecase defines campaign management for creators and admins.
type CampaignUsecase interface {
	// CreateCampaign validates input and stores a draft campaign.
	CreateCampaign(ctx context.Context, actor Actor, input CampaignInput) (*entity.Campaign, error)

	// UpdateCampaign edits a draft campaign.
	UpdateCampaign(ctx context.Context, actor Actor, campaignID uuid.UUID, update CampaignUpdate) (*entity.Campaign, error)

	// ListCampaigns returns a page of campaigns; creators only see their own.
	ListCampaigns(ctx context.Context, actor Actor, query CampaignQuery) (*entity.Page[*entity.Campaign], error)

	// ScheduleCampaign moves a draft to scheduled for a future time.
	ScheduleCampaign(ctx context.Context, actor Actor, campaignID uuid.UUID, at time.Time) (*entity.Campaign, error)

	// UnscheduleCampaign moves a scheduled campaign back to draft.
	UnscheduleCampaign(ctx context.Context, actor Actor, campaignID uuid.UUID) (*entity.Campaign, error)

	// SendCampaign delivers a draft campaign immediately.
	SendCampaign(ctx context.Context, actor Actor, campaignID uuid.UUID) (*entity.DeliveryResult, error)
}
