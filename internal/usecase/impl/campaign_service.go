package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxCampaignPageLimit bounds campaign listings.
const maxCampaignPageLimit = 100

type campaignService struct {
	campaignRepo repository.CampaignRepository
	delivery     usecase.CampaignDeliveryUsecase
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	Delivery     usecase.CampaignDeliveryUsecase
	Logger       *slog.Logger
}

// NewCampaignService creates the campaign management service.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo: params.CampaignRepo,
		delivery:     params.Delivery,
		logger:       params.Logger,
	}
}

func (s *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCampaign validates input and stores a draft.
func (s *campaignService) CreateCampaign(ctx context.Context, actor usecase.Actor, input usecase.CampaignInput) (*entity.Campaign, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and message are required")
	}

	if !input.NotificationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid notification type " + string(input.NotificationType))
	}

	cities, err := normalizeCities(input.CityFilters)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	campaign := &entity.Campaign{
		ID:               uuid.New(),
		Name:             name,
		Message:          message,
		ImageURL:         input.ImageURL,
		NotificationType: input.NotificationType,
		CityFilters:      cities,
		Status:           entity.CampaignStatusDraft,
		CreatedBy:        actor.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}

	s.log(ctx).Info("Campaign created",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("notification_type", string(campaign.NotificationType)),
	)

	return campaign, nil
}

// UpdateCampaign applies a partial edit to a draft.
func (s *campaignService) UpdateCampaign(
	ctx context.Context,
	actor usecase.Actor,
	campaignID uuid.UUID,
	update usecase.CampaignUpdate,
) (*entity.Campaign, error) {
	campaign, err := s.findOwned(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.IsEditable() {
		return nil, domainerrors.ErrCampaignNotEditable.WrapMessage("campaign status is " + string(campaign.Status))
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
		}
		campaign.Name = name
	}

	if update.Message != nil {
		message := strings.TrimSpace(*update.Message)
		if message == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("message must not be empty")
		}
		campaign.Message = message
	}

	if update.ImageURL != nil {
		campaign.ImageURL = update.ImageURL
	}

	if update.CityFilters != nil {
		cities, err := normalizeCities(*update.CityFilters)
		if err != nil {
			return nil, err
		}
		campaign.CityFilters = cities
	}

	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.UpdateContent(ctx, campaign); err != nil {
		if errors.Is(err, repository.ErrCampaignNotEditable) {
			return nil, domainerrors.ErrCampaignNotEditable.WrapMessage("campaign left draft during update")
		}

		return nil, errors.Wrap(err, "failed to update campaign")
	}

	return campaign, nil
}

// ListCampaigns returns a page of campaigns, newest first.
func (s *campaignService) ListCampaigns(
	ctx context.Context,
	actor usecase.Actor,
	query usecase.CampaignQuery,
) (*entity.Page[*entity.Campaign], error) {
	if query.Type != "" && !query.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid notification type " + string(query.Type))
	}

	filter := repository.CampaignFilter{
		Status:        query.Status,
		Type:          query.Type,
		Search:        query.Search,
		City:          query.City,
		CreatorSearch: query.Creator,
	}
	if actor.ScopedToOwn() {
		filter.CreatedBy = &actor.UserID
	}

	page, limit := entity.ClampPageRequest(query.Page, query.Limit, maxCampaignPageLimit)

	total, err := s.campaignRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count campaigns")
	}

	meta := entity.NewPageMeta(page, limit, total)
	filter.Offset = meta.Offset()
	filter.Limit = meta.Limit

	campaigns, err := s.campaignRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return &entity.Page[*entity.Campaign]{Items: campaigns, Meta: meta}, nil
}

// ScheduleCampaign moves a draft to scheduled.
func (s *campaignService) ScheduleCampaign(
	ctx context.Context,
	actor usecase.Actor,
	campaignID uuid.UUID,
	at time.Time,
) (*entity.Campaign, error) {
	if !at.After(time.Now()) {
		return nil, domainerrors.ErrScheduleInPast.WrapMessage("failed to schedule campaign")
	}

	campaign, err := s.findOwned(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.IsEditable() {
		return nil, domainerrors.ErrCampaignNotEditable.WrapMessage("only drafts can be scheduled")
	}

	at = at.UTC()
	scheduled, err := s.campaignRepo.TransitionStatus(ctx, campaignID, repository.StatusTransition{
		From:       []entity.CampaignStatus{entity.CampaignStatusDraft},
		To:         entity.CampaignStatusScheduled,
		ScheduleAt: &at,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to schedule campaign")
	}

	if !scheduled {
		return nil, domainerrors.ErrCampaignNotEditable.WrapMessage("campaign left draft before scheduling")
	}

	campaign.Status = entity.CampaignStatusScheduled
	campaign.ScheduledAt = &at

	s.log(ctx).Info("Campaign scheduled",
		slog.String("campaign_id", campaignID.String()),
		slog.Time("scheduled_at", at),
	)

	return campaign, nil
}

// UnscheduleCampaign moves a scheduled campaign back to draft. It fails once
// the scheduler has claimed the campaign.
func (s *campaignService) UnscheduleCampaign(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.findOwned(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	unscheduled, err := s.campaignRepo.TransitionStatus(ctx, campaignID, repository.StatusTransition{
		From:          []entity.CampaignStatus{entity.CampaignStatusScheduled},
		To:            entity.CampaignStatusDraft,
		ClearSchedule: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unschedule campaign")
	}

	if !unscheduled {
		return nil, domainerrors.ErrCampaignNotScheduled.WrapMessage("campaign status is " + string(campaign.Status))
	}

	campaign.Status = entity.CampaignStatusDraft
	campaign.ScheduledAt = nil

	return campaign, nil
}

// SendCampaign delivers a draft immediately. Without eligible recipients the
// campaign stays a draft and the result is zero.
func (s *campaignService) SendCampaign(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.DeliveryResult, error) {
	campaign, err := s.findOwned(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.Status != entity.CampaignStatusDraft {
		return nil, domainerrors.ErrCampaignNotDeliverable.WrapMessage("only drafts can be sent immediately")
	}

	return s.delivery.DeliverNow(ctx, campaignID, []entity.CampaignStatus{entity.CampaignStatusDraft})
}

// findOwned loads a campaign the actor may manage.
func (s *campaignService) findOwned(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound.WrapMessage("failed to find campaign")
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	if !actor.Owns(campaign.CreatedBy) {
		return nil, domainerrors.ErrForbidden.WrapMessage("campaign belongs to another creator")
	}

	return campaign, nil
}

func normalizeCities(raw []string) ([]string, error) {
	cities, err := entity.NormalizeCityFilters(raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidCityFilter.WithDetails(err.Error())
	}

	return cities, nil
}
