package postgres

import (
	"context"
	"strings"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// FindByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return toCampaignDomain(&campaignM), nil
}

// Count counts campaigns matching filter.
func (repo *campaignRepository) Count(ctx context.Context, filter repository.CampaignFilter) (int64, error) {
	var total int64

	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count campaigns")
	}

	return total, nil
}

// List returns one page of campaigns matching filter, newest first.
func (repo *campaignRepository) List(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	query := repo.filtered(ctx, filter).Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var campaignModels []*model.CampaignModel
	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return toCampaignDomains(campaignModels), nil
}

func (repo *campaignRepository) filtered(ctx context.Context, filter repository.CampaignFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.CampaignModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("notification_type = ?", filter.Type)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if pattern, ok := likePattern(filter.Search); ok {
		query = query.Where("campaign_name ILIKE ? OR message ILIKE ?", pattern, pattern)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city_filters IS NULL OR cardinality(city_filters) = 0 OR ? = ANY(city_filters)", city)
	}
	if pattern, ok := likePattern(filter.CreatorSearch); ok {
		query = query.Where("created_by IN (SELECT id FROM users WHERE name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	return query
}

// Create persists a new campaign.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("campaign creator does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// UpdateContent rewrites the editable columns, guarded on the campaign still being a draft.
func (repo *campaignRepository) UpdateContent(ctx context.Context, campaign *entity.Campaign) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("campaign_id = ? AND status = ?", campaign.ID, entity.CampaignStatusDraft).
		Updates(map[string]any{
			"campaign_name": campaign.Name,
			"message":       campaign.Message,
			"image_url":     campaign.ImageURL,
			"city_filters":  pq.StringArray(campaign.CityFilters),
			"updated_at":    now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update campaign")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, campaign.ID); err != nil {
			return err
		}

		return repository.ErrCampaignNotEditable
	}

	campaign.UpdatedAt = now

	return nil
}

// FindDueScheduled reads from the primary so a tick never acts on a lagging replica.
func (repo *campaignRepository) FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND scheduled_at <= ?", entity.CampaignStatusScheduled, now).
		Order("scheduled_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var campaignModels []*model.CampaignModel
	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due scheduled campaigns")
	}

	return toCampaignDomains(campaignModels), nil
}

// TransitionStatus is a single conditional UPDATE; RowsAffected decides the winner.
func (repo *campaignRepository) TransitionStatus(ctx context.Context, id uuid.UUID, t repository.StatusTransition) (bool, error) {
	if len(t.From) == 0 {
		return false, nil
	}

	updates := map[string]any{
		"status":     t.To,
		"updated_at": time.Now(),
	}
	switch {
	case t.ClearSchedule:
		updates["scheduled_at"] = nil
	case t.ScheduleAt != nil:
		updates["scheduled_at"] = *t.ScheduleAt
	}

	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.CampaignModel{}).
		Where("campaign_id = ? AND status IN ?", id, t.From).
		Updates(updates)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition campaign status")
	}

	return result.RowsAffected == 1, nil
}

// --- Mapper Functions ---

// toCampaignDomain converts a GORM CampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	var cities []string
	if len(data.CityFilters) > 0 {
		cities = []string(data.CityFilters)
	}

	return &entity.Campaign{
		ID:               data.ID,
		Name:             data.Name,
		Message:          data.Message,
		ImageURL:         data.ImageURL,
		NotificationType: entity.Category(data.NotificationType),
		CityFilters:      cities,
		Status:           entity.CampaignStatus(data.Status),
		ScheduledAt:      data.ScheduledAt,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toCampaignDomains(models []*model.CampaignModel) []*entity.Campaign {
	campaigns := make([]*entity.Campaign, 0, len(models))
	for _, campaignM := range models {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns
}

// fromCampaignDomain converts a domain Campaign entity to a GORM CampaignModel.
func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:               data.ID,
		Name:             data.Name,
		Message:          data.Message,
		ImageURL:         data.ImageURL,
		NotificationType: string(data.NotificationType),
		CityFilters:      pq.StringArray(data.CityFilters),
		Status:           string(data.Status),
		ScheduledAt:      data.ScheduledAt,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
