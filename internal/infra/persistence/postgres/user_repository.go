package postgres

import (
	"context"

	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryPreferenceClause narrows candidates to users with at least one channel
// enabled for the category. The resolver still applies the exact per-channel check.
//
//nolint:gochecknoglobals
var categoryPreferenceClause = map[entity.Category]string{
	entity.CategoryOffers:       "preferences.offers_push OR preferences.offers_email OR preferences.offers_sms",
	entity.CategoryOrderUpdates: "preferences.order_updates_push OR preferences.order_updates_email OR preferences.order_updates_sms",
	entity.CategoryNewsletter:   "preferences.newsletter_push OR preferences.newsletter_email OR preferences.newsletter_sms",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by ID with the preference row preloaded.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Preference").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindRecipientCandidates loads active users in the criteria's cities that have the
// category enabled on some channel and, for newsletters, hold a subscription.
func (repo *userRepository) FindRecipientCandidates(ctx context.Context, criteria entity.RecipientCriteria) ([]entity.RecipientCandidate, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Preload("Preference").
		Where("users.is_active = ? AND users.deleted_at IS NULL", true)

	if len(criteria.Cities) > 0 {
		query = query.Where("users.city IN ?", criteria.Cities)
	}

	if clause, ok := categoryPreferenceClause[criteria.Category]; ok {
		query = query.Where("EXISTS (SELECT 1 FROM preferences WHERE preferences.user_id = users.id AND (" + clause + "))")
	}

	if criteria.NewsletterID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM newsletter_subscriptions ns WHERE ns.user_id = users.id AND ns.newsletter_id = ?)",
			*criteria.NewsletterID,
		)
	}

	var userModels []*model.UserModel
	if err := query.Order("users.id").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipient candidates")
	}

	candidates := make([]entity.RecipientCandidate, 0, len(userModels))
	for _, userM := range userModels {
		candidates = append(candidates, entity.RecipientCandidate{
			User:       toUserDomain(userM),
			Subscribed: criteria.NewsletterID != nil,
		})
	}

	return candidates, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Role:       entity.Role(data.Role),
		City:       data.City,
		IsActive:   data.IsActive,
		Preference: toPreferenceDomain(data.Preference),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
