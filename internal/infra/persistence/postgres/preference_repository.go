package postgres

import (
	"context"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUserID retrieves the preference row for userID.
func (repo *preferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preference, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference by user id")
	}

	return toPreferenceDomain(&prefM), nil
}

// Upsert inserts the row or overwrites every flag on conflict with user_id.
func (repo *preferenceRepository) Upsert(ctx context.Context, pref *entity.Preference) error {
	prefM := fromPreferenceDomain(pref)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"offers_push", "offers_email", "offers_sms",
				"order_updates_push", "order_updates_email", "order_updates_sms",
				"newsletter_push", "newsletter_email", "newsletter_sms",
				"offers", "order_updates", "newsletter",
				"updated_at",
			}),
		}).
		Create(prefM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("preference owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert preference")
	}

	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM PreferenceModel to a domain Preference entity.
func toPreferenceDomain(data *model.PreferenceModel) *entity.Preference {
	if data == nil {
		return nil
	}

	return &entity.Preference{
		UserID:            data.UserID,
		OffersPush:        data.OffersPush,
		OffersEmail:       data.OffersEmail,
		OffersSMS:         data.OffersSMS,
		OrderUpdatesPush:  data.OrderUpdatesPush,
		OrderUpdatesEmail: data.OrderUpdatesEmail,
		OrderUpdatesSMS:   data.OrderUpdatesSMS,
		NewsletterPush:    data.NewsletterPush,
		NewsletterEmail:   data.NewsletterEmail,
		NewsletterSMS:     data.NewsletterSMS,
		Offers:            data.Offers,
		OrderUpdates:      data.OrderUpdates,
		Newsletter:        data.Newsletter,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain Preference entity to a GORM PreferenceModel.
func fromPreferenceDomain(data *entity.Preference) *model.PreferenceModel {
	if data == nil {
		return nil
	}

	return &model.PreferenceModel{
		UserID:            data.UserID,
		OffersPush:        data.OffersPush,
		OffersEmail:       data.OffersEmail,
		OffersSMS:         data.OffersSMS,
		OrderUpdatesPush:  data.OrderUpdatesPush,
		OrderUpdatesEmail: data.OrderUpdatesEmail,
		OrderUpdatesSMS:   data.OrderUpdatesSMS,
		NewsletterPush:    data.NewsletterPush,
		NewsletterEmail:   data.NewsletterEmail,
		NewsletterSMS:     data.NewsletterSMS,
		Offers:            data.Offers,
		OrderUpdates:      data.OrderUpdates,
		Newsletter:        data.Newsletter,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
