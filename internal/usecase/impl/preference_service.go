package impl

import (
	"context"
	"log/slog"
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

type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// PreferenceServiceParams holds dependencies for PreferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PreferenceRepo repository.PreferenceRepository
	Logger         *slog.Logger
}

// NewPreferenceService creates the preference service.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: params.PreferenceRepo,
		logger:         params.Logger,
	}
}

func (s *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetPreferences returns the stored preferences of userID.
func (s *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preference, error) {
	pref, err := s.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, domainerrors.ErrPreferenceNotFound.WrapMessage("failed to get preferences")
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return pref, nil
}

// UpdatePreferences merges input into the stored row, creating it on first write.
func (s *preferenceService) UpdatePreferences(
	ctx context.Context,
	actor usecase.Actor,
	userID uuid.UUID,
	input usecase.PreferenceInput,
) (*entity.Preference, error) {
	if actor.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("preferences can only be updated by their owner")
	}

	now := time.Now()
	pref, err := s.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, errors.Wrap(err, "failed to find preferences")
		}

		pref = entity.NewPreference(userID)
		pref.CreatedAt = now
	}

	applyPreferenceInput(pref, input)
	pref.SyncLegacy()
	pref.UpdatedAt = now

	if err := s.preferenceRepo.Upsert(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to save preferences")
	}

	s.log(ctx).Info("Preferences updated", slog.String("user_id", userID.String()))

	return pref, nil
}

// applyPreferenceInput expands legacy flags first so explicit channel flags win.
func applyPreferenceInput(pref *entity.Preference, input usecase.PreferenceInput) {
	legacy := []struct {
		category entity.Category
		value    *bool
	}{
		{entity.CategoryOffers, input.Offers},
		{entity.CategoryOrderUpdates, input.OrderUpdates},
		{entity.CategoryNewsletter, input.Newsletter},
	}
	for _, l := range legacy {
		if l.value != nil {
			pref.ApplyLegacy(l.category, *l.value)
		}
	}

	channels := []struct {
		category entity.Category
		channel  entity.Channel
		value    *bool
	}{
		{entity.CategoryOffers, entity.ChannelPush, input.OffersPush},
		{entity.CategoryOffers, entity.ChannelEmail, input.OffersEmail},
		{entity.CategoryOffers, entity.ChannelSMS, input.OffersSMS},
		{entity.CategoryOrderUpdates, entity.ChannelPush, input.OrderUpdatesPush},
		{entity.CategoryOrderUpdates, entity.ChannelEmail, input.OrderUpdatesEmail},
		{entity.CategoryOrderUpdates, entity.ChannelSMS, input.OrderUpdatesSMS},
		{entity.CategoryNewsletter, entity.ChannelPush, input.NewsletterPush},
		{entity.CategoryNewsletter, entity.ChannelEmail, input.NewsletterEmail},
		{entity.CategoryNewsletter, entity.ChannelSMS, input.NewsletterSMS},
	}
	for _, c := range channels {
		if c.value != nil {
			pref.Set(c.category, c.channel, *c.value)
		}
	}
}
