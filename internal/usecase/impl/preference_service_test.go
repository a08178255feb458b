package impl

import (
	"context"
	"testing"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (usecase.PreferenceUsecase, *mockRepo.MockPreferenceRepository) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)

	svc := NewPreferenceService(PreferenceServiceParams{
		PreferenceRepo: prefRepo,
		Logger:         newDiscardLogger(),
	})

	return svc, prefRepo
}

func TestPreferenceService_GetPreferences_NotFound(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)

	_, err := svc.GetPreferences(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrPreferenceNotFound)
}

func TestPreferenceService_UpdatePreferences_ForbiddenForOtherUser(t *testing.T) {
	svc, _ := createTestPreferenceService(t)

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	_, err := svc.UpdatePreferences(context.Background(), actor, uuid.New(), usecase.PreferenceInput{Offers: boolPtr(true)})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPreferenceService_UpdatePreferences_CreatesRowLazily(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}

	prefRepo.EXPECT().FindByUserID(ctx, actor.UserID).Return(nil, repository.ErrPreferenceNotFound)
	prefRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.Preference) bool {
			return p.UserID == actor.UserID && !p.CreatedAt.IsZero()
		})).
		Return(nil)

	pref, err := svc.UpdatePreferences(ctx, actor, actor.UserID, usecase.PreferenceInput{NewsletterEmail: boolPtr(true)})

	require.NoError(t, err)
	assert.True(t, pref.NewsletterEmail)
	assert.True(t, pref.Newsletter)
	assert.False(t, pref.Offers)
}

func TestPreferenceService_UpdatePreferences_ChannelFlagsOverrideLegacy(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}
	existing := entity.NewPreference(actor.UserID)

	prefRepo.EXPECT().FindByUserID(ctx, actor.UserID).Return(existing, nil)
	prefRepo.EXPECT().Upsert(ctx, existing).Return(nil)

	pref, err := svc.UpdatePreferences(ctx, actor, actor.UserID, usecase.PreferenceInput{
		Offers:       boolPtr(true),
		OffersSMS:    boolPtr(false),
		OrderUpdates: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.Channel{entity.ChannelPush, entity.ChannelEmail}, pref.Channels(entity.CategoryOffers))
	assert.True(t, pref.Offers)
	assert.Empty(t, pref.Channels(entity.CategoryOrderUpdates))
	assert.False(t, pref.OrderUpdates)
}

func TestPreferenceService_UpdatePreferences_DisablingLastChannelClearsLegacy(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}
	existing := &entity.Preference{UserID: actor.UserID, OffersPush: true, Offers: true}

	prefRepo.EXPECT().FindByUserID(ctx, actor.UserID).Return(existing, nil)
	prefRepo.EXPECT().Upsert(ctx, existing).Return(nil)

	pref, err := svc.UpdatePreferences(ctx, actor, actor.UserID, usecase.PreferenceInput{OffersPush: boolPtr(false)})

	require.NoError(t, err)
	assert.False(t, pref.Offers)
}
