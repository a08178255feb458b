package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceInput is a versioned preference write. Legacy fields toggle all
// three channels of a category; channel fields are applied afterwards and win.
type PreferenceInput struct {
	// Legacy coarse-grained flags.
	Offers       *bool
	OrderUpdates *bool
	Newsletter   *bool

	// Channel flags.
	OffersPush        *bool
	OffersEmail       *bool
	OffersSMS         *bool
	OrderUpdatesPush  *bool
	OrderUpdatesEmail *bool
	OrderUpdatesSMS   *bool
	NewsletterPush    *bool
	NewsletterEmail   *bool
	NewsletterSMS     *bool
}

// PreferenceUsecase reads and writes notification preferences.
type PreferenceUsecase interface {
	// GetPreferences returns the preference row for userID.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preference, error)

	// UpdatePreferences applies input to userID's preferences, creating the row on first write.
	// Only the user themself may write.
	UpdatePreferences(ctx context.Context, actor Actor, userID uuid.UUID, input PreferenceInput) (*entity.Preference, error)
}
