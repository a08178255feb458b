package repository

import (
	"context"
	"errors"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferenceNotFound is returned when a user has never written preferences.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository persists per-user channel preferences.
type PreferenceRepository interface {
	// FindByUserID retrieves the preference row for userID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preference, error)

	// Upsert creates or fully replaces the preference row.
	Upsert(ctx context.Context, pref *entity.Preference) error
}
