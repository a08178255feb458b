// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read side of the user directory used by deliveries.
type UserRepository interface {
	// FindByID retrieves a single user with its preference row, if any.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindRecipientCandidates returns active users that may match criteria, ordered by ID,
	// with preferences loaded. The result is a superset filter; callers must still resolve it.
	FindRecipientCandidates(ctx context.Context, criteria entity.RecipientCriteria) ([]entity.RecipientCandidate, error)
}
