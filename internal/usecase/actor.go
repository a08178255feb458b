package usecase

import (
	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor may act on resources owned by others.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Owns reports whether the actor may manage a resource created by ownerID.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}

// ScopedToOwn reports whether listings must be narrowed to resources the actor created.
func (a Actor) ScopedToOwn() bool {
	return a.Role == entity.RoleCreator
}
