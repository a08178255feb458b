package service

import (
	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity carried by a validated access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService validates access tokens issued by the identity provider.
// GenerateAccessToken exists for tooling and tests; issuance is not exposed over HTTP.
type TokenService interface {
	// GenerateAccessToken signs an access token for userID with role.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken parses and verifies tokenString.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
