// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory entry: identity, activation state and home city.
type User struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email      string      // The user's primary contact email.
	Name       string      // The user's display name.
	Role       Role        // The role used for route gating.
	City       *string     // Home city as stored; nil when unknown.
	IsActive   bool        // Inactive users never receive deliveries.
	Preference *Preference // Nil until the user first writes preferences.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InCity reports whether the user's stored city is exactly one of cities.
// The comparison is case-sensitive; filters are normalized on input, not here.
func (u *User) InCity(cities []string) bool {
	if u.City == nil {
		return false
	}

	for _, city := range cities {
		if city == *u.City {
			return true
		}
	}

	return false
}
