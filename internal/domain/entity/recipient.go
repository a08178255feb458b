package entity

import "github.com/google/uuid"

// Recipient is a (user, channel) pair, the unit of delivery.
type Recipient struct {
	UserID  uuid.UUID
	Channel Channel
}

// RecipientCriteria scopes recipient resolution.
type RecipientCriteria struct {
	Category Category
	// Cities is the allow-list; nil or empty means all cities.
	Cities []string
	// NewsletterID, when set, requires a subscription to that category.
	NewsletterID *uuid.UUID
}

// RecipientCandidate is a user as seen by the resolver.
type RecipientCandidate struct {
	User       *User
	Subscribed bool // meaningful only when the criteria carry a NewsletterID
}
