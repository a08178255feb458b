// Package recipient computes who receives a delivery and on which channels.
package recipient

import (
	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// Resolve filters candidates against criteria and emits one pair per enabled channel.
//
// A candidate survives when it is active, when its city is in criteria.Cities
// (skipped if the list is empty) and, for newsletter-scoped criteria, when it is
// subscribed. City matching is exact and case-sensitive. Output order follows
// candidate order, then push, email, sms. Resolve has no side effects.
func Resolve(candidates []entity.RecipientCandidate, criteria entity.RecipientCriteria) []entity.Recipient {
	pairs := make([]entity.Recipient, 0, len(candidates))
	for _, candidate := range candidates {
		if !eligible(candidate, criteria) {
			continue
		}

		for _, channel := range candidate.User.Preference.Channels(criteria.Category) {
			pairs = append(pairs, entity.Recipient{UserID: candidate.User.ID, Channel: channel})
		}
	}

	return pairs
}

// CountUsers returns the number of distinct users in pairs.
func CountUsers(pairs []entity.Recipient) int {
	seen := make(map[uuid.UUID]struct{}, len(pairs))
	for _, pair := range pairs {
		seen[pair.UserID] = struct{}{}
	}

	return len(seen)
}

func eligible(candidate entity.RecipientCandidate, criteria entity.RecipientCriteria) bool {
	user := candidate.User
	if user == nil || !user.IsActive {
		return false
	}

	if len(criteria.Cities) > 0 && !user.InCity(criteria.Cities) {
		return false
	}

	if criteria.NewsletterID != nil && !candidate.Subscribed {
		return false
	}

	return true
}
