package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preference holds a user's per-category, per-channel opt-ins.
// The three legacy flags must always equal the OR of their category's channels;
// call SyncLegacy after any channel write.
type Preference struct {
	UserID uuid.UUID

	OffersPush  bool
	OffersEmail bool
	OffersSMS   bool

	OrderUpdatesPush  bool
	OrderUpdatesEmail bool
	OrderUpdatesSMS   bool

	NewsletterPush  bool
	NewsletterEmail bool
	NewsletterSMS   bool

	// Legacy aggregates kept for older clients.
	Offers       bool
	OrderUpdates bool
	Newsletter   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPreference returns an all-disabled preference row for userID.
func NewPreference(userID uuid.UUID) *Preference {
	return &Preference{UserID: userID}
}

// Enabled reports whether channel is enabled for category.
func (p *Preference) Enabled(category Category, channel Channel) bool {
	if p == nil {
		return false
	}

	if flag := p.flag(category, channel); flag != nil {
		return *flag
	}

	return false
}

// Channels returns the enabled channels for category in push, email, sms order.
func (p *Preference) Channels(category Category) []Channel {
	if p == nil {
		return nil
	}

	channels := make([]Channel, 0, len(AllChannels))
	for _, channel := range AllChannels {
		if p.Enabled(category, channel) {
			channels = append(channels, channel)
		}
	}

	return channels
}

// Set toggles a single channel flag. Unknown category/channel pairs are ignored.
func (p *Preference) Set(category Category, channel Channel, enabled bool) {
	if flag := p.flag(category, channel); flag != nil {
		*flag = enabled
	}
}

// ApplyLegacy expands a coarse-grained category flag onto all three channels.
func (p *Preference) ApplyLegacy(category Category, enabled bool) {
	for _, channel := range AllChannels {
		p.Set(category, channel, enabled)
	}
}

// SyncLegacy recomputes the legacy aggregates from the channel flags.
func (p *Preference) SyncLegacy() {
	p.Offers = p.OffersPush || p.OffersEmail || p.OffersSMS
	p.OrderUpdates = p.OrderUpdatesPush || p.OrderUpdatesEmail || p.OrderUpdatesSMS
	p.Newsletter = p.NewsletterPush || p.NewsletterEmail || p.NewsletterSMS
}

func (p *Preference) flag(category Category, channel Channel) *bool {
	switch category {
	case CategoryOffers:
		switch channel {
		case ChannelPush:
			return &p.OffersPush
		case ChannelEmail:
			return &p.OffersEmail
		case ChannelSMS:
			return &p.OffersSMS
		}
	case CategoryOrderUpdates:
		switch channel {
		case ChannelPush:
			return &p.OrderUpdatesPush
		case ChannelEmail:
			return &p.OrderUpdatesEmail
		case ChannelSMS:
			return &p.OrderUpdatesSMS
		}
	case CategoryNewsletter:
		switch channel {
		case ChannelPush:
			return &p.NewsletterPush
		case ChannelEmail:
			return &p.NewsletterEmail
		case ChannelSMS:
			return &p.NewsletterSMS
		}
	}

	return nil
}
