package entity

// Category is a notification topic; it selects which preference flags apply.
type Category string

const (
	CategoryOffers       Category = "offers"
	CategoryOrderUpdates Category = "order_updates"
	CategoryNewsletter   Category = "newsletter"
)

// AllCategories lists the fixed topics.
//
//nolint:gochecknoglobals
var AllCategories = []Category{CategoryOffers, CategoryOrderUpdates, CategoryNewsletter}

// IsValid checks if the Category is one of the fixed topics.
func (c Category) IsValid() bool {
	switch c {
	case CategoryOffers, CategoryOrderUpdates, CategoryNewsletter:
		return true
	default:
		return false
	}
}

// Channel is a delivery medium, toggleable per category per user.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// AllChannels lists channels in fan-out order.
//
//nolint:gochecknoglobals
var AllChannels = []Channel{ChannelPush, ChannelEmail, ChannelSMS}

// IsValid checks if the Channel is a known medium.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelPush, ChannelEmail, ChannelSMS:
		return true
	default:
		return false
	}
}
