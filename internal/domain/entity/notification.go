package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogStatusSuccess is the status written by campaign and newsletter fan-outs.
const LogStatusSuccess = "success"

// SourceKind names the entity type a log row references.
type SourceKind string

const (
	SourceCampaign SourceKind = "campaign"
	SourceArticle  SourceKind = "newsletter_article"
	SourceOrder    SourceKind = "order"
)

// SourceRef identifies the single entity that triggered a delivery.
type SourceRef struct {
	Kind SourceKind
	ID   uuid.UUID
}

// CampaignSource references a campaign.
func CampaignSource(id uuid.UUID) SourceRef { return SourceRef{Kind: SourceCampaign, ID: id} }

// ArticleSource references a newsletter article.
func ArticleSource(id uuid.UUID) SourceRef { return SourceRef{Kind: SourceArticle, ID: id} }

// OrderSource references an order.
func OrderSource(id uuid.UUID) SourceRef { return SourceRef{Kind: SourceOrder, ID: id} }

// NotificationLog is an append-only delivery fact. Exactly one of
// CampaignID, NewsletterArticleID and OrderID is set.
type NotificationLog struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Channel             Channel
	Status              string
	SentAt              time.Time
	CampaignID          *uuid.UUID
	NewsletterArticleID *uuid.UUID
	OrderID             *uuid.UUID

	User *User // recipient, loaded only when LogFilter.WithUser is set
}

// NewNotificationLog builds a row for pair tagged with source.
func NewNotificationLog(source SourceRef, pair Recipient, status string, at time.Time) *NotificationLog {
	log := &NotificationLog{
		ID:      uuid.New(),
		UserID:  pair.UserID,
		Channel: pair.Channel,
		Status:  status,
		SentAt:  at,
	}

	id := source.ID
	switch source.Kind {
	case SourceCampaign:
		log.CampaignID = &id
	case SourceArticle:
		log.NewsletterArticleID = &id
	case SourceOrder:
		log.OrderID = &id
	}

	return log
}

// Source returns the reference this row was written for.
func (l *NotificationLog) Source() (SourceRef, bool) {
	switch {
	case l.CampaignID != nil && l.NewsletterArticleID == nil && l.OrderID == nil:
		return CampaignSource(*l.CampaignID), true
	case l.NewsletterArticleID != nil && l.CampaignID == nil && l.OrderID == nil:
		return ArticleSource(*l.NewsletterArticleID), true
	case l.OrderID != nil && l.CampaignID == nil && l.NewsletterArticleID == nil:
		return OrderSource(*l.OrderID), true
	default:
		return SourceRef{}, false
	}
}

// LogFilter narrows a notification history query.
type LogFilter struct {
	UserID    *uuid.UUID // only rows delivered to this user
	CreatorID *uuid.UUID // only rows for campaigns created by this user
	ArticleID *uuid.UUID // only rows of this newsletter article
	Status    string
	Category  Category // campaign notification type
	Search    string   // substring of user name, user email or campaign name
	City      string   // substring of the recipient's city
	Role      Role     // recipient role
	From      *time.Time
	To        *time.Time
	Offset    int
	Limit     int
	WithUser  bool // load NotificationLog.User
}

// NotificationStats counts a user's successful deliveries by campaign type.
type NotificationStats struct {
	Total     int64
	Breakdown map[Category]int64
}

// PageMeta describes a clamped page of results.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasPrev    bool  `json:"hasPrev"`
	HasNext    bool  `json:"hasNext"`
}
