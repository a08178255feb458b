package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus is a newsletter article lifecycle state.
type ArticleStatus string

const (
	ArticleStatusDraft ArticleStatus = "draft"
	ArticleStatusSent  ArticleStatus = "sent"
)

// NewsletterCategory is a topic users subscribe to.
type NewsletterCategory struct {
	ID               uuid.UUID
	Title            string
	ShortDescription string
	CoverImageURL    *string
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewsletterArticle is a post within a category. Publishing is one-way draft to sent.
type NewsletterArticle struct {
	ID           uuid.UUID
	NewsletterID uuid.UUID
	Title        string
	Message      string
	Status       ArticleStatus
	PublishedAt  *time.Time
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPublished reports whether the article was already delivered.
func (a *NewsletterArticle) IsPublished() bool {
	return a.Status == ArticleStatusSent
}

// NewsletterSubscription links a user to a category. Its existence is the eligibility gate.
type NewsletterSubscription struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	NewsletterID uuid.UUID
	SubscribedAt time.Time
	Newsletter   *NewsletterCategory // loaded by subscription listings only
}

// CategorySummary is a category row of a listing.
type CategorySummary struct {
	Category     *NewsletterCategory
	ArticleCount int64
	SubscribedAt *time.Time // set when the listing caller is subscribed
}

// IsSubscribed reports whether the listing caller holds a subscription.
func (s *CategorySummary) IsSubscribed() bool {
	return s.SubscribedAt != nil
}

// RecipientPreviewMode tells whether a recipient listing is a forecast or a record.
type RecipientPreviewMode string

const (
	// RecipientPreviewDraft lists who would receive a draft article if it were published now.
	RecipientPreviewDraft RecipientPreviewMode = "draft"
	// RecipientPreviewSent lists the delivery log rows of a published article.
	RecipientPreviewSent RecipientPreviewMode = "sent"
)

// RecipientStatusPending marks a forecast row that has not been delivered.
const RecipientStatusPending = "pending"

// ArticleRecipient is one row of an article recipient listing. In draft mode
// Channels holds every enabled channel of the user; in sent mode it holds the
// single channel of the log row.
type ArticleRecipient struct {
	User     *User
	Channels []Channel
	Status   string
	SentAt   *time.Time
}

// ArticleRecipients is a page of an article's recipients.
type ArticleRecipients struct {
	Article *NewsletterArticle
	Mode    RecipientPreviewMode
	Items   []*ArticleRecipient
	Meta    PageMeta
}
