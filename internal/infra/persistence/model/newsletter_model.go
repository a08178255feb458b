package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterCategoryModel mirrors the 'newsletter_categories' table.
type NewsletterCategoryModel struct {
	ID               uuid.UUID `gorm:"column:newsletter_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	Title            string    `gorm:"type:varchar(200);not null"`
	ShortDescription string    `gorm:"type:text"`
	CoverImageURL    *string   `gorm:"column:cover_image_url;type:text"`
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterCategoryModel) TableName() string {
	return "newsletter_categories"
}

// NewsletterArticleModel mirrors the 'newsletter_articles' table.
type NewsletterArticleModel struct {
	ID           uuid.UUID  `gorm:"column:article_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	NewsletterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Message      string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'draft'"`
	PublishedAt  *time.Time
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterArticleModel) TableName() string {
	return "newsletter_articles"
}

// NewsletterSubscriptionModel mirrors the 'newsletter_subscriptions' table.
// (user_id, newsletter_id) is unique.
type NewsletterSubscriptionModel struct {
	ID           uuid.UUID `gorm:"column:subscription_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_newsletter_subscriptions_user_newsletter"`
	NewsletterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_newsletter_subscriptions_user_newsletter;index"`
	SubscribedAt time.Time `gorm:"not null"`

	Newsletter *NewsletterCategoryModel `gorm:"foreignKey:NewsletterID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
