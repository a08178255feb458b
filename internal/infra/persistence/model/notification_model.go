package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// Rows are append-only; exactly one of CampaignID, NewsletterArticleID and OrderID
// is non-null, enforced by the chk_notification_logs_single_source constraint.
type NotificationLogModel struct {
	ID                  uuid.UUID  `gorm:"column:log_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	Channel             string     `gorm:"type:varchar(10);not null"`
	Status              string     `gorm:"type:varchar(30);not null"`
	SentAt              time.Time  `gorm:"not null;index"`
	CampaignID          *uuid.UUID `gorm:"type:uuid;index"`
	NewsletterArticleID *uuid.UUID `gorm:"type:uuid;index"`
	OrderID             *uuid.UUID `gorm:"type:uuid;index"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
