package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'"`
	City      *string   `gorm:"type:varchar(100);index"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	Preference *PreferenceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PreferenceModel mirrors the 'preferences' table, one row per user.
type PreferenceModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`

	OffersPush  bool `gorm:"not null;default:false"`
	OffersEmail bool `gorm:"not null;default:false"`
	OffersSMS   bool `gorm:"column:offers_sms;not null;default:false"`

	OrderUpdatesPush  bool `gorm:"not null;default:false"`
	OrderUpdatesEmail bool `gorm:"not null;default:false"`
	OrderUpdatesSMS   bool `gorm:"column:order_updates_sms;not null;default:false"`

	NewsletterPush  bool `gorm:"not null;default:false"`
	NewsletterEmail bool `gorm:"not null;default:false"`
	NewsletterSMS   bool `gorm:"column:newsletter_sms;not null;default:false"`

	Offers       bool `gorm:"not null;default:false"`
	OrderUpdates bool `gorm:"not null;default:false"`
	Newsletter   bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "preferences"
}
