package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CampaignModel mirrors the 'campaigns' table. city_filters is a text[]; an
// empty or NULL array targets every city.
type CampaignModel struct {
	ID               uuid.UUID      `gorm:"column:campaign_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string         `gorm:"column:campaign_name;type:varchar(200);not null"`
	Message          string         `gorm:"type:text;not null"`
	ImageURL         *string        `gorm:"column:image_url;type:text"`
	NotificationType string         `gorm:"type:varchar(20);not null;index"`
	CityFilters      pq.StringArray `gorm:"type:text[]"`
	Status           string         `gorm:"type:varchar(20);not null;default:'draft';index:idx_campaigns_status_scheduled_at,priority:1"`
	ScheduledAt      *time.Time     `gorm:"index:idx_campaigns_status_scheduled_at,priority:2"`
	CreatedBy        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
