package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is a campaign lifecycle state.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusSent      CampaignStatus = "sent"
)

// In reports whether s is one of statuses.
func (s CampaignStatus) In(statuses []CampaignStatus) bool {
	return slices.Contains(statuses, s)
}

// Campaign is a marketing message targeted at a category and an optional city allow-list.
type Campaign struct {
	ID               uuid.UUID
	Name             string
	Message          string
	ImageURL         *string
	NotificationType Category
	CityFilters      []string // nil or empty means all cities
	Status           CampaignStatus
	ScheduledAt      *time.Time
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsEditable reports whether the campaign content may still change.
func (c *Campaign) IsEditable() bool {
	return c.Status == CampaignStatusDraft
}

// DeliveryResult is the outcome of a fan-out: distinct users and rows written.
type DeliveryResult struct {
	Recipients int `json:"recipients"`
	LogCount   int `json:"log_count"`
}

// SchedulerReport summarises one scheduler tick.
type SchedulerReport struct {
	Due      int `json:"due"`      // campaigns returned by the due scan
	Claimed  int `json:"claimed"`  // claims that affected a row
	Skipped  int `json:"skipped"`  // claims lost to another instance
	Sent     int `json:"sent"`     // claimed campaigns that reached sent
	Unlocked int `json:"unlocked"` // claimed campaigns returned to draft for lack of recipients
	Failed   int `json:"failed"`   // claimed campaigns reverted to scheduled after an error
}
