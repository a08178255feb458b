package repository

import (
	"context"
	"errors"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// Campaign persistence errors.
var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCampaignNotEditable = errors.New("campaign is not a draft")
)

// StatusTransition is a compare-and-swap on a campaign's status.
type StatusTransition struct {
	From []entity.CampaignStatus // the transition applies only while status is one of these
	To   entity.CampaignStatus

	ClearSchedule bool       // set scheduled_at to NULL
	ScheduleAt    *time.Time // set scheduled_at; ignored when ClearSchedule is true
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	Status        entity.CampaignStatus
	Type          entity.Category
	CreatedBy     *uuid.UUID
	Search        string // substring of name or message
	City          string // campaigns targeting every city, or this one
	CreatorSearch string // substring of the creator's name or email
	Offset        int
	Limit         int
}

// CampaignRepository defines campaign persistence, including the conditional
// status writes that give schedulers and senders mutual exclusion.
type CampaignRepository interface {
	// FindByID retrieves a campaign by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// Count counts campaigns matching filter, ignoring Offset and Limit.
	Count(ctx context.Context, filter CampaignFilter) (int64, error)

	// List returns campaigns matching filter, newest first.
	List(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, error)

	// Create persists a new campaign.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// UpdateContent rewrites the editable fields of a draft campaign.
	// It returns ErrCampaignNotEditable when the campaign is no longer a draft.
	UpdateContent(ctx context.Context, campaign *entity.Campaign) error

	// FindDueScheduled returns up to limit scheduled campaigns due at or before now,
	// oldest scheduled_at first. It always reads from the primary.
	FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error)

	// TransitionStatus applies t atomically and reports whether a row was changed.
	// A false result means the campaign was missing or not in t.From.
	TransitionStatus(ctx context.Context, id uuid.UUID, t StatusTransition) (bool, error)
}
