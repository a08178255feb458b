package service

import (
	"context"
	"time"
)

// Delivery event types.
const (
	EventCampaignDelivered = "campaign.delivered"
	EventArticlePublished  = "newsletter_article.published"
	EventOrderStatusLogged = "order.status_logged"
	EventSchedulerTick     = "scheduler.tick"
)

// DeliveryEvent announces a committed fan-out to downstream consumers
type DeliveryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	SourceID   string    `json:"source_id"`
	Recipients int       `json:"recipients"`
	LogCount   int       `json:"log_count"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery event. Callers treat failures as non-fatal.
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
