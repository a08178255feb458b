package pubsub

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	"relay/internal/domain/constants"
	"relay/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	p.logger.DebugContext(ctx, "Delivery event dropped, no pubsub provider",
		slog.String("event_type", event.Type),
		slog.String("source_id", event.SourceID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// boundedPublisher caps each publish so a stalled broker cannot hold a delivery open.
type boundedPublisher struct {
	service.EventPublisher
	timeout time.Duration
}

func (p *boundedPublisher) PublishDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.EventPublisher.PublishDeliveryEvent(ctx, event)
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for the configured provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, delivery events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Delivery event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.Duration("publish_timeout", cfg.PublishTimeout),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	if cfg.PublishTimeout > 0 {
		publisher = &boundedPublisher{EventPublisher: publisher, timeout: cfg.PublishTimeout}
	}

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// Module provides the delivery event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
