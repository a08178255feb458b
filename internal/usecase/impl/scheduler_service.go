package impl

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	claimTransition = repository.StatusTransition{
		From: []entity.CampaignStatus{entity.CampaignStatusScheduled},
		To:   entity.CampaignStatusSending,
	}
	// retried on the next tick
	revertToScheduled = repository.StatusTransition{
		From: []entity.CampaignStatus{entity.CampaignStatusSending},
		To:   entity.CampaignStatusScheduled,
	}
	// nobody to deliver to; the creator can edit and reschedule
	revertToDraft = repository.StatusTransition{
		From:          []entity.CampaignStatus{entity.CampaignStatusSending},
		To:            entity.CampaignStatusDraft,
		ClearSchedule: true,
	}
)

type schedulerService struct {
	campaignRepo    repository.CampaignRepository
	delivery        usecase.CampaignDeliveryUsecase
	batchSize       int
	deliveryTimeout time.Duration
	logger          *slog.Logger
}

// SchedulerServiceParams holds dependencies for SchedulerService, injected by Fx.
type SchedulerServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	Delivery     usecase.CampaignDeliveryUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSchedulerService creates the due-campaign scheduler.
func NewSchedulerService(params SchedulerServiceParams) usecase.SchedulerUsecase {
	srv := &schedulerService{
		campaignRepo: params.CampaignRepo,
		delivery:     params.Delivery,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Scheduler != nil {
		srv.batchSize = params.Config.Scheduler.BatchSize
		srv.deliveryTimeout = params.Config.Scheduler.DeliveryTimeout
	}

	return srv
}

func (s *schedulerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RunOnce claims each due campaign with a conditional scheduled->sending write
// and delivers only the campaigns it claimed.
func (s *schedulerService) RunOnce(ctx context.Context) (*entity.SchedulerReport, error) {
	due, err := s.campaignRepo.FindDueScheduled(ctx, time.Now(), s.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find due campaigns")
	}

	report := &entity.SchedulerReport{Due: len(due)}
	for _, campaign := range due {
		if ctx.Err() != nil {
			break
		}

		s.process(ctx, campaign.ID, report)
	}

	if report.Due > 0 {
		s.log(ctx).Info("Scheduler tick finished",
			slog.Int("due", report.Due),
			slog.Int("claimed", report.Claimed),
			slog.Int("skipped", report.Skipped),
			slog.Int("sent", report.Sent),
			slog.Int("unlocked", report.Unlocked),
			slog.Int("failed", report.Failed),
		)
	}

	return report, nil
}

func (s *schedulerService) process(ctx context.Context, campaignID uuid.UUID, report *entity.SchedulerReport) {
	logger := s.log(ctx).With(slog.String("campaign_id", campaignID.String()))

	claimed, err := s.campaignRepo.TransitionStatus(ctx, campaignID, claimTransition)
	if err != nil {
		logger.Error("Failed to claim scheduled campaign", slog.Any("error", err))

		return
	}

	if !claimed {
		report.Skipped++

		return
	}
	report.Claimed++

	deliverCtx, cancel := s.deliveryContext(ctx)
	result, err := s.delivery.DeliverNow(deliverCtx, campaignID, []entity.CampaignStatus{entity.CampaignStatusSending})
	cancel()

	switch {
	case err != nil:
		logger.Error("Scheduled campaign delivery failed", slog.Any("error", err))
		s.revert(ctx, logger, campaignID, revertToScheduled)
		report.Failed++
	case result.Recipients == 0:
		logger.Info("Scheduled campaign has no recipients, returning to draft")
		s.revert(ctx, logger, campaignID, revertToDraft)
		report.Unlocked++
	default:
		report.Sent++
	}
}

// revert must run even when the tick was cancelled, or the campaign would stay
// in sending forever.
func (s *schedulerService) revert(ctx context.Context, logger *slog.Logger, campaignID uuid.UUID, t repository.StatusTransition) {
	reverted, err := s.campaignRepo.TransitionStatus(context.WithoutCancel(ctx), campaignID, t)
	if err != nil {
		logger.Error("Failed to release claimed campaign",
			slog.String("to", string(t.To)),
			slog.Any("error", err),
		)

		return
	}

	if !reverted {
		logger.Warn("Claimed campaign was no longer sending", slog.String("to", string(t.To)))
	}
}

func (s *schedulerService) deliveryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.deliveryTimeout > 0 {
		return context.WithTimeout(ctx, s.deliveryTimeout)
	}

	return context.WithCancel(ctx)
}
