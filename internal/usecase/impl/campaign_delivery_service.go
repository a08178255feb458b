package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/recipient"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type campaignDeliveryService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CampaignDeliveryServiceParams holds dependencies for CampaignDeliveryService, injected by Fx.
type CampaignDeliveryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCampaignDeliveryService creates the campaign fan-out service.
func NewCampaignDeliveryService(params CampaignDeliveryServiceParams) usecase.CampaignDeliveryUsecase {
	return &campaignDeliveryService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (s *campaignDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DeliverNow reads the campaign, resolves recipients, then writes the status
// change and the log rows, all in one transaction. Reading inside the
// transaction keeps the status check on the primary, where a scheduler claim
// made a moment earlier is already visible. The status change is conditional
// on the campaign still being in allowed, so two concurrent callers cannot
// both deliver.
func (s *campaignDeliveryService) DeliverNow(
	ctx context.Context,
	campaignID uuid.UUID,
	allowed []entity.CampaignStatus,
) (*entity.DeliveryResult, error) {
	result := &entity.DeliveryResult{}
	sentAt := time.Now()

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campaignRepo := repoFactory.NewCampaignRepository()

		campaign, err := campaignRepo.FindByID(ctx, campaignID)
		if err != nil {
			if errors.Is(err, repository.ErrCampaignNotFound) {
				return domainerrors.ErrCampaignNotFound.WrapMessage("failed to deliver campaign")
			}

			return errors.Wrap(err, "failed to find campaign for delivery")
		}

		if !campaign.Status.In(allowed) {
			return domainerrors.ErrCampaignNotDeliverable.WrapMessage("campaign status is " + string(campaign.Status))
		}

		criteria := entity.RecipientCriteria{
			Category: campaign.NotificationType,
			Cities:   campaign.CityFilters,
		}

		candidates, err := repoFactory.NewUserRepository().FindRecipientCandidates(ctx, criteria)
		if err != nil {
			return errors.Wrap(err, "failed to find campaign recipients")
		}

		pairs := recipient.Resolve(candidates, criteria)
		if len(pairs) == 0 {
			s.log(ctx).Info("Campaign has no eligible recipients",
				slog.String("campaign_id", campaignID.String()),
				slog.String("status", string(campaign.Status)),
			)

			return nil
		}

		transitioned, err := campaignRepo.TransitionStatus(ctx, campaignID, repository.StatusTransition{
			From:          allowed,
			To:            entity.CampaignStatusSent,
			ClearSchedule: true,
		})
		if err != nil {
			return errors.Wrap(err, "failed to mark campaign sent")
		}

		if !transitioned {
			return domainerrors.ErrCampaignNotDeliverable.WrapMessage("campaign status changed during delivery")
		}

		written, err := appendDeliveryLogs(ctx, repoFactory.NewNotificationRepository(), entity.CampaignSource(campaignID), pairs, entity.LogStatusSuccess, sentAt)
		if err != nil {
			return err
		}

		result.Recipients = recipient.CountUsers(pairs)
		result.LogCount = written

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrCampaignNotFound) || errors.Is(err, domainerrors.ErrCampaignNotDeliverable) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute campaign delivery transaction")
	}

	if result.Recipients == 0 {
		return result, nil
	}

	s.log(ctx).Info("Campaign delivered",
		slog.String("campaign_id", campaignID.String()),
		slog.Int("recipients", result.Recipients),
		slog.Int("log_count", result.LogCount),
	)

	publishDeliveryEvent(ctx, s.publisher, s.log(ctx), &service.DeliveryEvent{
		Type:       service.EventCampaignDelivered,
		SourceID:   campaignID.String(),
		Recipients: result.Recipients,
		LogCount:   result.LogCount,
		Status:     entity.LogStatusSuccess,
		OccurredAt: sentAt,
	})

	return result, nil
}
