package usecase

import (
	"context"

	"relay/internal/domain/entity"
)

// SchedulerUsecase runs one claim-and-deliver pass over due campaigns.
// It is safe to call concurrently from several processes.
type SchedulerUsecase interface {
	// RunOnce claims and delivers due campaigns. Per-campaign failures are logged
	// and counted in the report; only a failed due scan is returned as an error.
	RunOnce(ctx context.Context) (*entity.SchedulerReport, error)
}
