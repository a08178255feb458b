// Package scheduler triggers scheduler ticks from an in-process cron.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"relay/config"
	"relay/internal/delivery"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/lifecycle"
	"relay/internal/errors"
	"relay/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type cronTrigger struct {
	enabled   bool
	spec      string
	cron      *cron.Cron
	scheduler usecase.SchedulerUsecase
	logger    *slog.Logger

	once   sync.Once
	ctx    context.Context
	cancel context.CancelFunc
}

// CronParams holds dependencies for the cron trigger, injected by Fx.
type CronParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Scheduler usecase.SchedulerUsecase
}

// NewCronTrigger registers the scheduler tick on scheduler.spec. When
// scheduler.enabled is false the trigger is inert and Serve returns immediately.
func NewCronTrigger(params CronParams) (delivery.Delivery, error) {
	t := &cronTrigger{
		scheduler: params.Scheduler,
		logger:    params.Logger.With(slog.String("component", "cron")),
	}
	t.ctx, t.cancel = context.WithCancel(context.Background())

	if params.Cfg.Scheduler != nil {
		t.enabled = params.Cfg.Scheduler.Enabled
		t.spec = params.Cfg.Scheduler.Spec
	}

	if !t.enabled {
		return t, nil
	}

	cronLog := &slogCronLogger{logger: t.logger}
	t.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := t.cron.AddFunc(t.spec, t.tick); err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler spec %q", t.spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: t.stop,
	})

	return t, nil
}

// Serve starts the cron. Repeated calls do not register a second schedule.
func (t *cronTrigger) Serve(ctx context.Context) error {
	if !t.enabled {
		t.logger.Info("In-process scheduler disabled")

		return nil
	}

	t.once.Do(func() {
		t.logger.Info("Starting in-process scheduler", slog.String("spec", t.spec))
		t.cron.Start()
	})

	return nil
}

func (t *cronTrigger) tick() {
	ctx, tickLogger := deliverycontext.NewTickContext(t.ctx, t.logger, "cron")

	report, err := t.scheduler.RunOnce(ctx)
	if err != nil {
		tickLogger.Error("Scheduler tick failed", slog.Any("error", err))

		return
	}

	tickLogger.Info("Scheduler tick completed",
		slog.Int("due", report.Due),
		slog.Int("claimed", report.Claimed),
		slog.Int("skipped", report.Skipped),
		slog.Int("sent", report.Sent),
		slog.Int("unlocked", report.Unlocked),
		slog.Int("failed", report.Failed),
	)
}

// stop waits for a running tick, then cancels whatever is still in flight.
func (t *cronTrigger) stop(ctx context.Context) error {
	defer t.cancel()

	t.logger.Info("Stopping in-process scheduler")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-t.cron.Stop().Done():
		return nil
	case <-waitCtx.Done():
		t.logger.Warn("Scheduler tick still running at shutdown; cancelling")

		return nil
	}
}

// slogCronLogger routes robfig/cron's logs to slog.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
