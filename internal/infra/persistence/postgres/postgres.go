package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"relay/config"
	"relay/internal/domain/lifecycle"
	"relay/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// requiredTables must exist before the process serves traffic; migrations are applied out of band.
var requiredTables = []string{
	"users",
	"preferences",
	"campaigns",
	"newsletter_categories",
	"newsletter_articles",
	"newsletter_subscriptions",
	"orders",
	"notification_logs",
}

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and optional replica) connections and ties them to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := verifySchema(ctx, sqlDB); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func verifySchema(ctx context.Context, sqlDB *sql.DB) error {
	for _, table := range requiredTables {
		var found sql.NullString
		if err := sqlDB.QueryRowContext(ctx, "SELECT to_regclass($1)::text", "public."+table).Scan(&found); err != nil {
			return errors.Wrapf(err, "failed to inspect table %s", table)
		}
		if !found.Valid {
			return errors.Errorf("table %s is missing, run the migrations first", table)
		}
	}

	return nil
}

// monitorDBPool reports connection waits so an undersized pool shows up during delivery bursts.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("max_open", cur.MaxOpenConnections),
				slog.Int("open", cur.OpenConnections),
				slog.Int("in_use", cur.InUse),
				slog.Int("idle", cur.Idle),
			)
		}
	}
}
