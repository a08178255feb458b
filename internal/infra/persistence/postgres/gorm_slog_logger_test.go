package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func sqlRows() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_UsesTickLoggerFromContext(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx, _ := deliverycontext.NewTickContext(context.Background(), l.base, "cron")

	l.Trace(ctx, time.Now(), sqlRows, errors.New("deadlock detected"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "run_id=")
	assert.Contains(t, buf.String(), "trigger=cron")
}

func TestGormSlogLogger_SkipsRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlRows, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlRows, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlRows, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlRows, nil)
	assert.Contains(t, verboseBuf.String(), "sql=\"SELECT 1\"")
}
