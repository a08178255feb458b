package worker

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/delivery/worker/handler"
	"relay/internal/domain/entity"
	"relay/internal/domain/service"
	"relay/internal/infra/pubsub"
	mockUsecase "relay/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (*echo.Echo, *mockUsecase.MockSchedulerUsecase) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scheduler := mockUsecase.NewMockSchedulerUsecase(t)

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		Scheduler: scheduler,
	})

	return NewEcho(cfg, logger, push), scheduler
}

func TestWorker_Health(t *testing.T) {
	e, _ := newTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorker_PushTickCarriesHeaderRequestID(t *testing.T) {
	e, scheduler := newTestWorker(t)

	scheduler.EXPECT().
		RunOnce(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "edge-1" &&
				deliverycontext.GetRunIDFromContext(ctx) != ""
		})).
		Return(&entity.SchedulerReport{}, nil)

	body, err := pubsub.NewPushMessage(&service.DeliveryEvent{Type: service.EventSchedulerTick})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, pushPath, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(deliverycontext.HeaderXRequestID, "edge-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "edge-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
