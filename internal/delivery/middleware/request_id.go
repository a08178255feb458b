package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "relay/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	headerCloudTrace   = "X-Cloud-Trace-Context"
	maxRequestIDLength = 128
)

// RequestIDMiddleware tags every request with an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request ID, echoes it back and scopes the logger to it.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID), c.Request().Header.Get(headerCloudTrace))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers the client header, then the trace ID of a
// "TRACE_ID/SPAN_ID;o=1" trace header, and mints a UUID otherwise.
func resolveRequestID(header, trace string) string {
	if id := strings.TrimSpace(header); id != "" && len(id) <= maxRequestIDLength {
		return id
	}

	if traceID, _, _ := strings.Cut(trace, "/"); traceID != "" && len(traceID) <= maxRequestIDLength {
		return strings.TrimSpace(traceID)
	}

	return uuid.New().String()
}
