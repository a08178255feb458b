package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "relay/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestID(t *testing.T) {
	tooLong := string(make([]byte, maxRequestIDLength+1))

	tests := []struct {
		name   string
		header string
		trace  string
		want   string
	}{
		{name: "client header wins", header: "abc-123", trace: "trace/1;o=1", want: "abc-123"},
		{name: "trace fallback", trace: "105445aa7843bc8bf206b12000100000/1;o=1", want: "105445aa7843bc8bf206b12000100000"},
		{name: "oversized header falls through", header: tooLong, trace: "t-1/2", want: "t-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRequestID(tt.header, tt.trace))
		})
	}

	_, err := uuid.Parse(resolveRequestID("", ""))
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-7", seen)
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
