package handler

import (
	"net/http"
	"strings"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/domain/entity"
	"relay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification history handlers
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListMyNotifications handles a user reading the notifications delivered to them.
func (h *NotificationHandler) ListMyNotifications(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	query, err := parseLogQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	logs, err := h.uc.ListMyNotifications(c.Request().Context(), actor, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(logs, toNotificationLogResponse), "")
}

// ListLogs handles operators browsing the delivery log.
func (h *NotificationHandler) ListLogs(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	query, err := parseLogQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	logs, err := h.uc.ListLogs(c.Request().Context(), actor, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(logs, toNotificationLogResponse), "")
}

// MyStats handles a user reading counts of the notifications delivered to them.
func (h *NotificationHandler) MyStats(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.uc.MyStats(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNotificationStatsResponse(stats), "")
}

// parseLogQuery reads page, limit, q, status, type, from and to.
func parseLogQuery(c echo.Context) (usecase.LogQuery, error) {
	page, limit := parsePaging(c)

	query := usecase.LogQuery{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(c.QueryParam("q")),
		Status: allAsEmpty(c.QueryParam("status")),
	}

	if category := allAsEmpty(c.QueryParam("type")); category != "" {
		query.Category = entity.Category(category)
		if !query.Category.IsValid() {
			return usecase.LogQuery{}, errors.Errorf("unknown notification type '%s'", category)
		}
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return usecase.LogQuery{}, err
	}
	query.From = from
	query.To = to

	return query, nil
}
