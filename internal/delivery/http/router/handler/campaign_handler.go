package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/domain/entity"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CampaignHandler holds dependencies for campaign-related handlers.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	Name             string   `json:"campaign_name" validate:"required,max=200"`
	Message          string   `json:"campaign_message" validate:"required"`
	ImageURL         *string  `json:"image_url" validate:"omitempty,url"`
	NotificationType string   `json:"notification_type" validate:"required,oneof=offers order_updates newsletter"`
	CityFilters      []string `json:"city_filters" validate:"omitempty,dive,omitempty,city"`
}

// UpdateCampaignRequest represents a partial campaign edit. An explicit empty
// city_filters list clears the filters; an omitted one leaves them unchanged.
type UpdateCampaignRequest struct {
	Name        *string   `json:"campaign_name" validate:"omitempty,max=200"`
	Message     *string   `json:"campaign_message"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
	CityFilters *[]string `json:"city_filters" validate:"omitempty,dive,omitempty,city"`
}

// ScheduleCampaignRequest represents the request body for scheduling a campaign
type ScheduleCampaignRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at" validate:"required"`
}

// SendCampaignRequest represents the request body for sending a campaign now
type SendCampaignRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
}

// CreateCampaign handles creating a draft campaign.
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), actor, usecase.CampaignInput{
		Name:             req.Name,
		Message:          req.Message,
		ImageURL:         req.ImageURL,
		NotificationType: entity.Category(req.NotificationType),
		CityFilters:      req.CityFilters,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCampaignResponse(campaign), "Campaign created successfully")
}

// ListCampaigns handles listing campaigns with pagination.
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, limit := parsePaging(c)

	campaigns, err := h.uc.ListCampaigns(c.Request().Context(), actor, usecase.CampaignQuery{
		Page:    page,
		Limit:   limit,
		Status:  entity.CampaignStatus(allAsEmpty(c.QueryParam("status"))),
		Type:    entity.Category(allAsEmpty(c.QueryParam("type"))),
		Search:  strings.TrimSpace(c.QueryParam("q")),
		City:    strings.TrimSpace(c.QueryParam("city")),
		Creator: strings.TrimSpace(c.QueryParam("creator")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(campaigns, toCampaignResponse), "")
}

// UpdateCampaign handles editing a draft campaign.
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	campaign, err := h.uc.UpdateCampaign(c.Request().Context(), actor, campaignID, usecase.CampaignUpdate{
		Name:        req.Name,
		Message:     req.Message,
		ImageURL:    req.ImageURL,
		CityFilters: req.CityFilters,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCampaignResponse(campaign), "Campaign updated successfully")
}

// ScheduleCampaign handles scheduling a draft campaign for later delivery.
func (h *CampaignHandler) ScheduleCampaign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req ScheduleCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	campaign, err := h.uc.ScheduleCampaign(c.Request().Context(), actor, campaignID, *req.ScheduledAt)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCampaignResponse(campaign), "Campaign scheduled successfully")
}

// UnscheduleCampaign handles returning a scheduled campaign to draft.
func (h *CampaignHandler) UnscheduleCampaign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	campaign, err := h.uc.UnscheduleCampaign(c.Request().Context(), actor, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCampaignResponse(campaign), "Campaign unscheduled successfully")
}

// SendCampaign handles immediate delivery of a draft campaign.
func (h *CampaignHandler) SendCampaign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.uc.SendCampaign(c.Request().Context(), actor, req.CampaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Campaign sent successfully"
	if result.Recipients == 0 {
		message = "No eligible recipients; campaign left as draft"
	}

	h.logger.InfoContext(c.Request().Context(), "Campaign send requested",
		slog.String("campaign_id", req.CampaignID.String()),
		slog.Int("recipients", result.Recipients),
		slog.Int("log_count", result.LogCount),
	)

	return response.Success(c, http.StatusOK, result, message)
}
