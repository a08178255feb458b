package handler

import (
	"net/http"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PreferenceHandler holds dependencies for preference handlers.
type PreferenceHandler struct {
	uc usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// UpdatePreferencesRequest accepts both the legacy per-category flags and the
// per-channel flags. Omitted fields are left unchanged.
type UpdatePreferencesRequest struct {
	Offers       *bool `json:"offers"`
	OrderUpdates *bool `json:"order_updates"`
	Newsletter   *bool `json:"newsletter"`

	OffersPush        *bool `json:"offers_push"`
	OffersEmail       *bool `json:"offers_email"`
	OffersSMS         *bool `json:"offers_sms"`
	OrderUpdatesPush  *bool `json:"order_updates_push"`
	OrderUpdatesEmail *bool `json:"order_updates_email"`
	OrderUpdatesSMS   *bool `json:"order_updates_sms"`
	NewsletterPush    *bool `json:"newsletter_push"`
	NewsletterEmail   *bool `json:"newsletter_email"`
	NewsletterSMS     *bool `json:"newsletter_sms"`
}

// GetPreferences handles reading a user's notification preferences.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	pref, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPreferenceResponse(pref), "")
}

// UpdatePreferences handles a user writing their own preferences.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	pref, err := h.uc.UpdatePreferences(c.Request().Context(), actor, userID, usecase.PreferenceInput{
		Offers:            req.Offers,
		OrderUpdates:      req.OrderUpdates,
		Newsletter:        req.Newsletter,
		OffersPush:        req.OffersPush,
		OffersEmail:       req.OffersEmail,
		OffersSMS:         req.OffersSMS,
		OrderUpdatesPush:  req.OrderUpdatesPush,
		OrderUpdatesEmail: req.OrderUpdatesEmail,
		OrderUpdatesSMS:   req.OrderUpdatesSMS,
		NewsletterPush:    req.NewsletterPush,
		NewsletterEmail:   req.NewsletterEmail,
		NewsletterSMS:     req.NewsletterSMS,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPreferenceResponse(pref), "Preferences updated successfully")
}
