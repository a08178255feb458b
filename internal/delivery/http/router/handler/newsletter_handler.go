package handler

import (
	"net/http"
	"strings"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/domain/entity"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NewsletterHandler holds dependencies for newsletter-related handlers.
type NewsletterHandler struct {
	uc usecase.NewsletterUsecase
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

// CreateCategoryRequest represents the request body for creating a newsletter category
type CreateCategoryRequest struct {
	Title            string  `json:"title" validate:"required,max=200"`
	ShortDescription string  `json:"short_description" validate:"max=500"`
	CoverImageURL    *string `json:"cover_image_url" validate:"omitempty,url"`
}

// UpdateCategoryRequest represents a partial category edit; a blank cover_image_url clears it
type UpdateCategoryRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=200"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	CoverImageURL    *string `json:"cover_image_url" validate:"omitempty,url"`
}

// ArticleRequest represents the request body for creating or editing an article
type ArticleRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// CreateCategory handles creating a newsletter category.
func (h *NewsletterHandler) CreateCategory(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), actor, usecase.CategoryInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		CoverImageURL:    req.CoverImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category), "Newsletter category created successfully")
}

// UpdateCategory handles editing a newsletter category.
func (h *NewsletterHandler) UpdateCategory(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	newsletterID, err := uuid.Parse(c.Param("newsletterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid newsletter ID")
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), actor, newsletterID, usecase.CategoryUpdate{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		CoverImageURL:    req.CoverImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category), "Newsletter category updated successfully")
}

// ListCategories handles listing newsletter categories with pagination.
func (h *NewsletterHandler) ListCategories(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, limit := parsePaging(c)

	categories, err := h.uc.ListCategories(c.Request().Context(), actor, usecase.CategoryQuery{
		Page:    page,
		Limit:   limit,
		Search:  strings.TrimSpace(c.QueryParam("q")),
		Creator: strings.TrimSpace(c.QueryParam("creator")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	mapper := categorySummaryMapper(actor.Role == entity.RoleUser)

	return response.Success(c, http.StatusOK, toPageResponse(categories, mapper), "")
}

// ListArticles handles listing the articles of a category with pagination.
func (h *NewsletterHandler) ListArticles(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	newsletterID, err := uuid.Parse(c.Param("newsletterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid newsletter ID")
	}

	page, limit := parsePaging(c)

	articles, err := h.uc.ListArticles(c.Request().Context(), actor, newsletterID, usecase.ArticleQuery{
		Page:   page,
		Limit:  limit,
		Status: entity.ArticleStatus(allAsEmpty(c.QueryParam("status"))),
		Search: strings.TrimSpace(c.QueryParam("q")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(articles, toArticleResponse), "")
}

// ArticleRecipients handles previewing or reviewing who an article reaches.
func (h *NewsletterHandler) ArticleRecipients(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	articleID, err := uuid.Parse(c.Param("articleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	role := entity.Role(allAsEmpty(c.QueryParam("role")))
	if role != "" && !role.IsValid() {
		return response.BadRequest(c, "INVALID_QUERY", "unknown role '"+string(role)+"'")
	}

	page, limit := parsePaging(c)

	recipients, err := h.uc.ArticleRecipients(c.Request().Context(), actor, articleID, usecase.RecipientQuery{
		Page:   page,
		Limit:  limit,
		Status: allAsEmpty(c.QueryParam("status")),
		City:   strings.TrimSpace(c.QueryParam("city")),
		Role:   role,
		Search: strings.TrimSpace(c.QueryParam("q")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toArticleRecipientsResponse(recipients), "")
}

// ListMySubscriptions handles a user reading their newsletter subscriptions.
func (h *NewsletterHandler) ListMySubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subscriptions, err := h.uc.ListMySubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]SubscriptionResponse, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		items = append(items, toSubscriptionResponse(subscription))
	}

	return response.Success(c, http.StatusOK, map[string]any{"items": items}, "")
}

// CreateArticle handles creating a draft article in a category.
func (h *NewsletterHandler) CreateArticle(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	newsletterID, err := uuid.Parse(c.Param("newsletterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid newsletter ID")
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), actor, newsletterID, usecase.ArticleInput{
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toArticleResponse(article), "Article created successfully")
}

// UpdateArticle handles editing a draft article.
func (h *NewsletterHandler) UpdateArticle(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	articleID, err := uuid.Parse(c.Param("articleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), actor, articleID, usecase.ArticleInput{
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toArticleResponse(article), "Article updated successfully")
}

// PublishArticle handles delivering a draft article to its subscribers.
func (h *NewsletterHandler) PublishArticle(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	articleID, err := uuid.Parse(c.Param("articleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	result, err := h.uc.PublishArticle(c.Request().Context(), actor, articleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Article published successfully"
	if result.Recipients == 0 {
		message = "No eligible subscribers; article left as draft"
	}

	return response.Success(c, http.StatusOK, result, message)
}

// Subscribe handles subscribing the caller to a newsletter.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	newsletterID, err := uuid.Parse(c.Param("newsletterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid newsletter ID")
	}

	subscription, err := h.uc.Subscribe(c.Request().Context(), userID, newsletterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(subscription), "Subscribed successfully")
}

// Unsubscribe handles removing the caller's newsletter subscription.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	newsletterID, err := uuid.Parse(c.Param("newsletterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid newsletter ID")
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), userID, newsletterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"newsletter_id": newsletterID.String()}, "Unsubscribed successfully")
}
