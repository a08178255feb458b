// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/router/handler"
	"relay/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CampaignHandler     *handler.CampaignHandler
	NewsletterHandler   *handler.NewsletterHandler
	OrderHandler        *handler.OrderHandler
	PreferenceHandler   *handler.PreferenceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	campaignHandler     *handler.CampaignHandler
	newsletterHandler   *handler.NewsletterHandler
	orderHandler        *handler.OrderHandler
	preferenceHandler   *handler.PreferenceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		campaignHandler:     params.CampaignHandler,
		newsletterHandler:   params.NewsletterHandler,
		orderHandler:        params.OrderHandler,
		preferenceHandler:   params.PreferenceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authors := r.authMiddleware.RequireRole(entity.AuthorRoles)
	operators := r.authMiddleware.RequireRole(entity.OperatorRoles)
	endUsers := r.authMiddleware.RequireRole(entity.RecipientRoles)
	anyone := r.authMiddleware.RequireRole(entity.AllRoles)

	campaignGroup := e.Group("/campaigns")
	campaignGroup.Use(r.authMiddleware.Authenticate)
	{
		campaignGroup.GET("", r.campaignHandler.ListCampaigns, operators)
		campaignGroup.POST("", r.campaignHandler.CreateCampaign, authors)
		campaignGroup.POST("/send", r.campaignHandler.SendCampaign, authors)
		campaignGroup.PUT("/:campaignId", r.campaignHandler.UpdateCampaign, authors)
		campaignGroup.POST("/:campaignId/schedule", r.campaignHandler.ScheduleCampaign, authors)
		campaignGroup.DELETE("/:campaignId/schedule", r.campaignHandler.UnscheduleCampaign, authors)
	}

	newsletterGroup := e.Group("/newsletters")
	newsletterGroup.Use(r.authMiddleware.Authenticate)
	{
		newsletterGroup.GET("/categories", r.newsletterHandler.ListCategories, anyone)
		newsletterGroup.POST("/categories", r.newsletterHandler.CreateCategory, authors)
		newsletterGroup.PUT("/categories/:newsletterId", r.newsletterHandler.UpdateCategory, authors)
		newsletterGroup.GET("/me/subscriptions", r.newsletterHandler.ListMySubscriptions, endUsers)
		newsletterGroup.GET("/:newsletterId/articles", r.newsletterHandler.ListArticles, anyone)
		newsletterGroup.POST("/:newsletterId/articles", r.newsletterHandler.CreateArticle, authors)
		newsletterGroup.PUT("/articles/:articleId", r.newsletterHandler.UpdateArticle, authors)
		newsletterGroup.POST("/articles/:articleId/publish", r.newsletterHandler.PublishArticle, authors)
		newsletterGroup.GET("/articles/:articleId/recipients", r.newsletterHandler.ArticleRecipients, operators)
		newsletterGroup.POST("/:newsletterId/subscription", r.newsletterHandler.Subscribe, endUsers)
		newsletterGroup.DELETE("/:newsletterId/subscription", r.newsletterHandler.Unsubscribe, endUsers)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders, authors)
		orderGroup.POST("", r.orderHandler.CreateOrder, endUsers)
		orderGroup.GET("/my", r.orderHandler.ListMyOrders, endUsers)
		orderGroup.PATCH("/:orderId/status", r.orderHandler.UpdateOrderStatus, authors)
	}

	preferenceGroup := e.Group("/preferences")
	preferenceGroup.Use(r.authMiddleware.Authenticate)
	{
		preferenceGroup.GET("/:userId", r.preferenceHandler.GetPreferences)
		preferenceGroup.PUT("/:userId", r.preferenceHandler.UpdatePreferences)
	}

	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("/me", r.notificationHandler.ListMyNotifications)
		notificationGroup.GET("/me/stats", r.notificationHandler.MyStats)
		notificationGroup.GET("/logs", r.notificationHandler.ListLogs, operators)
	}
}
