package handler

import (
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignResponse is the JSON shape of a campaign.
type CampaignResponse struct {
	ID               uuid.UUID  `json:"campaign_id"`
	Name             string     `json:"campaign_name"`
	Message          string     `json:"campaign_message"`
	ImageURL         *string    `json:"image_url"`
	NotificationType string     `json:"notification_type"`
	CityFilters      []string   `json:"city_filters"`
	Status           string     `json:"status"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toCampaignResponse(c *entity.Campaign) CampaignResponse {
	cities := c.CityFilters
	if cities == nil {
		cities = []string{}
	}

	return CampaignResponse{
		ID:               c.ID,
		Name:             c.Name,
		Message:          c.Message,
		ImageURL:         c.ImageURL,
		NotificationType: string(c.NotificationType),
		CityFilters:      cities,
		Status:           string(c.Status),
		ScheduledAt:      c.ScheduledAt,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// CategoryResponse is the JSON shape of a newsletter category.
type CategoryResponse struct {
	ID               uuid.UUID `json:"newsletter_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	CoverImageURL    *string   `json:"cover_image_url"`
	CreatedBy        uuid.UUID `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

func toCategoryResponse(c *entity.NewsletterCategory) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		CoverImageURL:    c.CoverImageURL,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        c.CreatedAt,
	}
}

// ArticleResponse is the JSON shape of a newsletter article.
type ArticleResponse struct {
	ID           uuid.UUID  `json:"article_id"`
	NewsletterID uuid.UUID  `json:"newsletter_id"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toArticleResponse(a *entity.NewsletterArticle) ArticleResponse {
	return ArticleResponse{
		ID:           a.ID,
		NewsletterID: a.NewsletterID,
		Title:        a.Title,
		Message:      a.Message,
		Status:       string(a.Status),
		PublishedAt:  a.PublishedAt,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// CategorySummaryResponse is a category row of a listing. The subscription
// fields are only filled for end users.
type CategorySummaryResponse struct {
	CategoryResponse
	ArticleCount int64      `json:"article_count"`
	IsSubscribed *bool      `json:"is_subscribed,omitempty"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}

func categorySummaryMapper(withSubscription bool) func(*entity.CategorySummary) CategorySummaryResponse {
	return func(s *entity.CategorySummary) CategorySummaryResponse {
		resp := CategorySummaryResponse{
			CategoryResponse: toCategoryResponse(s.Category),
			ArticleCount:     s.ArticleCount,
		}
		if withSubscription {
			subscribed := s.IsSubscribed()
			resp.IsSubscribed = &subscribed
			resp.SubscribedAt = s.SubscribedAt
		}

		return resp
	}
}

// SubscriptionResponse is the JSON shape of a newsletter subscription.
type SubscriptionResponse struct {
	ID           uuid.UUID         `json:"subscription_id"`
	UserID       uuid.UUID         `json:"user_id"`
	NewsletterID uuid.UUID         `json:"newsletter_id"`
	SubscribedAt time.Time         `json:"subscribed_at"`
	Newsletter   *CategoryResponse `json:"newsletter,omitempty"`
}

func toSubscriptionResponse(s *entity.NewsletterSubscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		NewsletterID: s.NewsletterID,
		SubscribedAt: s.SubscribedAt,
	}
	if s.Newsletter != nil {
		newsletter := toCategoryResponse(s.Newsletter)
		resp.Newsletter = &newsletter
	}

	return resp
}

// UserSummaryResponse is the public profile attached to recipient and log rows.
type UserSummaryResponse struct {
	ID       uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	City     *string   `json:"city"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func toUserSummaryResponse(u *entity.User) *UserSummaryResponse {
	if u == nil {
		return nil
	}

	return &UserSummaryResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		City:     u.City,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

// ArticleRecipientResponse is one row of an article recipient listing.
type ArticleRecipientResponse struct {
	User     *UserSummaryResponse `json:"user"`
	Channels []string             `json:"channels"`
	Status   string               `json:"status"`
	SentAt   *time.Time           `json:"sent_at"`
}

// ArticleRecipientsResponse is a page of an article's recipients.
type ArticleRecipientsResponse struct {
	Article ArticleResponse            `json:"article"`
	Mode    string                     `json:"mode"`
	Items   []ArticleRecipientResponse `json:"items"`
	Meta    entity.PageMeta            `json:"meta"`
}

func toArticleRecipientsResponse(r *entity.ArticleRecipients) ArticleRecipientsResponse {
	items := make([]ArticleRecipientResponse, 0, len(r.Items))
	for _, item := range r.Items {
		channels := make([]string, 0, len(item.Channels))
		for _, channel := range item.Channels {
			channels = append(channels, string(channel))
		}

		items = append(items, ArticleRecipientResponse{
			User:     toUserSummaryResponse(item.User),
			Channels: channels,
			Status:   item.Status,
			SentAt:   item.SentAt,
		})
	}

	return ArticleRecipientsResponse{
		Article: toArticleResponse(r.Article),
		Mode:    string(r.Mode),
		Items:   items,
		Meta:    r.Meta,
	}
}

// OrderResponse is the JSON shape of an order.
type OrderResponse struct {
	ID                uuid.UUID          `json:"order_id"`
	UserID            uuid.UUID          `json:"user_id"`
	Items             []entity.OrderItem `json:"items"`
	TotalAmount       float64            `json:"total_amount"`
	Status            string             `json:"status"`
	EstimatedDelivery time.Time          `json:"estimated_delivery"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func toOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Items:             o.Items,
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		EstimatedDelivery: o.EstimatedDelivery,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// PreferenceResponse is the JSON shape of a preference row, legacy flags included.
type PreferenceResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Offers            bool      `json:"offers"`
	OrderUpdates      bool      `json:"order_updates"`
	Newsletter        bool      `json:"newsletter"`
	OffersPush        bool      `json:"offers_push"`
	OffersEmail       bool      `json:"offers_email"`
	OffersSMS         bool      `json:"offers_sms"`
	OrderUpdatesPush  bool      `json:"order_updates_push"`
	OrderUpdatesEmail bool      `json:"order_updates_email"`
	OrderUpdatesSMS   bool      `json:"order_updates_sms"`
	NewsletterPush    bool      `json:"newsletter_push"`
	NewsletterEmail   bool      `json:"newsletter_email"`
	NewsletterSMS     bool      `json:"newsletter_sms"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toPreferenceResponse(p *entity.Preference) PreferenceResponse {
	return PreferenceResponse{
		UserID:            p.UserID,
		Offers:            p.Offers,
		OrderUpdates:      p.OrderUpdates,
		Newsletter:        p.Newsletter,
		OffersPush:        p.OffersPush,
		OffersEmail:       p.OffersEmail,
		OffersSMS:         p.OffersSMS,
		OrderUpdatesPush:  p.OrderUpdatesPush,
		OrderUpdatesEmail: p.OrderUpdatesEmail,
		OrderUpdatesSMS:   p.OrderUpdatesSMS,
		NewsletterPush:    p.NewsletterPush,
		NewsletterEmail:   p.NewsletterEmail,
		NewsletterSMS:     p.NewsletterSMS,
		UpdatedAt:         p.UpdatedAt,
	}
}

// NotificationLogResponse is the JSON shape of a delivery log row.
type NotificationLogResponse struct {
	ID                  uuid.UUID  `json:"log_id"`
	UserID              uuid.UUID  `json:"user_id"`
	Channel             string     `json:"channel"`
	Status              string     `json:"status"`
	SentAt              time.Time  `json:"sent_at"`
	CampaignID          *uuid.UUID `json:"campaign_id"`
	NewsletterArticleID *uuid.UUID `json:"newsletter_article_id"`
	OrderID             *uuid.UUID `json:"order_id"`

	User *UserSummaryResponse `json:"user,omitempty"`
}

func toNotificationLogResponse(l *entity.NotificationLog) NotificationLogResponse {
	return NotificationLogResponse{
		ID:                  l.ID,
		UserID:              l.UserID,
		Channel:             string(l.Channel),
		Status:              l.Status,
		SentAt:              l.SentAt,
		CampaignID:          l.CampaignID,
		NewsletterArticleID: l.NewsletterArticleID,
		OrderID:             l.OrderID,
		User:                toUserSummaryResponse(l.User),
	}
}

// NotificationStatsResponse counts a user's delivered notifications.
type NotificationStatsResponse struct {
	Total     int64            `json:"total"`
	Breakdown map[string]int64 `json:"breakdown"`
}

func toNotificationStatsResponse(s *entity.NotificationStats) NotificationStatsResponse {
	breakdown := make(map[string]int64, len(s.Breakdown))
	for category, count := range s.Breakdown {
		breakdown[string(category)] = count
	}

	return NotificationStatsResponse{Total: s.Total, Breakdown: breakdown}
}

// PageResponse is a page of mapped items with its metadata.
type PageResponse[T any] struct {
	Items []T             `json:"items"`
	Meta  entity.PageMeta `json:"meta"`
}

func toPageResponse[E, T any](page *entity.Page[E], mapFn func(E) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapFn(item))
	}

	return PageResponse[T]{Items: items, Meta: page.Meta}
}
