package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/router/handler"
	"relay/internal/delivery/http/validator"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/service"
	mockSvc "relay/internal/mocks/service"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type testAPI struct {
	echo          *echo.Echo
	tokenSvc      *mockSvc.MockTokenService
	campaigns     *mockUsecase.MockCampaignUsecase
	newsletters   *mockUsecase.MockNewsletterUsecase
	orders        *mockUsecase.MockOrderUsecase
	preferences   *mockUsecase.MockPreferenceUsecase
	notifications *mockUsecase.MockNotificationUsecase
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		echo:          echo.New(),
		tokenSvc:      mockSvc.NewMockTokenService(t),
		campaigns:     mockUsecase.NewMockCampaignUsecase(t),
		newsletters:   mockUsecase.NewMockNewsletterUsecase(t),
		orders:        mockUsecase.NewMockOrderUsecase(t),
		preferences:   mockUsecase.NewMockPreferenceUsecase(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
	}
	api.echo.Validator = validator.New()
	api.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		CampaignHandler:     handler.NewCampaignHandler(api.campaigns, logger),
		NewsletterHandler:   handler.NewNewsletterHandler(api.newsletters),
		OrderHandler:        handler.NewOrderHandler(api.orders),
		PreferenceHandler:   handler.NewPreferenceHandler(api.preferences),
		NotificationHandler: handler.NewNotificationHandler(api.notifications),
		AuthMiddleware:      middleware.NewAuthMiddleware(api.tokenSvc),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) loginAs(role entity.Role) usecase.Actor {
	actor := usecase.Actor{UserID: uuid.New(), Role: role}
	a.tokenSvc.EXPECT().ValidateAccessToken(testToken).Return(&service.Claims{UserID: actor.UserID, Role: role}, nil)

	return actor
}

func (a *testAPI) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()

	a.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/notifications/me", nil)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	api := newTestAPI(t)
	api.tokenSvc.EXPECT().ValidateAccessToken(testToken).Return(nil, errors.New("expired"))

	rec, env := api.do(t, http.MethodGet, "/notifications/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestRoleGates(t *testing.T) {
	tests := []struct {
		name   string
		role   entity.Role
		method string
		target string
	}{
		{name: "user cannot create campaigns", role: entity.RoleUser, method: http.MethodPost, target: "/campaigns"},
		{name: "viewer cannot send campaigns", role: entity.RoleViewer, method: http.MethodPost, target: "/campaigns/send"},
		{name: "creator cannot subscribe", role: entity.RoleCreator, method: http.MethodPost, target: "/newsletters/" + uuid.NewString() + "/subscription"},
		{name: "viewer cannot change order status", role: entity.RoleViewer, method: http.MethodPatch, target: "/orders/" + uuid.NewString() + "/status"},
		{name: "user cannot change order status", role: entity.RoleUser, method: http.MethodPatch, target: "/orders/" + uuid.NewString() + "/status"},
		{name: "user cannot read logs", role: entity.RoleUser, method: http.MethodGet, target: "/notifications/logs"},
		{name: "viewer cannot edit categories", role: entity.RoleViewer, method: http.MethodPut, target: "/newsletters/categories/" + uuid.NewString()},
		{name: "user cannot preview article recipients", role: entity.RoleUser, method: http.MethodGet, target: "/newsletters/articles/" + uuid.NewString() + "/recipients"},
		{name: "creator has no subscriptions", role: entity.RoleCreator, method: http.MethodGet, target: "/newsletters/me/subscriptions"},
		{name: "admin has no orders of their own", role: entity.RoleAdmin, method: http.MethodGet, target: "/orders/my"},
		{name: "viewer cannot browse orders", role: entity.RoleViewer, method: http.MethodGet, target: "/orders"},
		{name: "user cannot browse orders", role: entity.RoleUser, method: http.MethodGet, target: "/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.loginAs(tt.role)

			rec, env := api.do(t, tt.method, tt.target, "{}")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	created := &entity.Campaign{
		ID:               uuid.New(),
		Name:             "Weekend sale",
		Message:          "Everything must go",
		NotificationType: entity.CategoryOffers,
		Status:           entity.CampaignStatusDraft,
		CreatedBy:        actor.UserID,
	}

	api.campaigns.EXPECT().
		CreateCampaign(mock.Anything, actor, usecase.CampaignInput{
			Name:             "Weekend sale",
			Message:          "Everything must go",
			NotificationType: entity.CategoryOffers,
			CityFilters:      []string{"Pune"},
		}).
		Return(created, nil)

	rec, env := api.do(t, http.MethodPost, "/campaigns",
		`{"campaign_name":"Weekend sale","campaign_message":"Everything must go","notification_type":"offers","city_filters":["Pune"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var body handler.CampaignResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, created.ID, body.ID)
	assert.Equal(t, []string{}, body.CityFilters)
}

func TestCreateCampaign_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{name: "missing name", body: `{"campaign_message":"m","notification_type":"offers"}`, details: "campaign_name is required"},
		{name: "unknown type", body: `{"campaign_name":"n","campaign_message":"m","notification_type":"promos"}`, details: "notification_type must be one of"},
		{name: "unsupported city", body: `{"campaign_name":"n","campaign_message":"m","notification_type":"offers","city_filters":["Atlantis"]}`, details: "unsupported city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.loginAs(entity.RoleAdmin)

			rec, env := api.do(t, http.MethodPost, "/campaigns", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			assert.Contains(t, env.Message, tt.details)
		})
	}
}

func TestUpdateCampaign_ExplicitEmptyCityFiltersClears(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	campaignID := uuid.New()

	api.campaigns.EXPECT().
		UpdateCampaign(mock.Anything, actor, campaignID, mock.MatchedBy(func(u usecase.CampaignUpdate) bool {
			return u.CityFilters != nil && len(*u.CityFilters) == 0 && u.Name == nil
		})).
		Return(&entity.Campaign{ID: campaignID, Status: entity.CampaignStatusDraft}, nil)

	rec, _ := api.do(t, http.MethodPut, "/campaigns/"+campaignID.String(), `{"city_filters":[]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCampaign_NotEditable(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	campaignID := uuid.New()

	api.campaigns.EXPECT().
		UpdateCampaign(mock.Anything, actor, campaignID, mock.Anything).
		Return(nil, domainerrors.ErrCampaignNotEditable)

	rec, env := api.do(t, http.MethodPut, "/campaigns/"+campaignID.String(), `{"campaign_name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestUpdateCampaign_InvalidID(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleCreator)

	rec, env := api.do(t, http.MethodPut, "/campaigns/42", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestScheduleCampaign(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	campaignID := uuid.New()
	at := time.Date(2030, 1, 2, 9, 30, 0, 0, time.UTC)

	api.campaigns.EXPECT().
		ScheduleCampaign(mock.Anything, actor, campaignID, mock.MatchedBy(func(got time.Time) bool { return got.Equal(at) })).
		Return(&entity.Campaign{ID: campaignID, Status: entity.CampaignStatusScheduled, ScheduledAt: &at}, nil)

	rec, _ := api.do(t, http.MethodPost, "/campaigns/"+campaignID.String()+"/schedule", `{"scheduled_at":"2030-01-02T09:30:00Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleCampaign_MissingTime(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleCreator)

	rec, _ := api.do(t, http.MethodPost, "/campaigns/"+uuid.NewString()+"/schedule", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendCampaign(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleAdmin)
	campaignID := uuid.New()

	api.campaigns.EXPECT().
		SendCampaign(mock.Anything, actor, campaignID).
		Return(&entity.DeliveryResult{Recipients: 3, LogCount: 7}, nil)

	rec, env := api.do(t, http.MethodPost, "/campaigns/send", `{"campaign_id":"`+campaignID.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recipients":3,"log_count":7}`, string(env.Data))
}

func TestSendCampaign_AlreadySent(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	campaignID := uuid.New()

	api.campaigns.EXPECT().
		SendCampaign(mock.Anything, actor, campaignID).
		Return(nil, domainerrors.ErrCampaignNotDeliverable)

	rec, _ := api.do(t, http.MethodPost, "/campaigns/send", `{"campaign_id":"`+campaignID.String()+`"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendCampaign_UnexpectedErrorHidesDetails(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	campaignID := uuid.New()

	api.campaigns.EXPECT().
		SendCampaign(mock.Anything, actor, campaignID).
		Return(nil, errors.New("pq: connection reset"))

	rec, env := api.do(t, http.MethodPost, "/campaigns/send", `{"campaign_id":"`+campaignID.String()+`"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestListCampaigns(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleViewer)

	api.campaigns.EXPECT().
		ListCampaigns(mock.Anything, actor, usecase.CampaignQuery{Page: 2, Limit: 20}).
		Return(&entity.Page[*entity.Campaign]{
			Items: []*entity.Campaign{{ID: uuid.New()}},
			Meta:  entity.PageMeta{Page: 2, Limit: 20, Total: 21, TotalPages: 2, HasPrev: true},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/campaigns?status=all&page=2&limit=20", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.CampaignResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(21), page.Meta.Total)
}

func TestListCampaigns_ParsesFilters(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleAdmin)

	api.campaigns.EXPECT().
		ListCampaigns(mock.Anything, actor, usecase.CampaignQuery{
			Page:    1,
			Limit:   10,
			Status:  entity.CampaignStatusSent,
			Type:    entity.CategoryOffers,
			Search:  "sale",
			City:    "Pune",
			Creator: "asha",
		}).
		Return(&entity.Page[*entity.Campaign]{Meta: entity.PageMeta{Page: 1, Limit: 10, TotalPages: 1}}, nil)

	rec, _ := api.do(t, http.MethodGet, "/campaigns?page=1&limit=10&status=sent&type=offers&q=+sale&city=Pune&creator=asha", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCategories_EndUserSeesSubscriptionState(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	subscribedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	api.newsletters.EXPECT().
		ListCategories(mock.Anything, actor, usecase.CategoryQuery{Search: "tech"}).
		Return(&entity.Page[*entity.CategorySummary]{
			Items: []*entity.CategorySummary{
				{Category: &entity.NewsletterCategory{ID: uuid.New(), Title: "Tech"}, ArticleCount: 4, SubscribedAt: &subscribedAt},
				{Category: &entity.NewsletterCategory{ID: uuid.New(), Title: "Tech deals"}},
			},
			Meta: entity.PageMeta{Page: 1, Limit: 10, Total: 2, TotalPages: 1},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/newsletters/categories?q=tech", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.CategorySummaryResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(4), page.Items[0].ArticleCount)
	require.NotNil(t, page.Items[0].IsSubscribed)
	assert.True(t, *page.Items[0].IsSubscribed)
	require.NotNil(t, page.Items[1].IsSubscribed)
	assert.False(t, *page.Items[1].IsSubscribed)
}

func TestListCategories_OperatorsGetNoSubscriptionState(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleViewer)

	api.newsletters.EXPECT().
		ListCategories(mock.Anything, actor, usecase.CategoryQuery{}).
		Return(&entity.Page[*entity.CategorySummary]{
			Items: []*entity.CategorySummary{{Category: &entity.NewsletterCategory{ID: uuid.New()}}},
		}, nil)

	rec, _ := api.do(t, http.MethodGet, "/newsletters/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "is_subscribed")
}

func TestUpdateCategory_BlankCoverClears(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		UpdateCategory(mock.Anything, actor, newsletterID, mock.MatchedBy(func(u usecase.CategoryUpdate) bool {
			return u.Title == nil && u.CoverImageURL != nil && *u.CoverImageURL == ""
		})).
		Return(&entity.NewsletterCategory{ID: newsletterID, Title: "Tech"}, nil)

	rec, env := api.do(t, http.MethodPut, "/newsletters/categories/"+newsletterID.String(), `{"cover_image_url":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, string(mustField(t, env.Data, "cover_image_url")))
}

func TestUpdateCategory_NotOwner(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		UpdateCategory(mock.Anything, actor, newsletterID, mock.Anything).
		Return(nil, domainerrors.ErrForbidden)

	rec, _ := api.do(t, http.MethodPut, "/newsletters/categories/"+newsletterID.String(), `{"title":"Mine now"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListArticles(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		ListArticles(mock.Anything, actor, newsletterID, usecase.ArticleQuery{Page: 2, Status: entity.ArticleStatusDraft, Search: "weekly"}).
		Return(&entity.Page[*entity.NewsletterArticle]{
			Items: []*entity.NewsletterArticle{{ID: uuid.New(), NewsletterID: newsletterID, Status: entity.ArticleStatusSent}},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/newsletters/"+newsletterID.String()+"/articles?page=2&status=draft&q=weekly", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.ArticleResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "sent", page.Items[0].Status)
}

func TestArticleRecipients(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleViewer)
	articleID := uuid.New()
	city := "Pune"

	api.newsletters.EXPECT().
		ArticleRecipients(mock.Anything, actor, articleID, usecase.RecipientQuery{City: "Pune", Role: entity.RoleUser}).
		Return(&entity.ArticleRecipients{
			Article: &entity.NewsletterArticle{ID: articleID, Status: entity.ArticleStatusDraft},
			Mode:    entity.RecipientPreviewDraft,
			Items: []*entity.ArticleRecipient{{
				User:     &entity.User{ID: uuid.New(), Name: "Asha", City: &city, Role: entity.RoleUser, IsActive: true},
				Channels: []entity.Channel{entity.ChannelPush, entity.ChannelSMS},
				Status:   entity.RecipientStatusPending,
			}},
			Meta: entity.PageMeta{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/newsletters/articles/"+articleID.String()+"/recipients?city=Pune&role=user&status=all", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.ArticleRecipientsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "draft", body.Mode)
	require.Len(t, body.Items, 1)
	assert.Equal(t, []string{"push", "sms"}, body.Items[0].Channels)
	assert.Equal(t, "pending", body.Items[0].Status)
	assert.Nil(t, body.Items[0].SentAt)
}

func TestArticleRecipients_UnknownRole(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleAdmin)

	rec, env := api.do(t, http.MethodGet, "/newsletters/articles/"+uuid.NewString()+"/recipients?role=guest", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
}

func TestListMySubscriptions(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		ListMySubscriptions(mock.Anything, actor.UserID).
		Return([]*entity.NewsletterSubscription{{
			ID:           uuid.New(),
			UserID:       actor.UserID,
			NewsletterID: newsletterID,
			Newsletter:   &entity.NewsletterCategory{ID: newsletterID, Title: "Tech"},
		}}, nil)

	rec, env := api.do(t, http.MethodGet, "/newsletters/me/subscriptions", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []handler.SubscriptionResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Items, 1)
	require.NotNil(t, body.Items[0].Newsletter)
	assert.Equal(t, "Tech", body.Items[0].Newsletter.Title)
}

func TestPublishArticle(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	articleID := uuid.New()

	api.newsletters.EXPECT().
		PublishArticle(mock.Anything, actor, articleID).
		Return(&entity.DeliveryResult{}, nil)

	rec, env := api.do(t, http.MethodPost, "/newsletters/articles/"+articleID.String()+"/publish", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, env.Message, "left as draft")
}

func TestPublishArticle_AlreadyPublished(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleAdmin)
	articleID := uuid.New()

	api.newsletters.EXPECT().
		PublishArticle(mock.Anything, actor, articleID).
		Return(nil, domainerrors.ErrArticleAlreadyPublished)

	rec, _ := api.do(t, http.MethodPost, "/newsletters/articles/"+articleID.String()+"/publish", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribe(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		Subscribe(mock.Anything, actor.UserID, newsletterID).
		Return(&entity.NewsletterSubscription{ID: uuid.New(), UserID: actor.UserID, NewsletterID: newsletterID}, nil)

	rec, _ := api.do(t, http.MethodPost, "/newsletters/"+newsletterID.String()+"/subscription", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateArticle(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)
	newsletterID := uuid.New()

	api.newsletters.EXPECT().
		CreateArticle(mock.Anything, actor, newsletterID, usecase.ArticleInput{Title: "Weekly", Message: "Hello"}).
		Return(&entity.NewsletterArticle{ID: uuid.New(), NewsletterID: newsletterID, Status: entity.ArticleStatusDraft}, nil)

	rec, _ := api.do(t, http.MethodPost, "/newsletters/"+newsletterID.String()+"/articles", `{"title":"Weekly","message":"Hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)

	api.orders.EXPECT().
		CreateOrder(mock.Anything, actor.UserID, usecase.OrderInput{
			Items:       []entity.OrderItem{{ProductID: "sku-1", Name: "Kettle", Quantity: 2, Price: 10}},
			TotalAmount: 20,
		}).
		Return(&entity.Order{ID: uuid.New(), UserID: actor.UserID, Status: entity.OrderStatusConfirmed}, nil)

	rec, _ := api.do(t, http.MethodPost, "/orders",
		`{"items":[{"product_id":"sku-1","name":"Kettle","quantity":2,"price":10}],"total_amount":20}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateOrder_NoItems(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleUser)

	rec, _ := api.do(t, http.MethodPost, "/orders", `{"items":[],"total_amount":20}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleAdmin)
	orderID := uuid.New()

	api.orders.EXPECT().
		UpdateOrderStatus(mock.Anything, orderID, entity.OrderStatusShipped).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil)

	rec, _ := api.do(t, http.MethodPatch, "/orders/"+orderID.String()+"/status", `{"status":"SHIPPED"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderStatus_CreatorAllowed(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleCreator)
	orderID := uuid.New()

	api.orders.EXPECT().
		UpdateOrderStatus(mock.Anything, orderID, entity.OrderStatusDelivered).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)

	rec, _ := api.do(t, http.MethodPatch, "/orders/"+orderID.String()+"/status", `{"status":"DELIVERED"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListMyOrders(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)

	api.orders.EXPECT().
		ListMyOrders(mock.Anything, actor.UserID, mock.MatchedBy(func(q usecase.OrderQuery) bool {
			return q.Status == entity.OrderStatusShipped && q.Search == "7f3" &&
				q.From != nil && q.From.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) && q.To == nil
		})).
		Return(&entity.Page[*entity.Order]{
			Items: []*entity.Order{{ID: uuid.New(), UserID: actor.UserID, Status: entity.OrderStatusShipped}},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/orders/my?status=SHIPPED&q=7f3&from=2024-05-01", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.OrderResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
}

func TestListOrders(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleCreator)

	api.orders.EXPECT().
		ListOrders(mock.Anything, usecase.OrderQuery{Page: 1, Limit: 50, Search: "asha"}).
		Return(&entity.Page[*entity.Order]{}, nil)

	rec, _ := api.do(t, http.MethodGet, "/orders?page=1&limit=50&q=asha&status=all", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListOrders_BadDate(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleAdmin)

	rec, env := api.do(t, http.MethodGet, "/orders?to=yesterday", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleAdmin)

	rec, _ := api.do(t, http.MethodPatch, "/orders/"+uuid.NewString()+"/status", `{"status":"LOST"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePreferences(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	enabled := true

	api.preferences.EXPECT().
		UpdatePreferences(mock.Anything, actor, actor.UserID, usecase.PreferenceInput{Offers: &enabled}).
		Return(&entity.Preference{UserID: actor.UserID, Offers: true, OffersPush: true, OffersEmail: true, OffersSMS: true}, nil)

	rec, env := api.do(t, http.MethodPut, "/preferences/"+actor.UserID.String(), `{"offers":true}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var pref handler.PreferenceResponse
	require.NoError(t, json.Unmarshal(env.Data, &pref))
	assert.True(t, pref.OffersSMS)
}

func TestUpdatePreferences_Forbidden(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	other := uuid.New()

	api.preferences.EXPECT().
		UpdatePreferences(mock.Anything, actor, other, mock.Anything).
		Return(nil, domainerrors.ErrForbidden)

	rec, _ := api.do(t, http.MethodPut, "/preferences/"+other.String(), `{"offers":false}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPreferences_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleUser)
	userID := uuid.New()

	api.preferences.EXPECT().GetPreferences(mock.Anything, userID).Return(nil, domainerrors.ErrPreferenceNotFound)

	rec, _ := api.do(t, http.MethodGet, "/preferences/"+userID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListLogs_ParsesFilters(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleCreator)

	api.notifications.EXPECT().
		ListLogs(mock.Anything, actor, mock.MatchedBy(func(q usecase.LogQuery) bool {
			return q.Page == 3 && q.Limit == 25 &&
				q.Search == "pune" && q.Status == "" && q.Category == entity.CategoryOffers &&
				q.From != nil && q.From.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
				q.To != nil && q.To.Equal(time.Date(2024, 5, 31, 23, 59, 59, 999_000_000, time.UTC))
		})).
		Return(&entity.Page[*entity.NotificationLog]{Items: []*entity.NotificationLog{}}, nil)

	rec, _ := api.do(t, http.MethodGet, "/notifications/logs?page=3&limit=25&q=+pune+&status=all&type=offers&from=2024-05-01&to=2024-05-31", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListLogs_BadDate(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(entity.RoleAdmin)

	rec, env := api.do(t, http.MethodGet, "/notifications/logs?from=05/01/2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
}

func TestListMyNotifications(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)
	orderID := uuid.New()

	api.notifications.EXPECT().
		ListMyNotifications(mock.Anything, actor, usecase.LogQuery{}).
		Return(&entity.Page[*entity.NotificationLog]{
			Items: []*entity.NotificationLog{{ID: uuid.New(), UserID: actor.UserID, Channel: entity.ChannelPush, Status: "SHIPPED", OrderID: &orderID}},
			Meta:  entity.PageMeta{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/notifications/me", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.NotificationLogResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, &orderID, page.Items[0].OrderID)
	assert.Nil(t, page.Items[0].CampaignID)
}

func TestListLogs_IncludesRecipient(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleAdmin)
	userID := uuid.New()

	api.notifications.EXPECT().
		ListLogs(mock.Anything, actor, usecase.LogQuery{}).
		Return(&entity.Page[*entity.NotificationLog]{
			Items: []*entity.NotificationLog{{ID: uuid.New(), UserID: userID, User: &entity.User{ID: userID, Email: "asha@example.com"}}},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/notifications/logs", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse[handler.NotificationLogResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].User)
	assert.Equal(t, "asha@example.com", page.Items[0].User.Email)
}

func TestMyStats(t *testing.T) {
	api := newTestAPI(t)
	actor := api.loginAs(entity.RoleUser)

	api.notifications.EXPECT().
		MyStats(mock.Anything, actor).
		Return(&entity.NotificationStats{
			Total: 5,
			Breakdown: map[entity.Category]int64{
				entity.CategoryOffers:       3,
				entity.CategoryOrderUpdates: 0,
				entity.CategoryNewsletter:   2,
			},
		}, nil)

	rec, env := api.do(t, http.MethodGet, "/notifications/me/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":5,"breakdown":{"offers":3,"order_updates":0,"newsletter":2}}`, string(env.Data))
}

func mustField(t *testing.T, data json.RawMessage, key string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	value, ok := fields[key]
	require.True(t, ok, "missing field %s", key)

	return value
}
