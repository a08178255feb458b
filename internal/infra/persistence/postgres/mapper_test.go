package postgres

import (
	"testing"
	"time"

	"relay/internal/domain/entity"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCampaignDomain_EmptyCityFiltersMeanAllCities(t *testing.T) {
	campaign := toCampaignDomain(&model.CampaignModel{
		ID:          uuid.New(),
		CityFilters: pq.StringArray{},
		Status:      "scheduled",
	})

	assert.Nil(t, campaign.CityFilters)
	assert.Equal(t, entity.CampaignStatusScheduled, campaign.Status)
}

func TestFromCampaignDomain_KeepsCityOrder(t *testing.T) {
	campaignM := fromCampaignDomain(&entity.Campaign{CityFilters: []string{"Pune", "Indore"}})

	assert.Equal(t, pq.StringArray{"Pune", "Indore"}, campaignM.CityFilters)
}

func TestOrderMapper_ItemsRoundTripThroughJSON(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items:  []entity.OrderItem{{ProductID: "sku-1", Name: "Kettle", Quantity: 2, Price: 10.5}},
		Status: entity.OrderStatusShipped,
	}

	orderM, err := fromOrderDomain(order)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":"sku-1","name":"Kettle","quantity":2,"price":10.5}]`, string(orderM.Items))

	back, err := toOrderDomain(orderM)
	require.NoError(t, err)
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, entity.OrderStatusShipped, back.Status)
}

func TestToOrderDomain_RejectsCorruptItems(t *testing.T) {
	_, err := toOrderDomain(&model.OrderModel{Items: []byte("{")})

	assert.Error(t, err)
}

func TestCategoryPredicate(t *testing.T) {
	assert.NotContains(t, categoryPredicate(entity.CategoryOffers), "order_id")
	assert.Contains(t, categoryPredicate(entity.CategoryOrderUpdates), "notification_logs.order_id IS NOT NULL")
	assert.Contains(t, categoryPredicate(entity.CategoryNewsletter), "notification_logs.newsletter_article_id IS NOT NULL")
}

func TestNotificationLogMapper_PreservesSource(t *testing.T) {
	pair := entity.Recipient{UserID: uuid.New(), Channel: entity.ChannelSMS}
	log := entity.NewNotificationLog(entity.ArticleSource(uuid.New()), pair, entity.LogStatusSuccess, time.Now())

	back := toNotificationLogDomain(fromNotificationLogDomain(log))

	assert.Equal(t, log, back)
}

func TestLikePattern(t *testing.T) {
	pattern, ok := likePattern("  50%_off\\ ")
	require.True(t, ok)
	assert.Equal(t, `%50\%\_off\\%`, pattern)

	_, ok = likePattern("   ")
	assert.False(t, ok)
}

func TestNotificationLogMapper_LoadsRecipientWhenPreloaded(t *testing.T) {
	userID := uuid.New()

	withUser := toNotificationLogDomain(&model.NotificationLogModel{
		ID:     uuid.New(),
		UserID: userID,
		User:   &model.UserModel{ID: userID, Name: "Asha", Role: "user"},
	})
	require.NotNil(t, withUser.User)
	assert.Equal(t, "Asha", withUser.User.Name)
	assert.Equal(t, entity.RoleUser, withUser.User.Role)

	assert.Nil(t, toNotificationLogDomain(&model.NotificationLogModel{ID: uuid.New(), UserID: userID}).User)
}

func TestToNewsletterSubscriptionDomain_CarriesCategory(t *testing.T) {
	newsletterID := uuid.New()

	subscription := toNewsletterSubscriptionDomain(&model.NewsletterSubscriptionModel{
		ID:           uuid.New(),
		NewsletterID: newsletterID,
		Newsletter:   &model.NewsletterCategoryModel{ID: newsletterID, Title: "Tech"},
	})

	require.NotNil(t, subscription.Newsletter)
	assert.Equal(t, "Tech", subscription.Newsletter.Title)
}
