package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationLog_SetsExactlyOneSource(t *testing.T) {
	sourceID := uuid.New()
	pair := Recipient{UserID: uuid.New(), Channel: ChannelEmail}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, source := range []SourceRef{CampaignSource(sourceID), ArticleSource(sourceID), OrderSource(sourceID)} {
		t.Run(string(source.Kind), func(t *testing.T) {
			log := NewNotificationLog(source, pair, LogStatusSuccess, at)

			set := 0
			for _, ref := range []*uuid.UUID{log.CampaignID, log.NewsletterArticleID, log.OrderID} {
				if ref != nil {
					set++
				}
			}
			assert.Equal(t, 1, set)

			got, ok := log.Source()
			require.True(t, ok)
			assert.Equal(t, source, got)
			assert.Equal(t, pair.UserID, log.UserID)
			assert.Equal(t, ChannelEmail, log.Channel)
			assert.Equal(t, at, log.SentAt)
		})
	}
}

func TestNotificationLog_Source_RejectsAmbiguousRows(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	log := &NotificationLog{CampaignID: &a, OrderID: &b}

	_, ok := log.Source()
	assert.False(t, ok)

	_, ok = (&NotificationLog{}).Source()
	assert.False(t, ok)
}

func TestCampaignStatus_In(t *testing.T) {
	allowed := []CampaignStatus{CampaignStatusDraft}

	assert.True(t, CampaignStatusDraft.In(allowed))
	assert.False(t, CampaignStatusSending.In(allowed))
	assert.False(t, CampaignStatusDraft.In(nil))
}

func TestClampPageRequest(t *testing.T) {
	tests := []struct {
		page, limit, max  int
		wantPage, wantLim int
	}{
		{page: 0, limit: 0, max: 100, wantPage: 1, wantLim: DefaultPageLimit},
		{page: -3, limit: 2, max: 100, wantPage: 1, wantLim: MinPageLimit},
		{page: 4, limit: 500, max: 100, wantPage: 4, wantLim: 100},
		{page: 2, limit: 60, max: 50, wantPage: 2, wantLim: 50},
	}

	for _, tt := range tests {
		page, limit := ClampPageRequest(tt.page, tt.limit, tt.max)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLim, limit)
	}
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(9, 10, 25)

	assert.Equal(t, PageMeta{Page: 3, Limit: 10, Total: 25, TotalPages: 3, HasPrev: true, HasNext: false}, meta)
	assert.Equal(t, 20, meta.Offset())

	empty := NewPageMeta(2, 10, 0)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasPrev)
	assert.False(t, empty.HasNext)
	assert.Equal(t, 0, empty.Offset())
}
