package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPreference_Channels_FixedOrder(t *testing.T) {
	pref := NewPreference(uuid.New())
	pref.OffersSMS = true
	pref.OffersPush = true

	assert.Equal(t, []Channel{ChannelPush, ChannelSMS}, pref.Channels(CategoryOffers))
	assert.Empty(t, pref.Channels(CategoryNewsletter))
}

func TestPreference_Channels_NilPreference(t *testing.T) {
	var pref *Preference

	assert.Nil(t, pref.Channels(CategoryOffers))
	assert.False(t, pref.Enabled(CategoryOffers, ChannelPush))
}

func TestPreference_SyncLegacy_IsOrOfChannels(t *testing.T) {
	pref := NewPreference(uuid.New())
	pref.Offers = true
	pref.OrderUpdatesEmail = true

	pref.SyncLegacy()

	assert.False(t, pref.Offers)
	assert.True(t, pref.OrderUpdates)
	assert.False(t, pref.Newsletter)
}

func TestPreference_ApplyLegacy_ExpandsToAllChannels(t *testing.T) {
	pref := NewPreference(uuid.New())

	pref.ApplyLegacy(CategoryNewsletter, true)
	pref.SyncLegacy()

	assert.Equal(t, AllChannels, pref.Channels(CategoryNewsletter))
	assert.True(t, pref.Newsletter)

	pref.ApplyLegacy(CategoryNewsletter, false)
	pref.SyncLegacy()

	assert.Empty(t, pref.Channels(CategoryNewsletter))
	assert.False(t, pref.Newsletter)
}

func TestPreference_Set_IgnoresUnknownPairs(t *testing.T) {
	pref := NewPreference(uuid.New())

	pref.Set(Category("unknown"), ChannelPush, true)
	pref.Set(CategoryOffers, Channel("fax"), true)

	assert.Empty(t, pref.Channels(CategoryOffers))
}
