package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"relay/config"
	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(batchSize int, deliveryTimeout time.Duration) *config.Config {
	return &config.Config{
		Scheduler: &config.SchedulerConfig{
			BatchSize:       batchSize,
			DeliveryTimeout: deliveryTimeout,
		},
	}
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newCandidate(city string, active bool, pref *entity.Preference) entity.RecipientCandidate {
	id := uuid.New()
	if pref != nil {
		pref.UserID = id
	}

	return entity.RecipientCandidate{
		User: &entity.User{
			ID:         id,
			City:       &city,
			IsActive:   active,
			Role:       entity.RoleUser,
			Preference: pref,
		},
	}
}

func offersPreference(push, email, sms bool) *entity.Preference {
	pref := &entity.Preference{OffersPush: push, OffersEmail: email, OffersSMS: sms}
	pref.SyncLegacy()

	return pref
}

func newsletterPreference(push, email, sms bool) *entity.Preference {
	pref := &entity.Preference{NewsletterPush: push, NewsletterEmail: email, NewsletterSMS: sms}
	pref.SyncLegacy()

	return pref
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
