package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"relay/internal/domain/entity"
	"relay/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for Postgres with serializable
// transactions and conditional status writes.
type memoryStore struct {
	txMu sync.Mutex // held for the whole of a transaction

	mu          sync.Mutex
	campaigns   map[uuid.UUID]*entity.Campaign
	candidates  []entity.RecipientCandidate
	logs        []*entity.NotificationLog
	transitions map[uuid.UUID][]entity.CampaignStatus
}

func newMemoryStore(candidates []entity.RecipientCandidate, campaigns ...*entity.Campaign) *memoryStore {
	s := &memoryStore{
		campaigns:   make(map[uuid.UUID]*entity.Campaign),
		candidates:  candidates,
		transitions: make(map[uuid.UUID][]entity.CampaignStatus),
	}
	for _, c := range campaigns {
		copied := *c
		s.campaigns[c.ID] = &copied
	}

	return s
}

func (s *memoryStore) campaign(id uuid.UUID) entity.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.campaigns[id]
}

func (s *memoryStore) logsFor(id uuid.UUID) []*entity.NotificationLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.NotificationLog
	for _, l := range s.logs {
		if l.CampaignID != nil && *l.CampaignID == id {
			out = append(out, l)
		}
	}

	return out
}

// countTransitions returns how many times id moved into status.
func (s *memoryStore) countTransitions(id uuid.UUID, status entity.CampaignStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, to := range s.transitions[id] {
		if to == status {
			n++
		}
	}

	return n
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	campaigns := make(map[uuid.UUID]entity.Campaign, len(s.campaigns))
	for id, c := range s.campaigns {
		campaigns[id] = *c
	}
	transitions := make(map[uuid.UUID][]entity.CampaignStatus, len(s.transitions))
	for id, t := range s.transitions {
		transitions[id] = slices.Clone(t)
	}
	logCount := len(s.logs)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		for id, c := range campaigns {
			restored := c
			s.campaigns[id] = &restored
		}
		s.transitions = transitions
		s.logs = s.logs[:logCount]
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *memoryStore) NewUserRepository() repository.UserRepository         { return memoryUserRepo{s} }
func (s *memoryStore) NewCampaignRepository() repository.CampaignRepository { return memoryCampaignRepo{s} }
func (s *memoryStore) NewNotificationRepository() repository.NotificationRepository {
	return memoryNotificationRepo{s}
}
func (s *memoryStore) NewNewsletterRepository() repository.NewsletterRepository { return nil }

type memoryCampaignRepo struct{ s *memoryStore }

func (r memoryCampaignRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, repository.ErrCampaignNotFound
	}
	copied := *c

	return &copied, nil
}

func (r memoryCampaignRepo) Count(context.Context, repository.CampaignFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.campaigns)), nil
}

func (r memoryCampaignRepo) List(context.Context, repository.CampaignFilter) ([]*entity.Campaign, error) {
	return nil, nil
}

func (r memoryCampaignRepo) Create(_ context.Context, campaign *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	copied := *campaign
	r.s.campaigns[campaign.ID] = &copied

	return nil
}

func (r memoryCampaignRepo) UpdateContent(_ context.Context, campaign *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.campaigns[campaign.ID]
	if !ok || current.Status != entity.CampaignStatusDraft {
		return repository.ErrCampaignNotEditable
	}
	copied := *campaign
	r.s.campaigns[campaign.ID] = &copied

	return nil
}

func (r memoryCampaignRepo) FindDueScheduled(_ context.Context, now time.Time, limit int) ([]*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var due []*entity.Campaign
	for _, c := range r.s.campaigns {
		if c.Status == entity.CampaignStatusScheduled && c.ScheduledAt != nil && !c.ScheduledAt.After(now) {
			copied := *c
			due = append(due, &copied)
		}
	}
	slices.SortFunc(due, func(a, b *entity.Campaign) int { return a.ScheduledAt.Compare(*b.ScheduledAt) })

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	return due, nil
}

func (r memoryCampaignRepo) TransitionStatus(_ context.Context, id uuid.UUID, t repository.StatusTransition) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.campaigns[id]
	if !ok || !c.Status.In(t.From) {
		return false, nil
	}

	c.Status = t.To
	switch {
	case t.ClearSchedule:
		c.ScheduledAt = nil
	case t.ScheduleAt != nil:
		at := *t.ScheduleAt
		c.ScheduledAt = &at
	}
	r.s.transitions[id] = append(r.s.transitions[id], t.To)

	return true, nil
}

type memoryUserRepo struct{ s *memoryStore }

func (r memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, c := range r.s.candidates {
		if c.User.ID == id {
			return c.User, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memoryUserRepo) FindRecipientCandidates(context.Context, entity.RecipientCriteria) ([]entity.RecipientCandidate, error) {
	return r.s.candidates, nil
}

type memoryNotificationRepo struct{ s *memoryStore }

func (r memoryNotificationRepo) BatchCreateNotificationLogs(_ context.Context, logs []*entity.NotificationLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.logs = append(r.s.logs, logs...)

	return nil
}

func (r memoryNotificationRepo) CountNotificationLogs(context.Context, entity.LogFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.logs)), nil
}

func (r memoryNotificationRepo) ListNotificationLogs(context.Context, entity.LogFilter) ([]*entity.NotificationLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Clone(r.s.logs), nil
}
