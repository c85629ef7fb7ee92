package visitor

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

var (
	_ ports.VisitorStore    = (*MemoryStore)(nil)
	_ ports.OptionalChecker = (*MemoryStore)(nil)
)

// MemoryStore keeps visitor state in process. It serves when no database is
// configured; state is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	visitors map[string]*domain.VisitorState
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{visitors: make(map[string]*domain.VisitorState)}
}

// Load implements ports.VisitorStore. The returned state is a copy.
func (s *MemoryStore) Load(_ context.Context, visitorID string) (*domain.VisitorState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.visitors[visitorID]
	if !ok {
		return &domain.VisitorState{VisitorID: visitorID}, nil
	}

	out := *v
	out.SavedJobs = slices.Clone(v.SavedJobs)

	return &out, nil
}

// SaveJob implements ports.VisitorStore.
func (s *MemoryStore) SaveJob(_ context.Context, visitorID string, job domain.SavedJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.get(visitorID)
	if !v.IsSaved(job.CareerID) {
		v.SavedJobs = append(v.SavedJobs, job)
	}

	return nil
}

// RemoveJob implements ports.VisitorStore.
func (s *MemoryStore) RemoveJob(_ context.Context, visitorID, careerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[visitorID]
	if !ok {
		return nil
	}

	v.SavedJobs = slices.DeleteFunc(v.SavedJobs, func(j domain.SavedJob) bool {
		return j.CareerID == careerID
	})

	return nil
}

// MarkNewsletterDismissed implements ports.VisitorStore.
func (s *MemoryStore) MarkNewsletterDismissed(_ context.Context, visitorID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.get(visitorID).NewsletterDismissedAt = &at

	return nil
}

// MarkNewsletterSubscribed implements ports.VisitorStore.
func (s *MemoryStore) MarkNewsletterSubscribed(_ context.Context, visitorID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.get(visitorID)
	if v.NewsletterSubscribedAt == nil {
		v.NewsletterSubscribedAt = &at
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *MemoryStore) Name() string { return storeName }

// Check always passes; the map is usable for the life of the process.
func (s *MemoryStore) Check(context.Context) error { return nil }

// Optional implements ports.OptionalChecker.
func (s *MemoryStore) Optional() bool { return true }

// get returns the visitor, creating it. Callers hold the write lock.
func (s *MemoryStore) get(visitorID string) *domain.VisitorState {
	v, ok := s.visitors[visitorID]
	if !ok {
		v = &domain.VisitorState{VisitorID: visitorID}
		s.visitors[visitorID] = v
	}

	return v
}
