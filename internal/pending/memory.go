// Package pending provides the in-process pending-registration table: a
// mutex-guarded map from staging token to staged registration. Entries are
// consumed on first access; a background sweeper additionally evicts entries
// whose TTL elapsed without a verification attempt.
package pending

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
)

const defaultSweepInterval = time.Minute

// MemoryStore implements ports.RegistrationStore with process-local state.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*domain.StagedRegistration
	logger  zerolog.Logger
}

func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*domain.StagedRegistration),
		logger:  logger,
	}
}

func (s *MemoryStore) Put(_ context.Context, token string, reg *domain.StagedRegistration) error {
	clone := *reg
	s.mu.Lock()
	s.entries[token] = &clone
	s.mu.Unlock()
	return nil
}

// Take removes and returns the entry for token. The lookup and delete happen
// under one lock acquisition, so of two concurrent Take calls for the same
// token exactly one succeeds.
func (s *MemoryStore) Take(_ context.Context, token string) (*domain.StagedRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.entries[token]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	delete(s.entries, token)
	return reg, nil
}

// StartSweeper launches a background goroutine that evicts expired entries
// until ctx is cancelled. Without it, abandoned registrations would only be
// cleaned up on access.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.evictExpired(time.Now().UTC()); n > 0 {
					s.logger.Debug().Int("evicted", n).Msg("expired registrations swept")
				}
			}
		}
	}()
}

func (s *MemoryStore) evictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, reg := range s.entries {
		if reg.Expired(now) {
			delete(s.entries, token)
			n++
		}
	}
	return n
}
