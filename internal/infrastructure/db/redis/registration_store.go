package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storelane/commerce-api/internal/core/domain"
)

const stagingKeyPrefix = "pending_registration:"

// RegistrationStore implements ports.RegistrationStore backed by Redis.
// The key TTL doubles as the expiry sweep: an abandoned entry disappears on
// its own, and GETDEL makes Take consume-on-access atomic across processes.
type RegistrationStore struct {
	client *redis.Client
}

// NewRegistrationStore wraps the given Redis client.
func NewRegistrationStore(client *redis.Client) *RegistrationStore {
	return &RegistrationStore{client: client}
}

func (s *RegistrationStore) Put(ctx context.Context, token string, reg *domain.StagedRegistration) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("encode staged registration: %w", err)
	}

	// Keep the entry slightly past ExpiresAt so an in-flight verification
	// still observes ErrOTPExpired rather than a vanished token.
	ttl := time.Until(reg.ExpiresAt) + time.Minute
	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := s.client.Set(ctx, stagingKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store staged registration: %w", err)
	}
	return nil
}

func (s *RegistrationStore) Take(ctx context.Context, token string) (*domain.StagedRegistration, error) {
	payload, err := s.client.GetDel(ctx, stagingKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("take staged registration: %w", err)
	}

	var reg domain.StagedRegistration
	if err := json.Unmarshal(payload, &reg); err != nil {
		return nil, fmt.Errorf("decode staged registration: %w", err)
	}
	return &reg, nil
}
