package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// RegistrationStore holds staged registrations keyed by their opaque staging
// token. Entries are transient: they disappear on the first Take or when
// their TTL elapses.
type RegistrationStore interface {
	Put(ctx context.Context, token string, reg *domain.StagedRegistration) error

	// Take atomically looks up and removes the entry for token. Two
	// concurrent Take calls for the same token must not both succeed.
	// Returns domain.ErrRegistrationNotFound when no entry exists.
	Take(ctx context.Context, token string) (*domain.StagedRegistration, error)
}
