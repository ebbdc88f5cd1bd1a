package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// UserMirror is the secondary relational sink for promoted users. Writes are
// best-effort: the primary store remains authoritative and a mirror failure
// must never fail the promotion.
type UserMirror interface {
	SaveUser(ctx context.Context, user *domain.User) error
}
