package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// UserRepository defines persistence for verified users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
