package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// AuthService validates credentials and issues session tokens.
type AuthService interface {
	// Login returns a signed session token. Unknown email and wrong
	// password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Profile returns the account behind an authenticated user id.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
