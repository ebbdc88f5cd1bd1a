package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// StartRegistrationInput carries the fields of a registration request.
type StartRegistrationInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// RegistrationService stages registrations behind an emailed OTP and promotes
// them into durable users on successful verification.
type RegistrationService interface {
	// Start validates the input, stages the registration and triggers OTP
	// delivery. It returns the opaque staging token; the code itself is
	// only ever sent to the registrant's email.
	Start(ctx context.Context, input StartRegistrationInput) (string, error)

	// Verify consumes the staged registration for token and, when the code
	// matches before expiry, promotes it into a durable user. The staged
	// entry is removed on every attempt regardless of outcome.
	Verify(ctx context.Context, token, code string) (*domain.User, error)
}
