package ports

import (
	"context"
	"time"
)

// Mailer delivers OTP codes to a registrant's email address. Implementations
// may deliver asynchronously; callers treat delivery failure as non-fatal.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string, validFor time.Duration) error
}
