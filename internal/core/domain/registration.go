package domain

import (
	"errors"
	"time"
)

// StagedRegistration is a registration waiting for OTP confirmation. It lives
// only in the pending-registration store, keyed by an opaque staging token,
// and is consumed on the first verification attempt whatever the outcome.
type StagedRegistration struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Code         string    `json:"code"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the staged registration is past its deadline.
func (r *StagedRegistration) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

var ErrRegistrationNotFound = errors.New("invalid or expired token")
var ErrOTPExpired = errors.New("OTP expired")
var ErrOTPMismatch = errors.New("incorrect OTP")
var ErrMissingFields = errors.New("all fields are required")
var ErrPasswordMismatch = errors.New("passwords do not match")
