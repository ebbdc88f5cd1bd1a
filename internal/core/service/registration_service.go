package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

const defaultOTPTTL = 5 * time.Minute

// RegistrationService implements the staged email-OTP registration flow.
type RegistrationService struct {
	users   ports.UserRepository
	staging ports.RegistrationStore
	mirror  ports.UserMirror
	mailer  ports.Mailer
	otpTTL  time.Duration
	logger  zerolog.Logger
}

func NewRegistrationService(
	users ports.UserRepository,
	staging ports.RegistrationStore,
	mirror ports.UserMirror,
	mailer ports.Mailer,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *RegistrationService {
	if otpTTL <= 0 {
		otpTTL = defaultOTPTTL
	}
	return &RegistrationService{
		users:   users,
		staging: staging,
		mirror:  mirror,
		mailer:  mailer,
		otpTTL:  otpTTL,
		logger:  logger,
	}
}

// Start stages a registration and emails the OTP code. Delivery failure is
// logged but does not fail the request, so the staging token can still be
// used once the code is read out-of-band.
func (s *RegistrationService) Start(ctx context.Context, input ports.StartRegistrationInput) (string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" || input.Confirm == "" {
		return "", domain.ErrMissingFields
	}
	if input.Password != input.Confirm {
		return "", domain.ErrPasswordMismatch
	}

	// Best-effort duplicate check; the unique index on users.email catches
	// the race between staging and promotion.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	token := uuid.NewString()
	reg := &domain.StagedRegistration{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Code:         code,
		ExpiresAt:    time.Now().UTC().Add(s.otpTTL),
	}
	if err := s.staging.Put(ctx, token, reg); err != nil {
		return "", fmt.Errorf("stage registration: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code, s.otpTTL); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("OTP delivery failed, registration continues")
	}

	s.logger.Info().Str("email", email).Msg("registration staged")
	return token, nil
}

// Verify consumes the staged registration and promotes it into a durable
// user when the code matches before expiry. The entry is removed on every
// attempt, so a second call with the same token always fails.
func (s *RegistrationService) Verify(ctx context.Context, token, code string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrRegistrationNotFound
	}

	reg, err := s.staging.Take(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if reg.Expired(now) {
		return nil, domain.ErrOTPExpired
	}
	if reg.Code != code {
		return nil, domain.ErrOTPMismatch
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Secondary mirror write is best-effort; the primary insert above is
	// authoritative.
	if err := s.mirror.SaveUser(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.UserID).Msg("mirror write failed")
	}

	s.logger.Info().Str("user_id", user.UserID).Str("email", user.Email).Msg("registration verified")
	return user, nil
}

// generateOTPCode draws a 6-digit code from crypto/rand (1e6 outcomes).
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
