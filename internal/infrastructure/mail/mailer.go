// Package mail delivers OTP codes over SMTP using gomail. When no SMTP
// credentials are configured the sender runs in dev mode and logs the code
// instead, mirroring the out-of-band fallback the registration flow relies on.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Config carries the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements ports.Mailer over a gomail dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

// NewSMTPMailer builds the sender. Returns a dev-mode sender (nil dialer)
// when host or credentials are missing.
func NewSMTPMailer(cfg Config, logger zerolog.Logger) *SMTPMailer {
	m := &SMTPMailer{from: cfg.From, logger: logger}
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		logger.Warn().Msg("SMTP not configured, OTP codes will be logged instead of emailed")
		return m
	}
	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if m.from == "" {
		m.from = cfg.Username
	}
	return m
}

// SendOTP emails the code to the registrant.
func (m *SMTPMailer) SendOTP(_ context.Context, to, code string, validFor time.Duration) error {
	if m.dialer == nil {
		m.logger.Info().Str("email", to).Str("code", code).Msg("dev mode OTP")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP Code - Verification")
	msg.SetBody("text/plain", otpBody(code, validFor))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send OTP mail: %w", err)
	}
	return nil
}

func otpBody(code string, validFor time.Duration) string {
	return fmt.Sprintf(
		"Hello,\n\nYour OTP code is: %s\n\nThis code is valid for %d minutes.\n\nThank you,\nStorelane Support Team\n",
		code, int(validFor.Minutes()),
	)
}
