package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

var domainErrorCodes = map[error]int{
	domain.ErrMissingFields:        http.StatusBadRequest,
	domain.ErrPasswordMismatch:     http.StatusBadRequest,
	domain.ErrUserExists:           http.StatusBadRequest,
	domain.ErrRegistrationNotFound: http.StatusBadRequest,
	domain.ErrOTPExpired:           http.StatusBadRequest,
	domain.ErrOTPMismatch:          http.StatusBadRequest,
	domain.ErrInsufficientStock:    http.StatusBadRequest,
	domain.ErrInvalidCredentials:   http.StatusUnauthorized,
	domain.ErrForbidden:            http.StatusForbidden,
	domain.ErrProductNotFound:      http.StatusNotFound,
	domain.ErrOrderNotFound:        http.StatusNotFound,
	domain.ErrUserNotFound:         http.StatusNotFound,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors get deterministic HTTP codes and their canonical
	// message, even when wrapped with context. Duplicate email maps to 400
	// rather than 409: the registration endpoint reports every rejected
	// input the same way.
	for sentinel, code := range domainErrorCodes {
		if errors.Is(err, sentinel) {
			return code, sentinel.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
