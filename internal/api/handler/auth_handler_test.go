package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

type stubRegistrationService struct {
	startFn  func(ctx context.Context, input ports.StartRegistrationInput) (string, error)
	verifyFn func(ctx context.Context, token, code string) (*domain.User, error)
}

func (s *stubRegistrationService) Start(ctx context.Context, input ports.StartRegistrationInput) (string, error) {
	return s.startFn(ctx, input)
}

func (s *stubRegistrationService) Verify(ctx context.Context, token, code string) (*domain.User, error) {
	return s.verifyFn(ctx, token, code)
}

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (string, error)
	profileFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubRegistrationService{
		startFn: func(_ context.Context, input ports.StartRegistrationInput) (string, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token-abc", nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"pw","confirm":"pw"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "OTP sent successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
	if resp["otp_token"] != "token-abc" {
		t.Errorf("expected staging token in response, got %v", resp["otp_token"])
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubRegistrationService{
		startFn: func(context.Context, ports.StartRegistrationInput) (string, error) {
			t.Fatal("service must not be called on invalid payload")
			return "", nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"not-an-email","password":"pw","confirm":"pw"}`)

	err := h.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubRegistrationService{
		startFn: func(context.Context, ports.StartRegistrationInput) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"pw","confirm":"pw"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("domain error must pass through unchanged, got %v", err)
	}
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	stub := &stubRegistrationService{
		verifyFn: func(_ context.Context, token, code string) (*domain.User, error) {
			if token != "token-abc" || code != "123456" {
				t.Fatalf("unexpected args: %s %s", token, code)
			}
			return &domain.User{UserID: "u1", Email: "alice@example.com"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/verify_otp",
		`{"otp_token":"token-abc","otp":"123456"}`)

	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "OTP verified successfully, registration complete" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_VerifyOTP_Mismatch(t *testing.T) {
	stub := &stubRegistrationService{
		verifyFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrOTPMismatch
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/verify_otp",
		`{"otp_token":"token-abc","otp":"000000"}`)

	if err := h.VerifyOTP(c); !errors.Is(err, domain.ErrOTPMismatch) {
		t.Fatalf("expected ErrOTPMismatch, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "jwt-token", nil
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, rec := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "jwt-token" {
		t.Errorf("expected token in response, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, _ := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"bad"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			t.Fatal("service must not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, _ := newTestContext(t, http.MethodPost, "/api/login", "{")

	err := h.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
