package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/commerce-api/internal/core/domain"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, repo *stubUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{
		UserID:       "u-" + email,
		Name:         "Bob",
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	repo.byEmail[email] = u
	repo.byID[u.UserID] = u
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "bob@example.com", "hunter2!")
	svc := NewAuthService(repo, testSecret, 12*time.Hour)

	token, err := svc.Login(context.Background(), "bob@example.com", "hunter2!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["user_id"] != seeded.UserID {
		t.Errorf("claim user_id: want %q, got %v", seeded.UserID, claims["user_id"])
	}
	if claims["email"] != "bob@example.com" {
		t.Errorf("claim email: want %q, got %v", "bob@example.com", claims["email"])
	}
	if claims["name"] != "Bob" {
		t.Errorf("claim name: want %q, got %v", "Bob", claims["name"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("expected numeric exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 11*time.Hour || remaining > 12*time.Hour {
		t.Errorf("token lifetime out of range: %v", remaining)
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob@example.com", "hunter2!")
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Login(context.Background(), "  BOB@Example.com ", "hunter2!"); err != nil {
		t.Errorf("case and whitespace in email must not matter: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob@example.com", "hunter2!")
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Login(context.Background(), "bob@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob@example.com", "hunter2!")
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "hunter2!")
	_, errWrongPw := svc.Login(context.Background(), "bob@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	// Both failures must look identical to the caller.
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("login failures must be indistinguishable: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "bob@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "bob@example.com", "hunter2!")
	svc := NewAuthService(repo, testSecret, time.Hour)

	user, err := svc.Profile(context.Background(), seeded.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != seeded.Email {
		t.Errorf("expected email %q, got %q", seeded.Email, user.Email)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
