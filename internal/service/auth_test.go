package service

import (
	"errors"
	"testing"
	"time"

	"github.com/marwanbukhori/commit-life/internal/repository"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, "test-secret", false, time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	user, err := svc.Signup("Marwan", "Marwan@Example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	if user.Email != "marwan@example.com" {
		t.Errorf("expected email lowercased, got %q", user.Email)
	}
	if user.GardenTitle != "Your Gardens" {
		t.Errorf("expected default garden title, got %q", user.GardenTitle)
	}
	if user.PasswordHash == nil || *user.PasswordHash == "correct horse battery" {
		t.Error("expected password stored as a hash")
	}

	logged, err := svc.Login("marwan@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("expected same user, got %q vs %q", logged.ID, user.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Signup("A", "a@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	_, err = svc.Signup("B", "a@example.com", "another long password")
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	_, err := svc.Signup("A", "a@example.com", "short")
	if err == nil {
		t.Fatal("expected error for short password, got nil")
	}

	_, err = svc.Signup("A", "a@example.com", "password12345")
	if err == nil {
		t.Fatal("expected error for common password, got nil")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Signup("A", "a@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	_, err = svc.Login("a@example.com", "wrong horse battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login("nobody@example.com", "correct horse battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	user, err := svc.Signup("A", "a@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	token, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	claims, err := svc.VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT returned error: %v", err)
	}

	if claims["user_id"] != user.ID {
		t.Errorf("expected user_id claim %q, got %v", user.ID, claims["user_id"])
	}
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})
	other := NewAuthService(&fakeUserRepo{}, "different-secret", false, time.Hour)

	user, err := svc.Signup("A", "a@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	token, err := other.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	_, err = svc.VerifyJWT(token)
	if err == nil {
		t.Fatal("expected verification failure for wrong secret, got nil")
	}
}
