package identity

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Signup(ctx, Credentials{Username: "ana", Password: "secret1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if string(user.PasswordHash) == "secret1" {
		t.Fatalf("password stored in plain text")
	}

	authed, err := svc.Authenticate(ctx, "ana", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, authed.ID)
	}
}

func TestSignupHashesDifferPerCall(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, err := svc.Signup(ctx, Credentials{Username: "u1", Password: "secret1"})
	if err != nil {
		t.Fatalf("signup u1: %v", err)
	}
	second, err := svc.Signup(ctx, Credentials{Username: "u2", Password: "secret1"})
	if err != nil {
		t.Fatalf("signup u2: %v", err)
	}
	if string(first.PasswordHash) == string(second.PasswordHash) {
		t.Fatalf("expected salted hashes to differ")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, Credentials{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, err := svc.Signup(ctx, Credentials{Username: "ana", Password: "other77"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestSignupShortPassword(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Signup(context.Background(), Credentials{Username: "ana", Password: "abc"})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, Credentials{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "ana", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
