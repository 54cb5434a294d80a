package services

import (
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("secret", time.Hour)

	token, err := m.Issue("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("userID = %q, want %q", userID, "user-123")
	}
}

func TestSessionRejectsExpired(t *testing.T) {
	m := NewSessionManager("secret", -time.Minute)

	token, err := m.Issue("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Validate(token); err != ErrAuthInvalidToken {
		t.Errorf("expired token: err = %v, want ErrAuthInvalidToken", err)
	}
}

func TestSessionRejectsTampered(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != ErrAuthInvalidToken {
		t.Errorf("wrong secret: err = %v, want ErrAuthInvalidToken", err)
	}
	if _, err := verifier.Validate("not-a-token"); err != ErrAuthInvalidToken {
		t.Errorf("garbage token: err = %v, want ErrAuthInvalidToken", err)
	}
}
