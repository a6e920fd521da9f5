package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestSignAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, exp, err := m.Sign("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("Email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Second)

	tok, _, err := m.Sign("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Sign("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := NewJWTManager("wrong-secret", time.Hour).Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_Mutated(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Sign("u3", "u3@x.com")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token structure: %q", tok)
	}
	mutated := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := m.Parse(mutated); err == nil {
		t.Fatalf("expected error for mutated payload, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour)
	if _, err := m.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
