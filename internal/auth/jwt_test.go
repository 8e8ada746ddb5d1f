package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tradejournal/internal/config"
)

func mintToken(t *testing.T, secret, issuer, subject string, method jwt.SigningMethod) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestVerify_OK(t *testing.T) {
	v := NewVerifier(config.AuthConfig{Secret: "s3cret", Issuer: "tradejournal-idp"})
	tok := mintToken(t, "s3cret", "tradejournal-idp", "user-123", jwt.SigningMethodHS256)
	owner, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if owner != "user-123" {
		t.Fatalf("owner=%q want user-123", owner)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(config.AuthConfig{Secret: "right", Issuer: "tradejournal-idp"})
	tok := mintToken(t, "wrong", "tradejournal-idp", "user-123", jwt.SigningMethodHS256)
	if _, err := v.Verify(tok); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := NewVerifier(config.AuthConfig{Secret: "s3cret", Issuer: "tradejournal-idp"})
	tok := mintToken(t, "s3cret", "someone-else", "user-123", jwt.SigningMethodHS256)
	if _, err := v.Verify(tok); err == nil {
		t.Fatalf("expected error for wrong issuer")
	}
}

func TestVerify_EmptySubject(t *testing.T) {
	v := NewVerifier(config.AuthConfig{Secret: "s3cret", Issuer: "tradejournal-idp"})
	tok := mintToken(t, "s3cret", "tradejournal-idp", "", jwt.SigningMethodHS256)
	if _, err := v.Verify(tok); err == nil {
		t.Fatalf("expected error for empty subject")
	}
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := bearerToken("bearer abc"); got != "abc" {
		t.Fatalf("case-insensitive scheme, got %q", got)
	}
	if got := bearerToken("Basic abc"); got != "" {
		t.Fatalf("non-bearer scheme must be rejected, got %q", got)
	}
	if got := bearerToken(""); got != "" {
		t.Fatalf("empty header, got %q", got)
	}
}
