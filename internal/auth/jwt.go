package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"tradejournal/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload minted by the identity provider. Subject carries
// the owner id that scopes every query.
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier checks tokens issued by the external identity provider. The service
// trusts the verified subject and performs no further credential checks.
type Verifier struct {
	Secret []byte
	Issuer string
}

func NewVerifier(cfg config.AuthConfig) Verifier {
	return Verifier{
		Secret: []byte(cfg.Secret),
		Issuer: cfg.Issuer,
	}
}

// Verify parses the token and returns the owner id (the subject claim).
func (v Verifier) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return "", err
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if v.Issuer != "" && c.Issuer != v.Issuer {
		return "", ErrInvalidToken
	}
	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
