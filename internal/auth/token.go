package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, or past expiry. Callers must not need to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenService issues and verifies HS256-signed session tokens. It is
// stateless: revocation is tracked separately by a RevocationList.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service. An empty secret is a configuration
// error: issuing unsigned tokens is never acceptable.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token embedding the user id and an expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims. Any
// failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return TokenClaims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return TokenClaims{}, ErrInvalidToken
	}

	return TokenClaims{UserID: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}
