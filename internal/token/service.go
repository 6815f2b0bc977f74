package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claim validation.
var ErrInvalidToken = errors.New("invalid token")

// Token is the parsed view of a signed bearer token.
type Token struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service signs and verifies bearer tokens.
type Service interface {
	GenerateToken(userID string, expiry time.Duration) (string, error)
	ParseToken(tokenString string) (*Token, error)
}

// hmacService implements Service with HMAC-SHA256 signing.
type hmacService struct {
	secret []byte
}

// NewService creates a Service signing with the given secret.
// The secret must be at least 32 bytes; config validation enforces the same
// bound, this guards direct construction.
func NewService(secret string) (Service, error) {
	if len(secret) < 32 {
		return nil, errors.New("token: secret must be at least 32 bytes")
	}
	return &hmacService{secret: []byte(secret)}, nil
}

// GenerateToken issues a signed token for the given user ID.
func (s *hmacService) GenerateToken(userID string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		return "", errors.New("token: expiry must be positive")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies the signature and registered claims of tokenString.
func (s *hmacService) ParseToken(tokenString string) (*Token, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	tok := &Token{UserID: claims.Subject}
	if claims.IssuedAt != nil {
		tok.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		tok.ExpiresAt = claims.ExpiresAt.Time
	}
	return tok, nil
}
