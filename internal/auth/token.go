package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenIssuer is the fixed issuer claim on every token.
	TokenIssuer = "chat-app"
	// TokenTTL is how long an issued token stays valid. There is no
	// server-side revocation; a token remains valid until this expiry
	// regardless of logout.
	TokenTTL = time.Hour
	// AccessTokenCookie is the cookie carrying the token.
	AccessTokenCookie = "access_token"
)

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed or absent token.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed tokens used as stateless
// sessions. The signing secret is loaded once at startup and read-only
// afterwards.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// Issue produces a signed token bound to userID, expiring in TokenTTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		ID:        uuid.New().String(),
	})
	return token.SignedString(s.secret)
}

// Verify checks signature, issuer and expiry and returns the subject user id.
// It does not check that the subject still exists; that resolution belongs to
// the token strategy.
func (s *TokenService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
