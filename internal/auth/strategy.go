package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayush/chat-app/backend/internal/models"
	"github.com/ayush/chat-app/backend/internal/store"
)

// ErrUnauthenticated is the single verdict for every credential failure:
// unknown email, wrong password, and invalid or stale tokens all collapse to
// it so nothing about account existence leaks to the caller.
var ErrUnauthenticated = errors.New("unauthenticated")

// UserStore defines the interface for user persistence. Emails passed in must
// be normalized.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// NormalizeEmail trims whitespace and lowercases, matching how emails are
// stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthenticateLocal is the email+password strategy used by login.
func AuthenticateLocal(ctx context.Context, users UserStore, email, password string) (*models.User, error) {
	user, err := users.GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := CheckPassword(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// AuthenticateToken is the cookie-token strategy used on protected routes.
// It verifies the token and resolves the subject to a live user record; a
// subject that no longer exists is just as unauthenticated as a bad token.
func AuthenticateToken(ctx context.Context, tokens *TokenService, users UserStore, raw string) (*models.User, error) {
	subject, err := tokens.Verify(raw)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := users.GetUserByID(ctx, subject)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return user, nil
}

type contextKey string

const userContextKey contextKey = "user"

// ContextWithUser returns a context carrying the authenticated user.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user attached by the token
// middleware, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
