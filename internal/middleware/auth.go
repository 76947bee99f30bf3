package middleware

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ayush/chat-app/backend/internal/api"
	"github.com/ayush/chat-app/backend/internal/auth"
)

// TokenAuth verifies the access token cookie and attaches the resolved user
// to the request context. An unauthenticated verdict never writes the
// response: the request continues without a user and the route handler
// decides the 401, so handlers keep control over the payload shape. A store
// failure during resolution is an internal fault, not a verdict, and is
// logged and answered with a 500 here.
func TokenAuth(tokens *auth.TokenService, users auth.UserStore, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ""
			if cookie, err := r.Cookie(auth.AccessTokenCookie); err == nil {
				raw = cookie.Value
			}

			user, err := auth.AuthenticateToken(r.Context(), tokens, users, raw)
			switch {
			case err == nil:
				r = r.WithContext(auth.ContextWithUser(r.Context(), user))
			case errors.Is(err, auth.ErrUnauthenticated):
				// proceed without a user; the handler owns the 401
			default:
				log.WithError(err).Error("token authentication")
				api.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
