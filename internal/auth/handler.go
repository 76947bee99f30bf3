package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ayush/chat-app/backend/internal/api"
	"github.com/ayush/chat-app/backend/internal/models"
	"github.com/ayush/chat-app/backend/internal/store"
	"github.com/ayush/chat-app/backend/internal/validate"
)

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users  UserStore
	tokens *TokenService
	log    *logrus.Logger
}

func NewHandler(users UserStore, tokens *TokenService, log *logrus.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, log: log}
}

// Register creates a new user. The stored password is the bcrypt hash, never
// the plaintext.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, api.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	input, verr := validate.Register(&req)
	if verr != nil {
		api.WriteError(w, api.NewError(http.StatusBadRequest, verr.Message))
		return
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		h.log.WithError(err).Error("hash password")
		api.WriteError(w, err)
		return
	}

	_, err = h.users.CreateUser(r.Context(), input.Name, NormalizeEmail(input.Email), hashed)
	if errors.Is(err, store.ErrDuplicateEmail) {
		api.WriteError(w, api.NewError(http.StatusBadRequest, "Email is already in use"))
		return
	}
	if err != nil {
		h.log.WithError(err).Error("create user")
		api.WriteError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusCreated, "Successfully created account!")
}

// Login authenticates email+password and sets the access token cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, api.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	input, verr := validate.Login(&req)
	if verr != nil {
		api.WriteError(w, api.NewError(http.StatusBadRequest, verr.Message))
		return
	}

	user, err := AuthenticateLocal(r.Context(), h.users, input.Email, input.Password)
	if errors.Is(err, ErrUnauthenticated) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("local authentication")
		api.WriteError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		h.log.WithError(err).Error("issue token")
		api.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TokenTTL.Seconds()),
	})

	api.WriteSuccess(w, http.StatusOK, models.AuthPayload{
		IsAuthenticated: true,
		Message:         "Successfully logged in!",
		User:            user,
	})
}

// IsAuthenticated reports whether the caller carries a valid token. The token
// middleware resolves the user; this handler owns the 401.
func (h *Handler) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	api.WriteSuccess(w, http.StatusOK, models.AuthPayload{
		IsAuthenticated: true,
		Message:         "User is authenticated",
		User:            user,
	})
}

// Logout clears the access token cookie. Always succeeds, whether or not a
// session existed; the token itself stays valid until its natural expiry.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	api.WriteSuccess(w, http.StatusOK, models.AuthPayload{IsAuthenticated: false})
}
