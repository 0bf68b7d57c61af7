package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ams/internal/domain/auth"
	"ams/internal/domain/directory"
	"ams/internal/platform/session"
	"ams/internal/transport/http/api"
	"ams/internal/transport/http/middleware"
)

// SessionKey is the fixed key the authenticated user is cached under, kept
// for parity with the original client-side storage key.
const SessionKey = "ams_user"

type Handler struct {
	Users    *directory.Store
	Sessions *session.Cache
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(users *directory.Store, sessions *session.Cache, secret string, ttl time.Duration) *Handler {
	return &Handler{Users: users, Sessions: sessions, Secret: secret, TokenTTL: ttl}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token        string         `json:"token"`
	User         directory.User `json:"user"`
	FeatureAreas []string       `json:"featureAreas"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, err := h.Users.GetByEmail(payload.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	hash, ok := h.Users.PasswordHash(user.ID)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: user.ID, Name: user.Name, Role: user.Role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Sessions.Put(SessionKey, user); err != nil {
		slog.Warn("session cache write failed", "err", err)
	}

	api.Success(w, loginResponse{
		Token:        token,
		User:         user,
		FeatureAreas: auth.FeatureAreas[user.Role],
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(SessionKey); err != nil {
		slog.Warn("session cache clear failed", "err", err)
	}
	api.Success(w, map[string]any{"loggedOut": true}, middleware.GetRequestID(r.Context()))
}

// HandleSession restores the cached user after a restart. The cache is a
// convenience, not a credential: the response carries no token, so the
// client still has to log in before mutating anything.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	var user directory.User
	err := h.Sessions.Get(SessionKey, &user)
	if errors.Is(err, session.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "no_session", "no cached session", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "session_failed", "failed to read session cache", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"user":         user,
		"featureAreas": auth.FeatureAreas[user.Role],
	}, middleware.GetRequestID(r.Context()))
}
