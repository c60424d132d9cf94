package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tictactask/internal/httpx"
	"tictactask/internal/users"
)

// AuthApp defines what the service layer needs from the auth application
type AuthApp interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) (int64, error)
}

// Credentials is the login/signup payload. The password field is named pwd
// to stay wire-compatible with existing clients.
type Credentials struct {
	Username string `json:"username"`
	Pwd      string `json:"pwd"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Service exposes the signup/login endpoints
type Service struct {
	app AuthApp
}

// NewService creates a new auth service
func NewService(app AuthApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the auth endpoints on the router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Post("/signup", s.handleSignup)
	r.Post("/login", s.handleLogin)
}

func (s *Service) handleSignup(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := httpx.ReadJSON(w, r, &creds); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Bad request: Invalid input data.")
		return
	}
	token, err := s.app.Register(r.Context(), creds.Username, creds.Pwd)
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, "Bad request: Invalid input data.")
		return
	case errors.Is(err, users.ErrUsernameTaken):
		httpx.Error(w, http.StatusConflict, "Username already taken")
		return
	case err != nil:
		log.Error().Err(err).Msg("signup")
		httpx.Error(w, http.StatusInternalServerError, "Error saving user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := httpx.ReadJSON(w, r, &creds); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, err := s.app.Login(r.Context(), creds.Username, creds.Pwd)
	if errors.Is(err, ErrUnauthorized) {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("login")
		httpx.Error(w, http.StatusInternalServerError, "Error logging in")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}
