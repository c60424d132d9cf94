package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tictactask/internal/httpx"
	"tictactask/internal/models"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service exposes the users REST surface
type Service struct {
	app UsersApp
}

// NewService creates a new users service
func NewService(app UsersApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the users endpoints on the router. The delete route
// requires a bearer token; everything else matches the open surface of the
// original API.
func (s *Service) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Post("/", s.handleCreate)
		r.With(authenticate).Delete("/{id}", s.handleDelete)
	})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.app.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list users")
		httpx.Error(w, http.StatusInternalServerError, "Error retrieving user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"users_list": list})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := s.app.GetUser(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("get user")
		httpx.Error(w, http.StatusInternalServerError, "Error retrieving user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := s.app.CreateUser(r.Context(), req)
	if errors.Is(err, ErrUsernameTaken) {
		httpx.Error(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("create user")
		httpx.Error(w, http.StatusInternalServerError, "Error saving user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	err = s.app.DeleteUser(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("delete user")
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
