package matches

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tictactask/internal/httpx"
	"tictactask/internal/models"
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatchesForUser(ctx context.Context, userID int64) ([]models.Match, error)
	AddUser2(ctx context.Context, matchID, user2ID int64) (*models.Match, error)
	MarkComplete(ctx context.Context, matchID int64) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int64) error
}

// Service exposes the matches REST surface
type Service struct {
	app MatchesApp
}

// NewService creates a new matches service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the matches endpoints on the router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/matches", func(r chi.Router) {
		r.Get("/{id}", s.handleGet)
		r.Get("/user/{userId}", s.handleListForUser)
		r.Post("/", s.handleCreate)
		r.Patch("/{id}/addUser2", s.handleAddUser2)
		r.Patch("/{id}/complete", s.handleComplete)
		r.Delete("/{id}", s.handleDelete)
	})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	match, err := s.app.GetMatch(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("match_id", id).Msg("get match")
		httpx.Error(w, http.StatusInternalServerError, "Error fetching match")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (s *Service) handleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	list, err := s.app.ListMatchesForUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("list matches for user")
		httpx.Error(w, http.StatusInternalServerError, "Error fetching matches")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"matches": list})
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	match, err := s.app.CreateMatch(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("create match")
		httpx.Error(w, http.StatusInternalServerError, "Error creating match")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, match)
}

func (s *Service) handleAddUser2(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	var req JoinMatchRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	match, err := s.app.AddUser2(r.Context(), id, req.User2ID)
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "Match not found")
		return
	case errors.Is(err, ErrAlreadyJoined):
		httpx.Error(w, http.StatusConflict, "Match already has a second player")
		return
	case err != nil:
		log.Error().Err(err).Int64("match_id", id).Msg("add user2 to match")
		httpx.Error(w, http.StatusInternalServerError, "Error updating match")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (s *Service) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	match, err := s.app.MarkComplete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("match_id", id).Msg("mark match complete")
		httpx.Error(w, http.StatusInternalServerError, "Error marking match complete")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	err = s.app.DeleteMatch(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("match_id", id).Msg("delete match")
		httpx.Error(w, http.StatusInternalServerError, "Error deleting match")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
