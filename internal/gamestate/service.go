// Package gamestate serves the combined poll endpoint: one call returning
// the match record plus both players' task lists, so polling clients avoid
// three round trips per tick.
package gamestate

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tictactask/internal/httpx"
	"tictactask/internal/matches"
	"tictactask/internal/models"
)

// MatchesApp defines what this service needs from the matches application
type MatchesApp interface {
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
}

// TasksApp defines what this service needs from the tasks application
type TasksApp interface {
	ListTasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error)
}

// GameState is the combined poll response.
type GameState struct {
	Success bool          `json:"success"`
	Match   *models.Match `json:"match"`
	Tasks   PlayerTasks   `json:"tasks"`
}

// PlayerTasks holds both players' task lists keyed by role.
type PlayerTasks struct {
	User1 []models.Task `json:"user1"`
	User2 []models.Task `json:"user2"`
}

// Service exposes the poll-game-state endpoint
type Service struct {
	matches MatchesApp
	tasks   TasksApp
}

// NewService creates a new game state service
func NewService(matchesApp MatchesApp, tasksApp TasksApp) *Service {
	return &Service{matches: matchesApp, tasks: tasksApp}
}

// RegisterRoutes mounts the poll endpoint on the router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/poll-game-state", s.handlePoll)
}

func (s *Service) handlePoll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("matchId") == "" || q.Get("user1Id") == "" {
		httpx.Error(w, http.StatusBadRequest, "matchId and user1Id are required")
		return
	}
	matchID, err := httpx.ParseID(q.Get("matchId"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "matchId and user1Id are required")
		return
	}
	user1ID, err := httpx.ParseID(q.Get("user1Id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "matchId and user1Id are required")
		return
	}

	match, err := s.matches.GetMatch(r.Context(), matchID)
	if errors.Is(err, matches.ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("match_id", matchID).Msg("poll game state: match")
		httpx.Error(w, http.StatusInternalServerError, "Error in polling game state")
		return
	}

	user1Tasks, err := s.tasks.ListTasksForUserMatch(r.Context(), user1ID, matchID)
	if err != nil {
		log.Error().Err(err).Int64("match_id", matchID).Msg("poll game state: user1 tasks")
		httpx.Error(w, http.StatusInternalServerError, "Error in polling game state")
		return
	}

	// The caller may name the opponent explicitly; otherwise fall back to
	// whatever the match record says.
	user2ID := int64(0)
	if v := q.Get("user2Id"); v != "" {
		user2ID, _ = httpx.ParseID(v)
	} else if match.User2ID != nil {
		user2ID = *match.User2ID
	}

	var user2Tasks []models.Task
	if user2ID != 0 {
		user2Tasks, err = s.tasks.ListTasksForUserMatch(r.Context(), user2ID, matchID)
		if err != nil {
			log.Error().Err(err).Int64("match_id", matchID).Msg("poll game state: user2 tasks")
			httpx.Error(w, http.StatusInternalServerError, "Error in polling game state")
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, GameState{
		Success: true,
		Match:   match,
		Tasks:   PlayerTasks{User1: user1Tasks, User2: user2Tasks},
	})
}
