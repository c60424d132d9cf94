package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tictactask/internal/httpx"
	"tictactask/internal/models"
)

// TasksApp defines what the service layer needs from the tasks application
type TasksApp interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, matchID int64, location int) (*models.Task, error)
	ListTasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error)
	ListTasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error)
	MarkComplete(ctx context.Context, userID, matchID int64, location int) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, matchID int64, location int) error
}

// Service exposes the tasks REST surface
type Service struct {
	app TasksApp
}

// NewService creates a new tasks service
func NewService(app TasksApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the tasks endpoints on the router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/user/{userId}/match/{matchId}", s.handleListForUserMatch)
		r.Get("/match/{matchId}", s.handleListForMatch)
		r.Get("/{userId}/{matchId}/{location}", s.handleGet)
		r.Post("/", s.handleCreate)
		r.Patch("/{userId}/{matchId}/{location}/complete", s.handleComplete)
		r.Delete("/{userId}/{matchId}/{location}", s.handleDelete)
	})
}

// taskKey pulls the (user, match, location) triple out of the path.
func taskKey(r *http.Request) (userID, matchID int64, location int, err error) {
	userID, err = httpx.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		return
	}
	matchID, err = httpx.ParseID(chi.URLParam(r, "matchId"))
	if err != nil {
		return
	}
	var loc int64
	loc, err = httpx.ParseID(chi.URLParam(r, "location"))
	location = int(loc)
	return
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, matchID, location, err := taskKey(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid task key")
		return
	}
	task, err := s.app.GetTask(r.Context(), userID, matchID, location)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get task")
		httpx.Error(w, http.StatusInternalServerError, "Error fetching task")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, task)
}

func (s *Service) handleListForUserMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	matchID, err := httpx.ParseID(chi.URLParam(r, "matchId"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	list, err := s.app.ListTasksForUserMatch(r.Context(), userID, matchID)
	if err != nil {
		log.Error().Err(err).Msg("list tasks for user match")
		httpx.Error(w, http.StatusInternalServerError, "Error fetching tasks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"tasks": list})
}

func (s *Service) handleListForMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := httpx.ParseID(chi.URLParam(r, "matchId"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid match id")
		return
	}
	list, err := s.app.ListTasksForMatch(r.Context(), matchID)
	if err != nil {
		log.Error().Err(err).Msg("list tasks for match")
		httpx.Error(w, http.StatusInternalServerError, "Error fetching tasks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"tasks": list})
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task, err := s.app.CreateTask(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("create task")
		httpx.Error(w, http.StatusInternalServerError, "Error creating task")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, task)
}

func (s *Service) handleComplete(w http.ResponseWriter, r *http.Request) {
	userID, matchID, location, err := taskKey(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid task key")
		return
	}
	task, err := s.app.MarkComplete(r.Context(), userID, matchID, location)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("mark task complete")
		httpx.Error(w, http.StatusInternalServerError, "Error marking task complete")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, task)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, matchID, location, err := taskKey(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid task key")
		return
	}
	err = s.app.DeleteTask(r.Context(), userID, matchID, location)
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("delete task")
		httpx.Error(w, http.StatusInternalServerError, "Error deleting task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
