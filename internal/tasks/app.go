package tasks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tictactask/internal/models"
)

// TasksRepository defines what the app layer needs from the repository
type TasksRepository interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, matchID int64, location int) (*models.Task, error)
	ListTasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error)
	ListTasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error)
	MarkComplete(ctx context.Context, userID, matchID int64, location int) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, matchID int64, location int) error
}

// App handles tasks business logic
type App struct {
	repo TasksRepository
}

// NewApp creates a new tasks App
func NewApp(repo TasksRepository) *App {
	return &App{repo: repo}
}

// CreateTask validates and stores a task
func (a *App) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	if req.MatchID == 0 {
		return nil, fmt.Errorf("match_id is required")
	}
	if !models.ValidLocation(req.Location) {
		return nil, fmt.Errorf("location %d is outside the board", req.Location)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.TimeToDo < 0 {
		return nil, fmt.Errorf("time_to_do must not be negative")
	}

	task, err := a.repo.CreateTask(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Debug().
		Int64("user_id", task.UserID).
		Int64("match_id", task.MatchID).
		Int("location", task.Location).
		Msg("stored task")
	return task, nil
}

// GetTask retrieves one task by its natural key
func (a *App) GetTask(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	return a.repo.GetTask(ctx, userID, matchID, location)
}

// ListTasksForUserMatch retrieves all tasks one player owns in a match
func (a *App) ListTasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error) {
	return a.repo.ListTasksForUserMatch(ctx, userID, matchID)
}

// ListTasksForMatch retrieves all tasks in a match for both players
func (a *App) ListTasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error) {
	return a.repo.ListTasksForMatch(ctx, matchID)
}

// MarkComplete marks one task complete
func (a *App) MarkComplete(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	return a.repo.MarkComplete(ctx, userID, matchID, location)
}

// DeleteTask deletes one task by its natural key
func (a *App) DeleteTask(ctx context.Context, userID, matchID int64, location int) error {
	return a.repo.DeleteTask(ctx, userID, matchID, location)
}
