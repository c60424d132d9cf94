package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tictactask/internal/models"
)

// Repository implements task data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new tasks repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateTask inserts a task, replacing any existing task at the same
// (user, match, location) key.
func (r *Repository) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (user_id, match_id, location, description, time_to_do, complete)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, match_id, location) DO UPDATE
		   SET description = EXCLUDED.description,
		       time_to_do = EXCLUDED.time_to_do,
		       complete = EXCLUDED.complete
		 RETURNING user_id, match_id, location, description, time_to_do, complete`,
		req.UserID, req.MatchID, req.Location, req.Description, req.TimeToDo, req.Complete,
	).Scan(&t.UserID, &t.MatchID, &t.Location, &t.Description, &t.TimeToDo, &t.Complete)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &t, nil
}

// GetTask retrieves one task by its natural key
func (r *Repository) GetTask(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, match_id, location, description, time_to_do, complete
		 FROM tasks WHERE user_id = $1 AND match_id = $2 AND location = $3`,
		userID, matchID, location,
	).Scan(&t.UserID, &t.MatchID, &t.Location, &t.Description, &t.TimeToDo, &t.Complete)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}

// ListTasksForUserMatch retrieves all tasks one player owns in a match
func (r *Repository) ListTasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error) {
	return r.list(ctx,
		`SELECT user_id, match_id, location, description, time_to_do, complete
		 FROM tasks WHERE user_id = $1 AND match_id = $2 ORDER BY location`,
		userID, matchID)
}

// ListTasksForMatch retrieves all tasks in a match for both players
func (r *Repository) ListTasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error) {
	return r.list(ctx,
		`SELECT user_id, match_id, location, description, time_to_do, complete
		 FROM tasks WHERE match_id = $1 ORDER BY user_id, location`,
		matchID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.UserID, &t.MatchID, &t.Location, &t.Description, &t.TimeToDo, &t.Complete); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return out, nil
}

// MarkComplete marks one task complete
func (r *Repository) MarkComplete(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx,
		`UPDATE tasks SET complete = TRUE
		 WHERE user_id = $1 AND match_id = $2 AND location = $3
		 RETURNING user_id, match_id, location, description, time_to_do, complete`,
		userID, matchID, location,
	).Scan(&t.UserID, &t.MatchID, &t.Location, &t.Description, &t.TimeToDo, &t.Complete)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark task complete: %w", err)
	}
	return &t, nil
}

// DeleteTask deletes one task by its natural key
func (r *Repository) DeleteTask(ctx context.Context, userID, matchID int64, location int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE user_id = $1 AND match_id = $2 AND location = $3`,
		userID, matchID, location)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
