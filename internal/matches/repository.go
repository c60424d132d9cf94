package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tictactask/internal/models"
)

// Repository implements match data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new matches repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateMatch creates a new match with only player 1 assigned
func (r *Repository) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	var m models.Match
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO matches (user1_id, password) VALUES ($1, $2)
		 RETURNING id, user1_id, user2_id, password, complete`,
		req.User1ID, req.Password,
	).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Password, &m.Complete)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &m, nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	var m models.Match
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user1_id, user2_id, password, complete FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Password, &m.Complete)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// ListMatchesForUser retrieves all matches a user participates in
func (r *Repository) ListMatchesForUser(ctx context.Context, userID int64) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user1_id, user2_id, password, complete FROM matches
		 WHERE user1_id = $1 OR user2_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var out []models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Password, &m.Complete); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	return out, nil
}

// AddUser2 assigns the second player. The guard on user2_id being null makes
// a racing second join lose cleanly instead of overwriting.
func (r *Repository) AddUser2(ctx context.Context, matchID, user2ID int64) (*models.Match, error) {
	var m models.Match
	err := r.db.QueryRowContext(ctx,
		`UPDATE matches SET user2_id = $2 WHERE id = $1 AND user2_id IS NULL
		 RETURNING id, user1_id, user2_id, password, complete`,
		matchID, user2ID,
	).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Password, &m.Complete)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish "missing" from "already joined".
		if _, getErr := r.GetMatch(ctx, matchID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyJoined
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add user2 to match: %w", err)
	}
	return &m, nil
}

// MarkComplete marks a match complete
func (r *Repository) MarkComplete(ctx context.Context, matchID int64) (*models.Match, error) {
	var m models.Match
	err := r.db.QueryRowContext(ctx,
		`UPDATE matches SET complete = TRUE WHERE id = $1
		 RETURNING id, user1_id, user2_id, password, complete`,
		matchID,
	).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Password, &m.Complete)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark match complete: %w", err)
	}
	return &m, nil
}

// DeleteMatch deletes a match by ID
func (r *Repository) DeleteMatch(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
