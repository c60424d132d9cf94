package matches

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tictactask/internal/models"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatchesForUser(ctx context.Context, userID int64) ([]models.Match, error)
	AddUser2(ctx context.Context, matchID, user2ID int64) (*models.Match, error)
	MarkComplete(ctx context.Context, matchID int64) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int64) error
}

// App handles matches business logic
type App struct {
	repo MatchesRepository
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository) *App {
	return &App{repo: repo}
}

// CreateMatch creates a new match with validation
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	if req.User1ID == 0 {
		return nil, fmt.Errorf("user1_id is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	match, err := a.repo.CreateMatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().Int64("match_id", match.ID).Int64("user1_id", match.User1ID).Msg("created match")
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

// ListMatchesForUser retrieves all matches a user participates in
func (a *App) ListMatchesForUser(ctx context.Context, userID int64) ([]models.Match, error) {
	return a.repo.ListMatchesForUser(ctx, userID)
}

// AddUser2 joins the second player to a match. A join against an occupied
// slot fails with ErrAlreadyJoined rather than overwriting.
func (a *App) AddUser2(ctx context.Context, matchID, user2ID int64) (*models.Match, error) {
	if user2ID == 0 {
		return nil, fmt.Errorf("user2_id is required")
	}

	match, err := a.repo.AddUser2(ctx, matchID, user2ID)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("match_id", match.ID).Int64("user2_id", user2ID).Msg("second player joined match")
	return match, nil
}

// MarkComplete marks a match complete
func (a *App) MarkComplete(ctx context.Context, matchID int64) (*models.Match, error) {
	return a.repo.MarkComplete(ctx, matchID)
}

// DeleteMatch deletes a match by ID
func (a *App) DeleteMatch(ctx context.Context, id int64) error {
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("match_id", id).Msg("deleted match")
	return nil
}
