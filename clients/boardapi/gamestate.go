package boardapi

import (
	"context"

	"tictactask/internal/models"
)

// GameState is the combined match-plus-tasks snapshot served by the poll
// endpoint.
type GameState struct {
	Success bool          `json:"success"`
	Match   *models.Match `json:"match"`
	Tasks   struct {
		User1 []models.Task `json:"user1"`
		User2 []models.Task `json:"user2"`
	} `json:"tasks"`
}

// PollGameState fetches the match record and both players' task lists in a
// single round trip. Pass user2ID as zero to let the server resolve the
// opponent from the match record.
func (c *Client) PollGameState(ctx context.Context, matchID, user1ID, user2ID int64) (*GameState, error) {
	var state GameState
	if err := c.get(ctx, pollGameStateEndpoint(matchID, user1ID, user2ID), &state); err != nil {
		return nil, err
	}
	return &state, nil
}
