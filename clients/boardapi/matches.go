package boardapi

import (
	"context"

	"tictactask/internal/models"
)

type matchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// Match fetches one match by id.
func (c *Client) Match(ctx context.Context, id int64) (*models.Match, error) {
	var m models.Match
	if err := c.get(ctx, matchEndpoint(id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MatchesForUser fetches every match the user participates in.
func (c *Client) MatchesForUser(ctx context.Context, userID int64) ([]models.Match, error) {
	var resp matchesResponse
	if err := c.get(ctx, matchesForUserEndpoint(userID), &resp); err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// CreateMatch opens a new match owned by user1.
func (c *Client) CreateMatch(ctx context.Context, user1ID int64, password string) (*models.Match, error) {
	var m models.Match
	payload := map[string]any{"user1_id": user1ID, "password": password}
	if err := c.post(ctx, "/matches", payload, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// AddUser2 joins the second player to a match.
func (c *Client) AddUser2(ctx context.Context, matchID, user2ID int64) (*models.Match, error) {
	var m models.Match
	payload := map[string]any{"user2_id": user2ID}
	if err := c.patch(ctx, matchEndpoint(matchID)+"/addUser2", payload, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CompleteMatch marks a match complete.
func (c *Client) CompleteMatch(ctx context.Context, matchID int64) (*models.Match, error) {
	var m models.Match
	if err := c.patch(ctx, matchEndpoint(matchID)+"/complete", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMatch removes a match and, through the store's cascade, its tasks.
func (c *Client) DeleteMatch(ctx context.Context, matchID int64) error {
	return c.del(ctx, matchEndpoint(matchID))
}
