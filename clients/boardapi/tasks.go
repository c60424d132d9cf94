package boardapi

import (
	"context"

	"tictactask/internal/models"
)

type tasksResponse struct {
	Tasks []models.Task `json:"tasks"`
}

// Task fetches one task by its (user, match, location) key.
func (c *Client) Task(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	var t models.Task
	if err := c.get(ctx, taskEndpoint(userID, matchID, location), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TasksForUserMatch fetches all tasks one player owns in a match.
func (c *Client) TasksForUserMatch(ctx context.Context, userID, matchID int64) ([]models.Task, error) {
	var resp tasksResponse
	if err := c.get(ctx, tasksForUserMatchEndpoint(userID, matchID), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// TasksForMatch fetches every task in a match for both players in one call.
func (c *Client) TasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error) {
	var resp tasksResponse
	if err := c.get(ctx, tasksForMatchEndpoint(matchID), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask places a task on a board cell. Writing to an occupied cell
// replaces the previous task (last writer wins).
func (c *Client) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	var created models.Task
	if err := c.post(ctx, "/tasks", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CompleteTask marks one task complete.
func (c *Client) CompleteTask(ctx context.Context, userID, matchID int64, location int) (*models.Task, error) {
	var t models.Task
	if err := c.patch(ctx, taskEndpoint(userID, matchID, location)+"/complete", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes one task. Callers clearing a whole board should treat
// NotFoundError as success.
func (c *Client) DeleteTask(ctx context.Context, userID, matchID int64, location int) error {
	return c.del(ctx, taskEndpoint(userID, matchID, location))
}
