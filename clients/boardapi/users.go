package boardapi

import (
	"context"

	"tictactask/internal/models"
)

type usersResponse struct {
	UsersList []models.User `json:"users_list"`
}

// Users fetches all registered users.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var resp usersResponse
	if err := c.get(ctx, "/users", &resp); err != nil {
		return nil, err
	}
	return resp.UsersList, nil
}

// User fetches one user by id.
func (c *Client) User(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, userEndpoint(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser creates a user directly. Most flows should go through SignUp,
// which hashes the password server-side.
func (c *Client) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	var u models.User
	payload := map[string]string{"username": username, "password": password}
	if err := c.post(ctx, "/users", payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user account. Requires a token set via SetToken.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, userEndpoint(id))
}
