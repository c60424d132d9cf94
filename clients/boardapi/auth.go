package boardapi

import "context"

type credentials struct {
	Username string `json:"username"`
	Pwd      string `json:"pwd"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// SignUp registers a new user and returns an access token.
func (c *Client) SignUp(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/signup", credentials{Username: username, Pwd: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates an existing user and returns an access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/login", credentials{Username: username, Pwd: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
