package users

// CreateUserRequest represents the data needed to create a new user.
// Password must already be hashed by the caller.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
