package models

// User represents a registered player. The password hash never leaves the
// server.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
