package tasks

import "errors"

// ErrNotFound indicates no task exists at the requested
// (user, match, location) key.
var ErrNotFound = errors.New("task not found")
