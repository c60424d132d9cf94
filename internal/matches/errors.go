package matches

import "errors"

var (
	// ErrNotFound indicates the requested match does not exist.
	ErrNotFound = errors.New("match not found")
	// ErrAlreadyJoined indicates the match already has a second player.
	ErrAlreadyJoined = errors.New("match already has a second player")
)
