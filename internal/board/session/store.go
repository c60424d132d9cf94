// Package session persists the logged-in identity across client restarts,
// the way the browser build keeps it in cookies.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// TTL is how long a saved session stays valid after the last Save.
const TTL = 7 * 24 * time.Hour

// Session is the durable identity of the local player. All four fields are
// required; a session missing any of them is treated as no session.
type Session struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	MatchID  int64  `json:"matchId"`
	PlayerID int    `json:"playerId"`
}

// complete reports whether every required field is populated.
func (s Session) complete() bool {
	return s.UserID != 0 && s.Username != "" && s.MatchID != 0 &&
		(s.PlayerID == 1 || s.PlayerID == 2)
}

type envelope struct {
	Session   Session   `json:"session"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store reads and writes the session file. All operations are synchronous
// local filesystem calls.
type Store struct {
	path  string
	clock clockwork.Clock
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, clock clockwork.Clock) *Store {
	return &Store{path: path, clock: clock}
}

// DefaultPath places the session file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "tictactask", "session.json"), nil
}

// Save persists the session with a fresh 7-day expiry. The write goes
// through a temp file and rename so a crash cannot leave a torn file.
func (s *Store) Save(sess Session) error {
	if !sess.complete() {
		return fmt.Errorf("refusing to save incomplete session")
	}

	data, err := json.Marshal(envelope{
		Session:   sess,
		ExpiresAt: s.clock.Now().Add(TTL),
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Load returns the stored session, or nil when there is none. Fail-closed:
// a missing file, unreadable JSON, an expired envelope, or any missing
// field all count as no session.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil
	}
	if s.clock.Now().After(env.ExpiresAt) {
		return nil, nil
	}
	if !env.Session.complete() {
		return nil, nil
	}
	return &env.Session, nil
}

// Clear removes the stored session. A session that is already gone is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Active reports whether a valid session exists.
func (s *Store) Active() bool {
	sess, err := s.Load()
	return err == nil && sess != nil
}
