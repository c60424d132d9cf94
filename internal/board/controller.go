// Package board orchestrates user intent against the API gateway: batch
// submission, deletes, and the purely local view state (marks, dark mode,
// stakes) that never round-trips the network.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"tictactask/clients/boardapi"
	"tictactask/internal/board/reconcile"
	"tictactask/internal/models"
)

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Gateway defines the mutation surface the controller needs.
type Gateway interface {
	CreateTask(ctx context.Context, task models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, matchID int64, location int) error
}

// Reconciler is the read side: the controller forces a merge pass after
// every confirmed mutation instead of patching slot arrays optimistically.
type Reconciler interface {
	Reconcile(ctx context.Context) error
	Snapshot() reconcile.Snapshot
}

// Mark is the X/O overlay on one cell. Marks are local-only and excluded
// from reconciliation.
type Mark int

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Controller owns one player's interaction with one match.
type Controller struct {
	gateway Gateway
	loop    Reconciler
	userID  int64
	matchID int64

	mu       sync.Mutex
	draft    reconcile.Slots
	marks    [models.BoardSize]Mark
	darkMode bool
	stakes   string
	busy     bool
	lastErr  string
}

// NewController creates a controller for one (user, match) pair.
func NewController(gateway Gateway, loop Reconciler, userID, matchID int64) *Controller {
	return &Controller{
		gateway: gateway,
		loop:    loop,
		userID:  userID,
		matchID: matchID,
	}
}

// Snapshot exposes the loop's current board state read-only.
func (c *Controller) Snapshot() reconcile.Snapshot {
	return c.loop.Snapshot()
}

// EditSlot updates the draft buffer for one cell. Drafts are transient:
// they are not persisted until Submit.
func (c *Controller) EditSlot(location int, name string, minutes int) error {
	if !models.ValidLocation(location) {
		return &ValidationError{Message: fmt.Sprintf("invalid board location %d", location)}
	}
	c.mu.Lock()
	c.draft[location] = reconcile.Slot{Name: name, TimeEstimate: minutes}
	c.mu.Unlock()
	return nil
}

// Draft returns the current edit buffer.
func (c *Controller) Draft() reconcile.Slots {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit persists the draft buffer and clears it on success.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	if err := c.SubmitTasks(ctx, draft); err != nil {
		return err
	}

	c.mu.Lock()
	c.draft = reconcile.Slots{}
	c.mu.Unlock()
	return nil
}

// SubmitTasks persists every slot with a non-empty name. Empty-named slots
// are skipped rather than persisted as blanks; a batch with nothing to
// persist is rejected inline before any network call. After all writes
// succeed, one reconcile pass pulls the server-confirmed state back in.
func (c *Controller) SubmitTasks(ctx context.Context, slots reconcile.Slots) error {
	var toPersist []models.Task
	for location, slot := range slots {
		if slot.Empty() {
			continue
		}
		if slot.TimeEstimate < 0 {
			return &ValidationError{Message: fmt.Sprintf("time estimate for slot %d must not be negative", location)}
		}
		toPersist = append(toPersist, models.Task{
			UserID:      c.userID,
			MatchID:     c.matchID,
			Location:    location,
			Description: slot.Name,
			TimeToDo:    slot.TimeEstimate,
		})
	}
	if len(toPersist) == 0 {
		return &ValidationError{Message: "at least one task name is required"}
	}

	c.setBusy(true)
	defer c.setBusy(false)

	for _, task := range toPersist {
		if _, err := c.gateway.CreateTask(ctx, task); err != nil {
			c.recordErr(err)
			return err
		}
	}

	log.Info().
		Int64("match_id", c.matchID).
		Int("count", len(toPersist)).
		Msg("task batch submitted")

	c.reconcileAfterMutation(ctx)
	return nil
}

// DeleteTask removes one of the caller's tasks and reconciles.
func (c *Controller) DeleteTask(ctx context.Context, location int) error {
	if !models.ValidLocation(location) {
		return &ValidationError{Message: fmt.Sprintf("invalid board location %d", location)}
	}

	c.setBusy(true)
	defer c.setBusy(false)

	if err := c.gateway.DeleteTask(ctx, c.userID, c.matchID, location); err != nil {
		c.recordErr(err)
		return err
	}

	c.reconcileAfterMutation(ctx)
	return nil
}

// ClearMyTasks deletes all nine of the caller's cells. A cell that is
// already absent counts as deleted, so a partially cleared board can be
// retried. Other failures do not stop the sweep; they are joined and
// returned after every location has been attempted.
func (c *Controller) ClearMyTasks(ctx context.Context) error {
	c.setBusy(true)
	defer c.setBusy(false)

	var errs []error
	for location := 0; location < models.BoardSize; location++ {
		err := c.gateway.DeleteTask(ctx, c.userID, c.matchID, location)
		if err != nil && !boardapi.IsNotFound(err) {
			errs = append(errs, fmt.Errorf("location %d: %w", location, err))
		}
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.recordErr(err)
		return err
	}

	c.reconcileAfterMutation(ctx)
	return nil
}

// ToggleMark places or clears an X/O on a cell: an empty cell takes the
// given mark, a cell holding the same mark is cleared, and a cell holding
// the other mark is left alone.
func (c *Controller) ToggleMark(location int, mark Mark) error {
	if !models.ValidLocation(location) {
		return &ValidationError{Message: fmt.Sprintf("invalid board location %d", location)}
	}
	if mark != MarkX && mark != MarkO {
		return &ValidationError{Message: "mark must be X or O"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.marks[location] {
	case MarkNone:
		c.marks[location] = mark
	case mark:
		c.marks[location] = MarkNone
	}
	return nil
}

// Marks returns the current X/O overlay.
func (c *Controller) Marks() [models.BoardSize]Mark {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.marks
}

// ToggleDarkMode flips the display theme and returns the new value.
func (c *Controller) ToggleDarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.darkMode = !c.darkMode
	return c.darkMode
}

// DarkMode reports the current theme.
func (c *Controller) DarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.darkMode
}

// SetStakes records what the players agreed to play for.
func (c *Controller) SetStakes(stakes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stakes = stakes
}

// Stakes returns the recorded stakes.
func (c *Controller) Stakes() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stakes
}

// Busy reports whether a mutation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// LastError returns the most recent mutation failure message, cleared by
// the next successful mutation.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// reconcileAfterMutation pulls server-confirmed state after a successful
// write. A failed pull is not a mutation failure: the writes landed and
// the next poll tick will converge the view.
func (c *Controller) reconcileAfterMutation(ctx context.Context) {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()

	if err := c.loop.Reconcile(ctx); err != nil {
		log.Warn().Err(err).Int64("match_id", c.matchID).Msg("post-mutation refresh failed")
	}
}

func (c *Controller) setBusy(busy bool) {
	c.mu.Lock()
	c.busy = busy
	c.mu.Unlock()
}

func (c *Controller) recordErr(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
}
