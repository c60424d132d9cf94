// Package reconcile owns the client-side view of a match: two 9-slot task
// arrays, one per player, rebuilt from a full server fetch on every poll
// tick. Full replacement makes the loop self-healing: a missed update is
// corrected by the next successful fetch, so no ordering between server
// writes is required.
package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"tictactask/internal/models"
)

// Gateway defines what the loop needs from the API client.
type Gateway interface {
	Match(ctx context.Context, id int64) (*models.Match, error)
	TasksForMatch(ctx context.Context, matchID int64) ([]models.Task, error)
}

// Config controls poll cadence and error-log throttling.
type Config struct {
	PollInterval time.Duration
	LogThrottle  time.Duration
}

// DefaultConfig returns the production settings: a 3-second poll and at
// most one fetch-error log line per minute.
func DefaultConfig() Config {
	return Config{
		PollInterval: 3 * time.Second,
		LogThrottle:  60 * time.Second,
	}
}

// Snapshot is the published view state. It is a value: handing it to a
// renderer copies both arrays together, so a reader can never observe a
// half-updated pair.
type Snapshot struct {
	Player1       Slots
	Player2       Slots
	SubmittedByMe bool
}

// Loop polls the gateway and republishes the merged board state. One loop
// owns one match subscription; the owner must Stop it before starting a
// replacement when the match id changes.
type Loop struct {
	gateway Gateway
	clock   clockwork.Clock
	cfg     Config
	userID  int64
	matchID int64

	mu         sync.Mutex
	match      *models.Match
	snap       Snapshot
	lastErrLog time.Time
	running    bool
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

// NewLoop creates a reconciliation loop for one (user, match) pair.
func NewLoop(gateway Gateway, clock clockwork.Clock, userID, matchID int64, cfg Config) *Loop {
	if cfg.PollInterval <= 0 {
		cfg = DefaultConfig()
	}
	return &Loop{
		gateway:  gateway,
		clock:    clock,
		cfg:      cfg,
		userID:   userID,
		matchID:  matchID,
		stopChan: make(chan struct{}),
	}
}

// Start launches the poll loop. It fails if the loop is already running.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return fmt.Errorf("reconciliation loop already running")
	}
	l.running = true
	l.mu.Unlock()

	l.wg.Add(1)
	go l.run(ctx)

	log.Info().
		Int64("match_id", l.matchID).
		Dur("poll_interval", l.cfg.PollInterval).
		Msg("reconciliation loop started")
	return nil
}

// Stop tears the loop down and waits for the poll goroutine to exit.
func (l *Loop) Stop() error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return fmt.Errorf("reconciliation loop not running")
	}
	l.running = false
	l.mu.Unlock()

	close(l.stopChan)
	l.wg.Wait()

	log.Info().Int64("match_id", l.matchID).Msg("reconciliation loop stopped")
	return nil
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := l.clock.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	// Merge immediately on start; the first tick is an interval away.
	_ = l.Reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopChan:
			return
		case <-ticker.Chan():
			// Poll failures are already throttled-logged inside
			// Reconcile; the stale snapshot stays published.
			_ = l.Reconcile(ctx)
		}
	}
}

// Snapshot returns the last published board state.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Reconcile runs one fetch-and-merge pass. On any fetch error the previous
// snapshot is left untouched and the error is returned so the caller can
// decide between "ignore and keep stale" (the poll path) and "surface"
// (nothing does today; mutations surface their own write errors instead).
func (l *Loop) Reconcile(ctx context.Context) error {
	match, err := l.matchDetails(ctx)
	if err != nil {
		l.logThrottled(err, "failed to fetch match details")
		return err
	}

	taskList, err := l.gateway.TasksForMatch(ctx, l.matchID)
	if err != nil {
		l.logThrottled(err, "failed to fetch tasks")
		return err
	}

	player1, player2 := MergeTasks(taskList, match)

	var mine Slots
	switch ResolveRole(l.userID, match) {
	case RolePlayer1:
		mine = player1
	case RolePlayer2:
		mine = player2
	}

	l.mu.Lock()
	l.snap = Snapshot{
		Player1:       player1,
		Player2:       player2,
		SubmittedByMe: mine.Submitted(),
	}
	l.mu.Unlock()
	return nil
}

// matchDetails returns the cached match record, refetching while the
// second player is still unknown so a late join is picked up without a
// resubscribe.
func (l *Loop) matchDetails(ctx context.Context) (*models.Match, error) {
	l.mu.Lock()
	cached := l.match
	l.mu.Unlock()

	if cached != nil && cached.User2ID != nil {
		return cached, nil
	}

	match, err := l.gateway.Match(ctx, l.matchID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.match = match
	l.mu.Unlock()
	return match, nil
}

// logThrottled logs a fetch failure at most once per LogThrottle window so
// a sustained outage cannot storm the log.
func (l *Loop) logThrottled(err error, msg string) {
	now := l.clock.Now()

	l.mu.Lock()
	if !l.lastErrLog.IsZero() && now.Sub(l.lastErrLog) < l.cfg.LogThrottle {
		l.mu.Unlock()
		return
	}
	l.lastErrLog = now
	l.mu.Unlock()

	log.Warn().Err(err).Int64("match_id", l.matchID).Msg(msg + " (will retry)")
}
