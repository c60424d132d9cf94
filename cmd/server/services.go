package main

import (
	"database/sql"
	"time"

	"github.com/jonboulle/clockwork"

	"tictactask/internal/auth"
	"tictactask/internal/gamestate"
	"tictactask/internal/matches"
	"tictactask/internal/tasks"
	"tictactask/internal/users"
)

// Services bundles the HTTP-facing service layer for route registration.
type Services struct {
	Users     *users.Service
	Matches   *matches.Service
	Tasks     *tasks.Service
	Auth      *auth.Service
	GameState *gamestate.Service
}

func buildServices(db *sql.DB, cfg *Config, tokenSecret string) *Services {
	usersApp := users.NewApp(users.NewRepository(db))
	matchesApp := matches.NewApp(matches.NewRepository(db))
	tasksApp := tasks.NewApp(tasks.NewRepository(db))

	issuer := auth.NewTokenIssuer(
		tokenSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		clockwork.NewRealClock(),
	)
	authApp := auth.NewApp(usersApp, issuer)

	return &Services{
		Users:     users.NewService(usersApp),
		Matches:   matches.NewService(matchesApp),
		Tasks:     tasks.NewService(tasksApp),
		Auth:      auth.NewService(authApp),
		GameState: gamestate.NewService(matchesApp, tasksApp),
	}
}
