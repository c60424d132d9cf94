package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"tictactask/internal/models"
	"tictactask/internal/users"
)

// UsersApp defines what the auth layer needs from the users application
type UsersApp interface {
	CreateUser(ctx context.Context, req users.CreateUserRequest) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// App handles registration and login
type App struct {
	users  UsersApp
	issuer *TokenIssuer
}

// NewApp creates a new auth App
func NewApp(usersApp UsersApp, issuer *TokenIssuer) *App {
	return &App{users: usersApp, issuer: issuer}
}

// Register creates a user with a bcrypt-hashed password and returns an
// access token for the new identity.
func (a *App) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, users.CreateUserRequest{
		Username: username,
		Password: string(hash),
	})
	if err != nil {
		return "", err
	}

	token, err := a.issuer.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", username).Msg("registered user")
	return token, nil
}

// Login verifies credentials and returns a fresh access token. Unknown
// username and wrong password both come back as ErrUnauthorized.
func (a *App) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.users.GetUserByUsername(ctx, username)
	if errors.Is(err, users.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := a.issuer.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// VerifyToken exposes token verification to the HTTP middleware.
func (a *App) VerifyToken(token string) (int64, error) {
	return a.issuer.Verify(token)
}
