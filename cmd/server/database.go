package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
	id BIGSERIAL PRIMARY KEY,
	user1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	user2_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	password TEXT NOT NULL,
	complete BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS tasks (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
	location INT NOT NULL CHECK (location BETWEEN 0 AND 8),
	description TEXT NOT NULL,
	time_to_do INT NOT NULL DEFAULT 0 CHECK (time_to_do >= 0),
	complete BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (user_id, match_id, location)
);
`

func setupDatabase(ctx context.Context) (*sql.DB, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvAsInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Database: getEnv("DB_NAME", "tictactask"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	dsn := getEnv("DATABASE_URL", fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Database, dbConfig.SSLMode))

	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := database.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().
		Str("host", dbConfig.Host).
		Str("database", dbConfig.Database).
		Msg("connected to database")
	return database, nil
}
