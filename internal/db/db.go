package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// How long to wait between connection attempts.
const reconnectDelay = 5 * time.Second

type DB struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Connect keeps retrying New with a fixed delay until the database is
// reachable or ctx is cancelled. Once connected, pgxpool handles per-query
// reconnection on its own.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	for {
		database, err := New(ctx, databaseURL)
		if err == nil {
			return database, nil
		}
		log.Printf("Database not reachable, retrying in %s: %v", reconnectDelay, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (db *DB) Close() {
	db.pool.Close()
}

// RunMigrations runs database migrations
func (db *DB) RunMigrations(ctx context.Context) error {
	// Simple migration for the scores table
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scores (
			guild_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			score BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (guild_id, user_id)
		);
		CREATE INDEX IF NOT EXISTS idx_scores_guild_score ON scores(guild_id, score DESC);
	`)
	return err
}
