package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type Score struct {
	GuildID     string    `json:"guild_id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Score       int64     `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddScore adds delta to the score of (guildID, userID), creating the row at
// zero first if it does not exist, and returns the resulting score. The
// upsert-increment is a single statement, so concurrent signals against the
// same row serialize inside Postgres.
func (db *DB) AddScore(ctx context.Context, guildID, userID, displayName string, delta int64) (int64, error) {
	var newScore int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scores (guild_id, user_id, display_name, score) VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, user_id)
		DO UPDATE SET score = scores.score + $4, display_name = EXCLUDED.display_name
		RETURNING score`,
		guildID, userID, displayName, delta,
	).Scan(&newScore)
	if err != nil {
		return 0, err
	}
	return newScore, nil
}

// EnsureScore creates the row at score 0 if absent and returns it either way.
func (db *DB) EnsureScore(ctx context.Context, guildID, userID, displayName string) (*Score, error) {
	var sc Score
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scores (guild_id, user_id, display_name) VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, user_id)
		DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING guild_id, user_id, display_name, score, created_at`,
		guildID, userID, displayName,
	).Scan(&sc.GuildID, &sc.UserID, &sc.DisplayName, &sc.Score, &sc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// GetScore returns the row for (guildID, userID), or (nil, nil) if the user
// has no record. It never creates a row.
func (db *DB) GetScore(ctx context.Context, guildID, userID string) (*Score, error) {
	var sc Score
	err := db.pool.QueryRow(ctx,
		"SELECT guild_id, user_id, display_name, score, created_at FROM scores WHERE guild_id = $1 AND user_id = $2",
		guildID, userID,
	).Scan(&sc.GuildID, &sc.UserID, &sc.DisplayName, &sc.Score, &sc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// RankForScore returns the 1-based rank a score holds in a guild: one plus
// the number of rows with a strictly greater score.
func (db *DB) RankForScore(ctx context.Context, guildID string, score int64) (int, error) {
	var above int
	err := db.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM scores WHERE guild_id = $1 AND score > $2",
		guildID, score,
	).Scan(&above)
	if err != nil {
		return 0, err
	}
	return above + 1, nil
}

// TopScores returns up to limit rows for a guild ordered by score descending.
func (db *DB) TopScores(ctx context.Context, guildID string, limit int) ([]Score, error) {
	rows, err := db.pool.Query(ctx,
		"SELECT guild_id, user_id, display_name, score, created_at FROM scores WHERE guild_id = $1 ORDER BY score DESC, created_at ASC LIMIT $2",
		guildID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		if err := rows.Scan(&sc.GuildID, &sc.UserID, &sc.DisplayName, &sc.Score, &sc.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

// ListGuildScores returns all rows for a guild ordered by score descending.
func (db *DB) ListGuildScores(ctx context.Context, guildID string) ([]Score, error) {
	rows, err := db.pool.Query(ctx,
		"SELECT guild_id, user_id, display_name, score, created_at FROM scores WHERE guild_id = $1 ORDER BY score DESC, created_at ASC",
		guildID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		if err := rows.Scan(&sc.GuildID, &sc.UserID, &sc.DisplayName, &sc.Score, &sc.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

func (db *DB) GetRegisteredGuildIDs(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx, "SELECT DISTINCT guild_id FROM scores")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guildIDs []string
	for rows.Next() {
		var guildID string
		if err := rows.Scan(&guildID); err != nil {
			return nil, err
		}
		guildIDs = append(guildIDs, guildID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guildIDs, nil
}
