package credit

import (
	"context"
	"errors"
	"fmt"

	"github.com/sskmsk/creditbot/internal/db"
)

var (
	ErrNotRegistered    = errors.New("user has no score record")
	ErrEmptyLeaderboard = errors.New("no score records in this guild")
)

// How many entries a leaderboard shows.
const LeaderboardSize = 10

// ScoreStore is the persistence contract the ledger runs against.
// *db.DB satisfies it; tests use an in-memory fake.
type ScoreStore interface {
	// AddScore atomically adds delta to the target's score, creating the
	// record at zero first if absent, and returns the resulting score.
	AddScore(ctx context.Context, guildID, userID, displayName string, delta int64) (int64, error)
	// EnsureScore creates the record at zero if absent and returns it.
	EnsureScore(ctx context.Context, guildID, userID, displayName string) (*db.Score, error)
	// GetScore returns the record, or (nil, nil) when none exists.
	GetScore(ctx context.Context, guildID, userID string) (*db.Score, error)
	// RankForScore returns 1 + count of records in the guild scoring
	// strictly higher.
	RankForScore(ctx context.Context, guildID string, score int64) (int, error)
	// TopScores returns up to limit records ordered by score descending.
	TopScores(ctx context.Context, guildID string, limit int) ([]db.Score, error)
}

// Service implements the ledger update protocol over a ScoreStore.
type Service struct {
	store ScoreStore
}

func NewService(store ScoreStore) *Service {
	return &Service{store: store}
}

// UpdateResult reports a score mutation (or lookup) together with the
// target's freshly computed rank. Rank is advisory: ties are not broken and
// the value may shift between calls.
type UpdateResult struct {
	OldScore int64
	NewScore int64
	Rank     int
}

// ApplySignal applies an approved delta to the target's record. The
// increment itself is a single atomic store operation; when it fails nothing
// is persisted and the error is returned as-is, without any business-level
// retry.
func (s *Service) ApplySignal(ctx context.Context, guildID, senderID, targetID, targetName string, delta int64) (*UpdateResult, error) {
	newScore, err := s.store.AddScore(ctx, guildID, targetID, targetName, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply signal from %s: %w", senderID, err)
	}

	rank, err := s.store.RankForScore(ctx, guildID, newScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return &UpdateResult{
		OldScore: newScore - delta,
		NewScore: newScore,
		Rank:     rank,
	}, nil
}

// StartUser lazily registers the caller at score zero and reports the
// current score either way.
func (s *Service) StartUser(ctx context.Context, guildID, userID, displayName string) (*UpdateResult, error) {
	sc, err := s.store.EnsureScore(ctx, guildID, userID, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	rank, err := s.store.RankForScore(ctx, guildID, sc.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return &UpdateResult{OldScore: sc.Score, NewScore: sc.Score, Rank: rank}, nil
}

// UserScore reports the caller's current score without creating a record.
// Returns ErrNotRegistered when none exists.
func (s *Service) UserScore(ctx context.Context, guildID, userID string) (*UpdateResult, error) {
	sc, err := s.store.GetScore(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up score: %w", err)
	}
	if sc == nil {
		return nil, ErrNotRegistered
	}

	rank, err := s.store.RankForScore(ctx, guildID, sc.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return &UpdateResult{OldScore: sc.Score, NewScore: sc.Score, Rank: rank}, nil
}

// Leaderboard returns the guild's top records. Returns ErrEmptyLeaderboard
// when the guild has none.
func (s *Service) Leaderboard(ctx context.Context, guildID string) ([]db.Score, error) {
	scores, err := s.store.TopScores(ctx, guildID, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if len(scores) == 0 {
		return nil, ErrEmptyLeaderboard
	}
	return scores, nil
}
