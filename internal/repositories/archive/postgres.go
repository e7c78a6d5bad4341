package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// DefaultRecentLimit is the number of rounds returned when no limit is given
const DefaultRecentLimit = 10

// Config holds configuration for the Postgres archive repository
type Config struct {
	// Pool is the pgx connection pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed archive repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("pool cannot be nil")
	}

	// Test connection
	if err := cfg.Pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &postgresRepository{
		db: cfg.Pool,
	}, nil
}

// EnsureSchema creates the archive tables if they do not exist yet
func (r *postgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS rounds (
			id        TEXT PRIMARY KEY,
			played_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create rounds table: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS round_results (
			round_id    TEXT NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
			slot        INT NOT NULL,
			player_name TEXT NOT NULL,
			outcome     TEXT NOT NULL,
			reaction_ms BIGINT,
			PRIMARY KEY (round_id, slot)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create round_results table: %w", err)
	}

	return nil
}

// SaveRound stores a completed round and all of its results in one
// transaction so a half-written round never shows up in listings
func (r *postgresRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	if input.Round.ID == "" {
		return errors.New("round ID cannot be empty")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO rounds (id, played_at) VALUES ($1, $2)`,
		input.Round.ID, input.Round.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}

	for _, result := range input.Round.Results {
		var reactionMS *int64
		if result.Outcome.Kind == models.OutcomeReaction {
			ms := result.Outcome.Reaction.Milliseconds()
			reactionMS = &ms
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO round_results (round_id, slot, player_name, outcome, reaction_ms)
			 VALUES ($1, $2, $3, $4, $5)`,
			input.Round.ID, result.Slot, result.Name, string(result.Outcome.Kind), reactionMS,
		)
		if err != nil {
			return fmt.Errorf("failed to insert round result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit round: %w", err)
	}

	return nil
}

// RecentRounds retrieves the most recently played rounds, newest first
func (r *postgresRepository) RecentRounds(ctx context.Context, input *RecentRoundsInput) (*RecentRoundsOutput, error) {
	limit := DefaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.played_at, res.slot, res.player_name, res.outcome, res.reaction_ms
		 FROM rounds r
		 JOIN round_results res ON res.round_id = r.id
		 WHERE r.id IN (SELECT id FROM rounds ORDER BY played_at DESC LIMIT $1)
		 ORDER BY r.played_at DESC, r.id, res.slot`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*models.Round
	var current *models.Round

	for rows.Next() {
		var (
			id         string
			playedAt   time.Time
			slot       int
			playerName string
			outcome    string
			reactionMS *int64
		)

		if err := rows.Scan(&id, &playedAt, &slot, &playerName, &outcome, &reactionMS); err != nil {
			return nil, fmt.Errorf("failed to scan round result: %w", err)
		}

		if current == nil || current.ID != id {
			current = &models.Round{
				ID:       id,
				PlayedAt: playedAt,
			}
			rounds = append(rounds, current)
		}

		result := models.SlotResult{
			Slot: slot,
			Name: playerName,
			Outcome: models.Outcome{
				Kind: models.OutcomeKind(outcome),
			},
		}
		if reactionMS != nil {
			result.Outcome.Reaction = time.Duration(*reactionMS) * time.Millisecond
		}

		current.Results = append(current.Results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent rounds: %w", err)
	}

	return &RecentRoundsOutput{
		Rounds: rounds,
	}, nil
}
