package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// leaderboardKey is the Redis key holding the encoded leaderboard
const leaderboardKey = "leaderboard"

// ErrLeaderboardNotFound is returned when no leaderboard has been stored
var ErrLeaderboardNotFound = errors.New("leaderboard not found")

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Load retrieves the stored leaderboard snapshot
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	encoded, err := r.client.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLeaderboardNotFound
		}
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return &LoadOutput{
		Encoded: encoded,
	}, nil
}

// Save stores the encoded leaderboard, replacing what was there
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Set(ctx, leaderboardKey, input.Encoded, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}
