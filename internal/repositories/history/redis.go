package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// historyKey is the Redis key holding the history blob
const historyKey = "history"

// ErrHistoryNotFound is returned when no history has been stored
var ErrHistoryNotFound = errors.New("history not found")

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
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

// Load retrieves the stored history contents
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	contents, err := r.client.Get(ctx, historyKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return &LoadOutput{
		Contents: contents,
	}, nil
}

// Save stores the full history contents, replacing what was there
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	// Save the whole blob; the in-memory log already enforces the bound
	if err := r.client.Set(ctx, historyKey, input.Contents, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	return nil
}

// Delete removes the stored history
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	deleted, err := r.client.Del(ctx, historyKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}

	if deleted == 0 {
		return ErrHistoryNotFound
	}

	return nil
}
