package game_log

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	gameLogKeyPrefix = "game_log:"
)

// Config holds configuration for the Redis game log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxLines trims each log to its newest lines on append; zero keeps
	// everything
	MaxLines int
}

// redisRepository implements the Repository interface using Redis lists
type redisRepository struct {
	client   *redis.Client
	maxLines int
}

// NewRedis creates a new Redis-backed game log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.MaxLines < 0 {
		return nil, errors.New("max lines cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		maxLines: cfg.MaxLines,
	}, nil
}

func gameLogKey(matchID string) string {
	return gameLogKeyPrefix + matchID
}

// AppendLines pushes lines onto the match's log
func (r *redisRepository) AppendLines(ctx context.Context, input *AppendLinesInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	if len(input.Lines) == 0 {
		return nil
	}

	values := make([]interface{}, len(input.Lines))
	for i, line := range input.Lines {
		values[i] = line
	}

	key := gameLogKey(input.MatchID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if r.maxLines > 0 {
		pipe.LTrim(ctx, key, int64(-r.maxLines), -1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append game log: %w", err)
	}

	return nil
}

// GetLines reads the match's log in order
func (r *redisRepository) GetLines(ctx context.Context, input *GetLinesInput) (*GetLinesOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	lines, err := r.client.LRange(ctx, gameLogKey(input.MatchID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game log: %w", err)
	}

	return &GetLinesOutput{
		Lines: lines,
	}, nil
}

// DeleteLog removes the match's log
func (r *redisRepository) DeleteLog(ctx context.Context, input *DeleteLogInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	if err := r.client.Del(ctx, gameLogKey(input.MatchID)).Err(); err != nil {
		return fmt.Errorf("failed to delete game log: %w", err)
	}

	return nil
}
