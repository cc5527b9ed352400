package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "match_channel:"
	matchesKey       = "matches"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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

func matchKey(id string) string {
	return matchKeyPrefix + id
}

func channelKey(channelID string) string {
	return channelKeyPrefix + channelID
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, matchKey(input.Match.ID), matchJSON, 0)
	pipe.SAdd(ctx, matchesKey, input.Match.ID)

	// Channel lookup, one match per channel
	if input.Match.ChannelID != "" {
		pipe.Set(ctx, channelKey(input.Match.ChannelID), input.Match.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKey(input.MatchID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchByChannel retrieves a match by channel ID from Redis
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	// Load first to find the channel mapping
	match, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, matchKey(input.MatchID))
	pipe.SRem(ctx, matchesKey, input.MatchID)

	if match.ChannelID != "" {
		// Only drop the mapping if it still points at this match
		current, err := r.client.Get(ctx, channelKey(match.ChannelID)).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get match ID for channel: %w", err)
		}
		if current == input.MatchID {
			pipe.Del(ctx, channelKey(match.ChannelID))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// ListMatches retrieves all matches from Redis, oldest first
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	matchIDs, err := r.client.SMembers(ctx, matchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &ListMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	// Fetch every match in one round trip
	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(matchIDs))
	for _, id := range matchIDs {
		cmds[id] = pipe.Get(ctx, matchKey(id))
	}

	// redis.Nil from a single GET is reported per command
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for id, cmd := range cmds {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Deleted between SMEMBERS and GET
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", id, err)
		}

		var match models.Match
		if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", id, err)
		}

		matches = append(matches, &match)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}
