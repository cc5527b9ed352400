package collection

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; suffixed with the owner and the field
	collectionKeyPrefix = "collection:"

	// maxTxRetries bounds optimistic transaction retries in RecordPack
	maxTxRetries = 5
)

var (
	// ErrCollectionNotFound is returned when an owner has no collection yet
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrNoPacksLeft is returned when an owner has spent every pack
	ErrNoPacksLeft = errors.New("no packs left")

	// ErrConcurrentUpdate is returned when RecordPack keeps losing the race
	ErrConcurrentUpdate = errors.New("collection changed concurrently")
)

// Config holds configuration for the Redis collection repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed collection repository
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

func unlockedKey(ownerID string) string {
	return collectionKeyPrefix + ownerID + ":unlocked"
}

func packsKey(ownerID string) string {
	return collectionKeyPrefix + ownerID + ":packs"
}

// GetCollection reads the owner's collection from Redis
func (r *redisRepository) GetCollection(ctx context.Context, input *GetCollectionInput) (*models.Collection, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	return r.read(ctx, r.client, input.OwnerID)
}

// read loads a collection; unlocked ids come back sorted
func (r *redisRepository) read(ctx context.Context, cmd redis.Cmdable, ownerID string) (*models.Collection, error) {
	packs, err := cmd.Get(ctx, packsKey(ownerID)).Int()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get packs: %w", err)
	}

	unlocked, err := cmd.SMembers(ctx, unlockedKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get unlocked characters: %w", err)
	}
	sort.Strings(unlocked)

	return &models.Collection{
		OwnerID:     ownerID,
		UnlockedIDs: unlocked,
		PacksLeft:   packs,
	}, nil
}

// CreateCollection seeds the pack counter if the owner has none
func (r *redisRepository) CreateCollection(ctx context.Context, input *CreateCollectionInput) (*models.Collection, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	if input.PacksLeft < 0 {
		return nil, errors.New("packs left cannot be negative")
	}

	if err := r.client.SetNX(ctx, packsKey(input.OwnerID), input.PacksLeft, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return r.read(ctx, r.client, input.OwnerID)
}

// RecordPack decrements the pack counter and adds the drawn characters to
// the unlocked set. Both keys are watched, so a retry draws again from the
// collection a concurrent open left behind.
func (r *redisRepository) RecordPack(ctx context.Context, input *RecordPackInput) (*RecordPackOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var pulled []string
	txf := func(tx *redis.Tx) error {
		collection, err := r.read(ctx, tx, input.OwnerID)
		if err != nil {
			return err
		}

		if collection.PacksLeft <= 0 {
			return ErrNoPacksLeft
		}

		pulled = newIDs(collection, input.Draw)
		members := make([]interface{}, len(pulled))
		for i, id := range pulled {
			members[i] = id
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(members) > 0 {
				pipe.SAdd(ctx, unlockedKey(input.OwnerID), members...)
			}
			pipe.Decr(ctx, packsKey(input.OwnerID))
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, packsKey(input.OwnerID), unlockedKey(input.OwnerID))
		if err == nil {
			collection, err := r.read(ctx, r.client, input.OwnerID)
			if err != nil {
				return nil, err
			}
			return &RecordPackOutput{
				Collection: collection,
				PulledIDs:  pulled,
			}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrCollectionNotFound) || errors.Is(err, ErrNoPacksLeft) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record pack: %w", err)
	}

	return nil, ErrConcurrentUpdate
}

// newIDs runs draw against the collection and keeps the first occurrence of
// every ID not unlocked yet
func newIDs(collection *models.Collection, draw func(unlockedIDs []string) []string) []string {
	if draw == nil {
		return []string{}
	}

	seen := make(map[string]bool, len(collection.UnlockedIDs))
	for _, id := range collection.UnlockedIDs {
		seen[id] = true
	}

	ids := make([]string, 0)
	for _, id := range draw(collection.UnlockedIDs) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
