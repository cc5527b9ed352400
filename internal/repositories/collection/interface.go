package collection

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rallied/internal/repositories/collection Repository

import (
	"context"

	"github.com/KirkDiggler/rallied/internal/models"
)

// Repository defines the interface for card collection persistence
type Repository interface {
	// GetCollection retrieves an owner's unlocked characters and pack count
	GetCollection(ctx context.Context, input *GetCollectionInput) (*models.Collection, error)

	// CreateCollection starts an empty collection; an existing one is returned
	// unchanged
	CreateCollection(ctx context.Context, input *CreateCollectionInput) (*models.Collection, error)

	// RecordPack spends one pack and unlocks the characters drawn against the
	// current collection, atomically
	RecordPack(ctx context.Context, input *RecordPackInput) (*RecordPackOutput, error)
}
