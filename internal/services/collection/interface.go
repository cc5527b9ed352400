package collection

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rallied/internal/services/collection Service

import (
	"context"

	"github.com/KirkDiggler/rallied/internal/models"
)

// Service defines the interface for card collection operations
type Service interface {
	// GetCollection returns the owner's collection, starting a new one with
	// the configured packs on first use
	GetCollection(ctx context.Context, input *GetCollectionInput) (*GetCollectionOutput, error)

	// OpenPack spends one pack and unlocks up to a pack's worth of characters
	// the owner does not have yet
	OpenPack(ctx context.Context, input *OpenPackInput) (*OpenPackOutput, error)
}

// CharacterSource lists every collectible character
type CharacterSource interface {
	Characters() []models.Character
}
