package collection

import (
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/models"
	collectionRepo "github.com/KirkDiggler/rallied/internal/repositories/collection"
	"go.uber.org/zap"
)

// DefaultPackSize is the number of characters a pack unlocks
const DefaultPackSize = 3

// Config holds configuration for the collection service
type Config struct {
	Repository collectionRepo.Repository
	Characters CharacterSource
	Roller     dice.Roller
	Logger     *zap.Logger

	// StartingPacks is granted to new collectors; zero means none
	StartingPacks int

	// PackSize is the most characters one pack unlocks; DefaultPackSize when zero
	PackSize int
}

type GetCollectionInput struct {
	OwnerID string
}

// GetCollectionOutput contains an owner's collection
type GetCollectionOutput struct {
	Collection *models.Collection

	// Unlocked are the owner's characters in catalog order
	Unlocked []models.Character

	// Total is the number of collectible characters
	Total int
}

type OpenPackInput struct {
	OwnerID string
}

// OpenPackOutput contains the result of opening a pack
type OpenPackOutput struct {
	// Pulled are the newly unlocked characters; empty once everything is
	// unlocked
	Pulled []models.Character

	// Collection is the collection after the pack was recorded
	Collection *models.Collection
}
