package collection

import "github.com/KirkDiggler/rallied/internal/models"

type GetCollectionInput struct {
	OwnerID string
}

type CreateCollectionInput struct {
	OwnerID   string
	PacksLeft int
}

// RecordPackInput contains parameters for spending a pack
type RecordPackInput struct {
	OwnerID string

	// Draw picks the characters to unlock given the owner's current unlocked
	// IDs. It runs inside the transaction, once per attempt. A nil Draw
	// spends the pack without pulling anything.
	Draw func(unlockedIDs []string) []string
}

// RecordPackOutput contains the collection after the pack was spent
type RecordPackOutput struct {
	Collection *models.Collection

	// PulledIDs are the characters the pack newly unlocked, in draw order
	PulledIDs []string
}
