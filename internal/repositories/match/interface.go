package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rallied/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/rallied/internal/models"
)

// Repository defines the interface for match data persistence
type Repository interface {
	// SaveMatch persists a match and its channel mapping
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByChannel retrieves the match running in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error)

	// DeleteMatch removes a match and its channel mapping
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// ListMatches retrieves every stored match
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)
}
