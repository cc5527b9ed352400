package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rallied/internal/services/match Service

import (
	"context"

	"github.com/KirkDiggler/rallied/internal/models"
)

// Service defines the interface for match operations
type Service interface {
	// CreateMatch starts a match with the default rosters in a Discord channel
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetMatchByChannel retrieves the match running in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error)

	// PlayPoint simulates one rally and applies it to the match
	PlayPoint(ctx context.Context, input *PlayPointInput) (*PlayPointOutput, error)

	// ToggleAutoPlay starts or stops playing points on a timer
	ToggleAutoPlay(ctx context.Context, input *ToggleAutoPlayInput) (*ToggleAutoPlayOutput, error)

	// ResetMatch stops auto-play and restores scores, lineups and the log
	ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error)

	// EndMatch stops auto-play and deletes the match and its game log
	EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error)

	// GetLog returns the game log of a match
	GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error)

	// SetMessageID records the Discord message that displays the match
	SetMessageID(ctx context.Context, input *SetMessageIDInput) error

	// Close stops every auto-play loop
	Close() error
}

// TeamProvider supplies the rosters a new or reset match starts from
type TeamProvider interface {
	DefaultTeams() (models.Team, models.Team)
}
