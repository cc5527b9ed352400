package game_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rallied/internal/repositories/game_log Repository

import (
	"context"
)

// Repository defines the interface for the per-match game log
type Repository interface {
	// AppendLines adds lines to the end of a match's log
	AppendLines(ctx context.Context, input *AppendLinesInput) error

	// GetLines retrieves a match's log, optionally only the newest lines
	GetLines(ctx context.Context, input *GetLinesInput) (*GetLinesOutput, error)

	// DeleteLog removes a match's log
	DeleteLog(ctx context.Context, input *DeleteLogInput) error
}
