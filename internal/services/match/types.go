package match

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rallied/internal/common/clock"
	"github.com/KirkDiggler/rallied/internal/common/uuid"
	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/KirkDiggler/rallied/internal/rally"
	gameLogRepo "github.com/KirkDiggler/rallied/internal/repositories/game_log"
	matchRepo "github.com/KirkDiggler/rallied/internal/repositories/match"
	"github.com/KirkDiggler/rallied/internal/services/messaging"
	"go.uber.org/zap"
)

// DefaultAutoPlayInterval is the delay between auto-played points
const DefaultAutoPlayInterval = 2 * time.Second

// LogSeparator closes each rally in the game log
const LogSeparator = "---"

// Config holds configuration for the match service
type Config struct {
	// Delay between auto-played points; DefaultAutoPlayInterval when zero
	AutoPlayInterval time.Duration

	// OnPoint receives every auto-played point. It runs on the auto-play
	// goroutine and must not call ToggleAutoPlay, ResetMatch or Close.
	OnPoint func(event *PointEvent)

	// Repository dependencies
	MatchRepo   matchRepo.Repository
	GameLogRepo gameLogRepo.Repository

	// Service dependencies
	Simulator     rally.Simulator
	Teams         TeamProvider
	Messaging     messaging.Service // optional commentary
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// PointEvent describes one played point
type PointEvent struct {
	// Match is the match after the point was applied
	Match *models.Match

	// Result is the rally outcome and its event log
	Result *models.RallyResult

	// ScoreLine is the score after the point, as written to the game log
	ScoreLine string

	// Sideout indicates the receiving team won and took serve
	Sideout bool

	// Commentary is an optional flavor line; empty when unavailable
	Commentary string

	// AutoPlayed indicates the point was played by the auto-play loop
	AutoPlayed bool
}

// ScoreLine formats the score the way the game log records it
func ScoreLine(home, away models.Team) string {
	return fmt.Sprintf("Score: %s %d - %s %d", home.Name, home.Score, away.Name, away.Score)
}

// CreateMatchInput contains parameters for creating a match
type CreateMatchInput struct {
	// ChannelID is the Discord channel the match is played in
	ChannelID string
}

// CreateMatchOutput contains the new match
type CreateMatchOutput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchOutput struct {
	Match    *models.Match
	AutoPlay bool
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type GetMatchByChannelOutput struct {
	Match    *models.Match
	AutoPlay bool
}

// PlayPointInput contains parameters for playing a point
type PlayPointInput struct {
	MatchID string
}

// PlayPointOutput contains the played point
type PlayPointOutput struct {
	Event *PointEvent
}

type ToggleAutoPlayInput struct {
	MatchID string
}

// ToggleAutoPlayOutput reports the auto-play state after the toggle
type ToggleAutoPlayOutput struct {
	Enabled bool
}

type ResetMatchInput struct {
	MatchID string
}

type ResetMatchOutput struct {
	Match *models.Match
}

type EndMatchInput struct {
	MatchID string
}

// EndMatchOutput contains the match as it stood when it ended
type EndMatchOutput struct {
	Match *models.Match
}

// GetLogInput contains parameters for reading a game log
type GetLogInput struct {
	MatchID string

	// Limit keeps only the newest lines; zero returns everything
	Limit int
}

type GetLogOutput struct {
	Lines []string
}

type SetMessageIDInput struct {
	MatchID   string
	MessageID string
}
