package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/rallied/internal/common/clock"
	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/common/uuid"
	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/KirkDiggler/rallied/internal/rally"
	gameLogRepo "github.com/KirkDiggler/rallied/internal/repositories/game_log"
	matchRepo "github.com/KirkDiggler/rallied/internal/repositories/match"
	"github.com/KirkDiggler/rallied/internal/services/messaging"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	matchRepo     matchRepo.Repository
	gameLogRepo   gameLogRepo.Repository
	simulator     rally.Simulator
	teams         TeamProvider
	messaging     messaging.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger

	interval time.Duration
	onPoint  func(event *PointEvent)

	// mu guards locks, autoPlays and closed
	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	autoPlays map[string]*autoPlay
	closed    bool
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.GameLogRepo == nil {
		return nil, ErrNilGameLogRepo
	}

	if cfg.Simulator == nil {
		return nil, ErrNilSimulator
	}

	if cfg.Teams == nil {
		return nil, ErrNilTeamProvider
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	interval := cfg.AutoPlayInterval
	if interval == 0 {
		interval = DefaultAutoPlayInterval
	}
	if interval < 0 {
		return nil, ErrInvalidInterval
	}

	return &service{
		matchRepo:     cfg.MatchRepo,
		gameLogRepo:   cfg.GameLogRepo,
		simulator:     cfg.Simulator,
		teams:         cfg.Teams,
		messaging:     cfg.Messaging,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logging.OrNop(cfg.Logger),
		interval:      interval,
		onPoint:       cfg.OnPoint,
		locks:         make(map[string]*sync.Mutex),
		autoPlays:     make(map[string]*autoPlay),
	}, nil
}

// matchLock returns the mutex serializing every change to one match
func (s *service) matchLock(matchID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[matchID] = lock
	}
	return lock
}

// forgetLock drops the match's mutex once the match no longer exists
func (s *service) forgetLock(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, matchID)
}

// getMatch loads a match, translating the repository's not-found error
func (s *service) getMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

// CreateMatch starts a match with the default rosters in a Discord channel
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	// One match per channel
	existing, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil && existing != nil {
		return nil, ErrMatchAlreadyExists
	}
	if err != nil && !errors.Is(err, matchRepo.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check for existing match: %w", err)
	}

	home, away := s.teams.DefaultTeams()
	now := s.clock.Now()
	match := &models.Match{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		Home:      home,
		Away:      away,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	s.logger.Info("match created",
		zap.String("match_id", match.ID),
		zap.String("channel_id", match.ChannelID),
		zap.String("home", home.Name),
		zap.String("away", away.Name))

	return &CreateMatchOutput{
		Match: match,
	}, nil
}

// GetMatch retrieves a match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	match, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{
		Match:    match,
		AutoPlay: s.autoPlaying(match.ID),
	}, nil
}

// GetMatchByChannel retrieves the match running in a channel
func (s *service) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	match, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &GetMatchByChannelOutput{
		Match:    match,
		AutoPlay: s.autoPlaying(match.ID),
	}, nil
}

// PlayPoint simulates one rally. It is rejected while auto-play owns the match.
func (s *service) PlayPoint(ctx context.Context, input *PlayPointInput) (*PlayPointOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	lock := s.matchLock(input.MatchID)
	lock.Lock()
	defer lock.Unlock()

	if s.autoPlaying(input.MatchID) {
		return nil, ErrAutoPlayActive
	}

	event, err := s.playPoint(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &PlayPointOutput{
		Event: event,
	}, nil
}

// playPoint runs one rally and persists the outcome. The caller holds the
// match lock.
func (s *service) playPoint(ctx context.Context, matchID string) (*PointEvent, error) {
	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result, err := s.simulator.Simulate(&match.Home, &match.Away)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate rally: %w", err)
	}

	home, away, sideout := rally.ApplyPoint(match.Home, match.Away, result.Winner)
	match.Home = home
	match.Away = away
	match.RallyCount++
	match.UpdatedAt = s.clock.Now()

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	scoreLine := ScoreLine(match.Home, match.Away)
	lines := make([]string, 0, len(result.Log)+2)
	lines = append(lines, result.Log...)
	lines = append(lines, scoreLine, LogSeparator)

	if err := s.gameLogRepo.AppendLines(ctx, &gameLogRepo.AppendLinesInput{
		MatchID: match.ID,
		Lines:   lines,
	}); err != nil {
		return nil, fmt.Errorf("failed to append game log: %w", err)
	}

	event := &PointEvent{
		Match:      match,
		Result:     result,
		ScoreLine:  scoreLine,
		Sideout:    sideout,
		Commentary: s.commentary(ctx, match, result, sideout),
	}

	s.logger.Info("point played",
		zap.String("match_id", match.ID),
		zap.Int("rally", match.RallyCount),
		zap.String("winner", string(result.Winner)),
		zap.Bool("sideout", sideout),
		zap.Int("exchanges", result.Exchanges),
		zap.Int("home_score", match.Home.Score),
		zap.Int("away_score", match.Away.Score))

	return event, nil
}

// commentary asks the messaging service for a flavor line. Failures only
// cost the line.
func (s *service) commentary(ctx context.Context, match *models.Match, result *models.RallyResult, sideout bool) string {
	if s.messaging == nil {
		return ""
	}

	winner := match.Team(result.Winner)
	loser := match.Team(result.Winner.Other())
	output, err := s.messaging.GetPointMessage(ctx, &messaging.GetPointMessageInput{
		WinnerName: winner.Name,
		LoserName:  loser.Name,
		Sideout:    sideout,
		CapReached: result.CapReached,
		Exchanges:  result.Exchanges,
	})
	if err != nil {
		s.logger.Warn("failed to get point commentary",
			zap.String("match_id", match.ID),
			zap.Error(err))
		return ""
	}

	return output.Message
}

// ResetMatch stops auto-play, restores the default rosters with zero scores
// and clears the game log
func (s *service) ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	s.stopAutoPlay(input.MatchID)

	lock := s.matchLock(input.MatchID)
	lock.Lock()
	defer lock.Unlock()

	match, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	match.Home, match.Away = s.teams.DefaultTeams()
	match.RallyCount = 0
	match.UpdatedAt = s.clock.Now()

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	if err := s.gameLogRepo.DeleteLog(ctx, &gameLogRepo.DeleteLogInput{MatchID: match.ID}); err != nil {
		return nil, fmt.Errorf("failed to clear game log: %w", err)
	}

	s.logger.Info("match reset", zap.String("match_id", match.ID))

	return &ResetMatchOutput{
		Match: match,
	}, nil
}

// EndMatch stops auto-play and deletes the match and its game log, freeing
// the channel for a new match
func (s *service) EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	s.stopAutoPlay(input.MatchID)

	lock := s.matchLock(input.MatchID)
	lock.Lock()
	defer lock.Unlock()

	match, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{MatchID: match.ID}); err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	if err := s.gameLogRepo.DeleteLog(ctx, &gameLogRepo.DeleteLogInput{MatchID: match.ID}); err != nil {
		s.logger.Warn("failed to delete game log",
			zap.String("match_id", match.ID),
			zap.Error(err))
	}

	s.forgetLock(match.ID)

	s.logger.Info("match ended",
		zap.String("match_id", match.ID),
		zap.String("channel_id", match.ChannelID),
		zap.Int("rallies", match.RallyCount),
		zap.Int("home_score", match.Home.Score),
		zap.Int("away_score", match.Away.Score))

	return &EndMatchOutput{
		Match: match,
	}, nil
}

// GetLog returns the game log of a match
func (s *service) GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	if _, err := s.getMatch(ctx, input.MatchID); err != nil {
		return nil, err
	}

	output, err := s.gameLogRepo.GetLines(ctx, &gameLogRepo.GetLinesInput{
		MatchID: input.MatchID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get game log: %w", err)
	}

	return &GetLogOutput{
		Lines: output.Lines,
	}, nil
}

// SetMessageID records the Discord message that displays the match
func (s *service) SetMessageID(ctx context.Context, input *SetMessageIDInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("match ID is required")
	}

	lock := s.matchLock(input.MatchID)
	lock.Lock()
	defer lock.Unlock()

	match, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return err
	}

	if match.MessageID == input.MessageID {
		return nil
	}

	match.MessageID = input.MessageID
	match.UpdatedAt = s.clock.Now()

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}
