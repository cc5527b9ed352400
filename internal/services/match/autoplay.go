package match

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// autoPlay is one running auto-play loop
type autoPlay struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// stop cancels the loop and waits for it to exit
func (a *autoPlay) stop() {
	a.cancel()
	<-a.done
}

// autoPlaying reports whether a loop is running for the match
func (s *service) autoPlaying(matchID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.autoPlays[matchID]
	return ok
}

// ToggleAutoPlay starts or stops playing points on a timer
func (s *service) ToggleAutoPlay(ctx context.Context, input *ToggleAutoPlayInput) (*ToggleAutoPlayOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("match ID is required")
	}

	if s.stopAutoPlay(input.MatchID) {
		return &ToggleAutoPlayOutput{
			Enabled: false,
		}, nil
	}

	if _, err := s.getMatch(ctx, input.MatchID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrServiceClosed
	}
	if _, ok := s.autoPlays[input.MatchID]; ok {
		// another caller started it first
		s.mu.Unlock()
		return &ToggleAutoPlayOutput{
			Enabled: true,
		}, nil
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	ap := &autoPlay{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.autoPlays[input.MatchID] = ap
	s.mu.Unlock()

	go s.runAutoPlay(loopCtx, input.MatchID, ap)

	s.logger.Info("auto-play started",
		zap.String("match_id", input.MatchID),
		zap.Duration("interval", s.interval))

	return &ToggleAutoPlayOutput{
		Enabled: true,
	}, nil
}

// stopAutoPlay stops the match's loop if one runs and reports whether it did.
// No point is played after it returns.
func (s *service) stopAutoPlay(matchID string) bool {
	s.mu.Lock()
	ap, ok := s.autoPlays[matchID]
	delete(s.autoPlays, matchID)
	s.mu.Unlock()

	if !ok {
		return false
	}

	ap.stop()
	s.logger.Info("auto-play stopped", zap.String("match_id", matchID))
	return true
}

// forget removes ap from the registry if it is still the match's loop
func (s *service) forget(matchID string, ap *autoPlay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.autoPlays[matchID] == ap {
		delete(s.autoPlays, matchID)
	}
}

// runAutoPlay plays a point on every tick until ctx is cancelled or the
// match disappears
func (s *service) runAutoPlay(ctx context.Context, matchID string, ap *autoPlay) {
	defer close(ap.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		event, err := s.autoPlayPoint(ctx, matchID)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			s.logger.Error("auto-play point failed",
				zap.String("match_id", matchID),
				zap.Error(err))
			if errors.Is(err, ErrMatchNotFound) {
				s.forget(matchID, ap)
				s.forgetLock(matchID)
				return
			}
			continue
		}

		if s.onPoint != nil {
			s.onPoint(event)
		}
	}
}

// autoPlayPoint plays one point under the match lock unless the loop was
// cancelled while waiting for it
func (s *service) autoPlayPoint(ctx context.Context, matchID string) (*PointEvent, error) {
	lock := s.matchLock(matchID)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// a started point completes even if the loop is cancelled meanwhile
	event, err := s.playPoint(context.WithoutCancel(ctx), matchID)
	if err != nil {
		return nil, err
	}
	event.AutoPlayed = true

	return event, nil
}

// Close stops every auto-play loop. Further toggles fail with ErrServiceClosed.
func (s *service) Close() error {
	s.mu.Lock()
	s.closed = true
	running := s.autoPlays
	s.autoPlays = make(map[string]*autoPlay)
	s.mu.Unlock()

	for matchID, ap := range running {
		ap.stop()
		s.logger.Info("auto-play stopped", zap.String("match_id", matchID))
	}

	return nil
}
