package rally

//go:generate mockgen -package=mocks -destination=mocks/mock_simulator.go github.com/KirkDiggler/rallied/internal/rally Simulator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/models"
	"go.uber.org/zap"
)

// Simulator resolves a single point between two teams
type Simulator interface {
	// Simulate plays one rally. The serving team is whichever team holds
	// serve; the teams are read but not modified.
	Simulate(home, away *models.Team) (*models.RallyResult, error)
}

// Config holds configuration for the rally engine
type Config struct {
	// Roller is the random source for every draw
	Roller dice.Roller

	// Tunables overrides the default rally constants (optional)
	Tunables *Tunables

	Logger *zap.Logger
}

// Engine is the rally state machine
type Engine struct {
	roller   dice.Roller
	tunables *Tunables
	logger   *zap.Logger
}

// New creates a new rally engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	tunables := cfg.Tunables
	if tunables == nil {
		tunables = DefaultTunables()
	}
	if err := tunables.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		roller:   cfg.Roller,
		tunables: tunables,
		logger:   logging.OrNop(cfg.Logger),
	}, nil
}

// court is one side of the net for the duration of a rally
type court struct {
	side   models.Side
	name   string
	lineup []models.Player
}

// exchange is the state carried between loop iterations
type exchange struct {
	attacking   *court
	defending   *court
	lastToucher *models.Player
	count       int
}

// swap hands the ball to the other side
func (x *exchange) swap() {
	x.attacking, x.defending = x.defending, x.attacking
}

// court returns the court of the given side
func (x *exchange) court(side models.Side) *court {
	if x.attacking.side == side {
		return x.attacking
	}
	return x.defending
}

// rallyLog collects the events of a rally in order
type rallyLog struct {
	lines []string
}

func (l *rallyLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// pct formats a probability as a one-decimal percentage
func pct(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Simulate plays one rally from serve to point
func (e *Engine) Simulate(home, away *models.Team) (*models.RallyResult, error) {
	if home == nil || away == nil {
		return nil, ErrNilTeam
	}
	if err := ValidateLineup(home); err != nil {
		return nil, fmt.Errorf("%s: %w", home.Name, err)
	}
	if err := ValidateLineup(away); err != nil {
		return nil, fmt.Errorf("%s: %w", away.Name, err)
	}
	if home.Serving == away.Serving {
		return nil, ErrInvalidServeState
	}

	homeCourt := &court{side: models.SideHome, name: home.Name, lineup: OnCourt(home)}
	awayCourt := &court{side: models.SideAway, name: away.Name, lineup: OnCourt(away)}

	x := &exchange{attacking: homeCourt, defending: awayCourt}
	if away.Serving {
		x.swap()
	}

	log := &rallyLog{lines: make([]string, 0, 16)}
	winner, capReached := e.play(x, log)

	result := &models.RallyResult{
		Winner:     winner,
		Log:        log.lines,
		Exchanges:  x.count,
		CapReached: capReached,
	}

	e.logger.Debug("rally complete",
		zap.String("winner", string(winner)),
		zap.Int("exchanges", x.count),
		zap.Bool("cap_reached", capReached),
		zap.Int("events", len(log.lines)))

	return result, nil
}

// play runs the state machine and returns the winning side and whether the
// exchange cap decided it
func (e *Engine) play(x *exchange, log *rallyLog) (models.Side, bool) {
	server := x.attacking.lineup[0]
	serveProb := SuccessProbability(server, ActionServe, nil)
	log.add("%s serves (%s chance)", server.Name, pct(serveProb))

	if !e.resolve(serveProb) {
		log.add("❌ Service error - %s! Point to %s", e.failureCause(FailureServe), x.defending.name)
		return x.defending.side, false
	}
	log.add("✅ Good serve!")
	x.lastToucher = &server

	for x.count < e.tunables.ExchangeCap {
		x.count++

		action, verb, noun, failure := ActionReceive, "receives", "Reception", FailureReception
		if x.count > 1 {
			action, verb, noun, failure = ActionDig, "digs", "Dig", FailureDig
		}

		receiver := SelectActor(x.defending.lineup, action, x.lastToucher)
		receiveProb := SuccessProbability(receiver, action, nil)
		log.add("%s %s (%s chance)", receiver.Name, verb, pct(receiveProb))

		if !e.resolve(receiveProb) {
			log.add("❌ %s error - %s! Point to %s", noun, e.failureCause(failure), x.attacking.name)
			return x.attacking.side, false
		}
		log.add("✅ Good %s!", strings.ToLower(noun))

		setter := SelectActor(x.defending.lineup, ActionSet, &receiver)
		setProb := SuccessProbability(setter, ActionSet, nil)
		log.add("%s sets (%s chance)", setter.Name, pct(setProb))

		if !e.resolve(setProb) {
			log.add("❌ Setting error - %s! Point to %s", e.failureCause(FailureSet), x.attacking.name)
			return x.attacking.side, false
		}
		log.add("✅ Good set!")

		attacker := SelectActor(x.defending.lineup, ActionAttack, &setter)
		blocker := SelectActor(x.attacking.lineup, ActionBlock, nil)
		attackProb := SuccessProbability(attacker, ActionAttack, &blocker)
		blockProb := SuccessProbability(blocker, ActionBlock, nil)
		log.add("%s attacks (%s chance) vs %s blocking (%s chance)",
			attacker.Name, pct(attackProb), blocker.Name, pct(blockProb))

		blocked := e.resolve(blockProb)
		attacked := e.resolve(attackProb)

		switch {
		case blocked:
			if e.chance(e.tunables.BlockKillThreshold) {
				log.add("🛡️ Block kill! %s stuff blocks! Point to %s", blocker.Name, x.attacking.name)
				return x.attacking.side, false
			}
			if e.chance(e.tunables.BlockTouchStayThreshold) {
				log.add("🛡️ Block touch! Ball deflected by %s stays on %s's side", blocker.Name, x.attacking.name)
				x.swap()
			} else {
				log.add("🛡️ Block touch! Ball deflected by %s back to %s", blocker.Name, x.defending.name)
			}
			x.lastToucher = &blocker

		case attacked:
			if e.chance(e.tunables.AttackKillThreshold) {
				log.add("⚡ Kill! %s puts it away! Point to %s", attacker.Name, x.defending.name)
				return x.defending.side, false
			}
			log.add("💥 Hard-driven attack by %s - defended by %s!", attacker.Name, x.attacking.name)
			x.swap()
			x.lastToucher = &attacker

		default:
			log.add("❌ Attack error - %s %s! Point to %s", attacker.Name, e.failureCause(FailureAttack), x.attacking.name)
			return x.attacking.side, false
		}
	}

	winner := models.SideAway
	if e.chance(0.5) {
		winner = models.SideHome
	}
	log.add("🏐 Long rally ends after %d exchanges (exchange cap reached)! Point to %s",
		e.tunables.ExchangeCap, x.court(winner).name)

	return winner, true
}
