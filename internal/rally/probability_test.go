package rally

import (
	"math/rand"
	"testing"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/stretchr/testify/assert"
)

var definedActions = []Action{ActionServe, ActionReceive, ActionSet, ActionAttack, ActionBlock, ActionDig}

func TestSuccessProbabilityKnownValues(t *testing.T) {
	team := karasuno(true)
	kageyama := team.Players[0]

	// serve: avg(85, 90, 75) = 83.33, (0.70 + 0.3333) * 0.80
	assert.InDelta(t, 0.826667, SuccessProbability(kageyama, ActionServe, nil), 1e-6)

	// modifier is applied before the stamina factor
	average := uniformPlayer("avg", 50, 50)
	assert.InDelta(t, 0.49, SuccessProbability(average, ActionServe, nil), 1e-9)
	assert.InDelta(t, 0.42, SuccessProbability(average, ActionDig, nil), 1e-9)
	assert.InDelta(t, 0.455, SuccessProbability(average, ActionAttack, nil), 1e-9)

	// attack against a blocker: base 0.6 - 0.2 * (50+50)/200 = 0.5
	assert.InDelta(t, 0.35, SuccessProbability(average, ActionAttack, &average), 1e-9)
}

func TestSuccessProbabilityUnknownAction(t *testing.T) {
	p := uniformPlayer("p", 99, 99)
	assert.Equal(t, 0.5, SuccessProbability(p, ActionUnknown, nil))
	assert.Equal(t, 0.5, SuccessProbability(p, Action(42), nil))
}

func TestSuccessProbabilityClamped(t *testing.T) {
	weak := uniformPlayer("weak", 0, 0)
	strong := uniformPlayer("strong", 99, 99)

	// (0.40 - 0.5) * 0.7 and (0.60 - 0.5) * 0.7 fall below the floor
	assert.Equal(t, MinProbability, SuccessProbability(weak, ActionBlock, nil))
	assert.Equal(t, MinProbability, SuccessProbability(weak, ActionDig, nil))
	assert.Equal(t, MinProbability, SuccessProbability(weak, ActionAttack, &strong))

	for _, action := range []Action{ActionServe, ActionReceive, ActionSet, ActionAttack, ActionDig} {
		assert.Equal(t, MaxProbability, SuccessProbability(strong, action, nil), action.String())
	}

	// block tops out below the ceiling: (0.40 + 0.49) * 0.99
	assert.InDelta(t, 0.8811, SuccessProbability(strong, ActionBlock, nil), 1e-9)
}

func TestSuccessProbabilityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomStats := func() models.Stats {
		v := func() int { return rng.Intn(models.StatMax + 1) }
		return models.Stats{
			Attack: v(), Block: v(), Serve: v(), Receive: v(), Set: v(),
			Speed: v(), Jump: v(), Stamina: v(), Technique: v(), Mental: v(),
		}
	}

	for i := 0; i < 2000; i++ {
		player := models.Player{ID: "p", Stats: randomStats()}
		opponent := models.Player{ID: "o", Stats: randomStats()}

		for _, action := range definedActions {
			for _, opp := range []*models.Player{nil, &opponent} {
				p := SuccessProbability(player, action, opp)
				assert.GreaterOrEqual(t, p, MinProbability)
				assert.LessOrEqual(t, p, MaxProbability)
			}
		}
	}
}

func TestSuccessProbabilityStaminaFloor(t *testing.T) {
	tired := uniformPlayer("tired", 60, 10)
	floor := uniformPlayer("floor", 60, 70)

	for _, action := range definedActions {
		assert.Equal(t, SuccessProbability(floor, action, nil), SuccessProbability(tired, action, nil), action.String())
	}
}

func TestSuccessProbabilityMonotonic(t *testing.T) {
	setters := map[Action][]func(*models.Stats, int){
		ActionServe:   {func(s *models.Stats, v int) { s.Serve = v }, func(s *models.Stats, v int) { s.Technique = v }, func(s *models.Stats, v int) { s.Mental = v }},
		ActionReceive: {func(s *models.Stats, v int) { s.Receive = v }, func(s *models.Stats, v int) { s.Speed = v }, func(s *models.Stats, v int) { s.Technique = v }},
		ActionSet:     {func(s *models.Stats, v int) { s.Set = v }, func(s *models.Stats, v int) { s.Technique = v }, func(s *models.Stats, v int) { s.Mental = v }},
		ActionAttack:  {func(s *models.Stats, v int) { s.Attack = v }, func(s *models.Stats, v int) { s.Jump = v }, func(s *models.Stats, v int) { s.Technique = v }},
		ActionBlock:   {func(s *models.Stats, v int) { s.Block = v }, func(s *models.Stats, v int) { s.Jump = v }, func(s *models.Stats, v int) { s.Technique = v }},
		ActionDig:     {func(s *models.Stats, v int) { s.Receive = v }, func(s *models.Stats, v int) { s.Speed = v }, func(s *models.Stats, v int) { s.Mental = v }},
	}

	for _, base := range []int{0, 30, 60, 90} {
		for action, fields := range setters {
			for _, set := range fields {
				player := uniformPlayer("p", base, 80)
				previous := -1.0
				for v := models.StatMin; v <= models.StatMax; v++ {
					set(&player.Stats, v)
					p := SuccessProbability(player, action, nil)
					assert.GreaterOrEqual(t, p, previous, "%s at %d", action, v)
					previous = p
				}
			}
		}
	}
}

func TestAttackProbabilityAgainstBlocker(t *testing.T) {
	attacker := uniformPlayer("attacker", 60, 80)
	baseline := SuccessProbability(attacker, ActionAttack, nil)

	previous := baseline
	for v := models.StatMin; v <= models.StatMax; v += 11 {
		blocker := uniformPlayer("blocker", v, 80)
		p := SuccessProbability(attacker, ActionAttack, &blocker)
		assert.Less(t, p, baseline)
		assert.LessOrEqual(t, p, previous)
		previous = p
	}
}
