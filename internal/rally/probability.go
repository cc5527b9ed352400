package rally

import (
	"math"

	"github.com/KirkDiggler/rallied/internal/models"
)

const (
	// MinProbability and MaxProbability bound every success probability
	MinProbability = 0.1
	MaxProbability = 0.95

	// neutralProbability is returned for actions without an attribute mapping
	neutralProbability = 0.5

	// minStaminaFactor is the floor of the stamina multiplier
	minStaminaFactor = 0.7
)

// actionProfile is the base probability of an action and the attributes that
// modify it
type actionProfile struct {
	base  float64
	stats func(s models.Stats) [3]int
}

var actionProfiles = map[Action]actionProfile{
	ActionServe: {
		base:  0.70,
		stats: func(s models.Stats) [3]int { return [3]int{s.Serve, s.Technique, s.Mental} },
	},
	ActionReceive: {
		base:  0.75,
		stats: func(s models.Stats) [3]int { return [3]int{s.Receive, s.Speed, s.Technique} },
	},
	ActionSet: {
		base:  0.80,
		stats: func(s models.Stats) [3]int { return [3]int{s.Set, s.Technique, s.Mental} },
	},
	ActionAttack: {
		base:  0.65,
		stats: func(s models.Stats) [3]int { return [3]int{s.Attack, s.Jump, s.Technique} },
	},
	ActionBlock: {
		base:  0.40,
		stats: func(s models.Stats) [3]int { return [3]int{s.Block, s.Jump, s.Technique} },
	},
	ActionDig: {
		base:  0.60,
		stats: func(s models.Stats) [3]int { return [3]int{s.Receive, s.Speed, s.Mental} },
	},
}

// SuccessProbability maps a player's attributes to the chance of completing
// the action, in [MinProbability, MaxProbability]. For attacks, a non-nil
// opponent is the blocker and lowers the base chance by their block and jump.
//
// The attribute modifier is added to the base before the stamina factor is
// applied, and the clamp comes last.
func SuccessProbability(player models.Player, action Action, opponent *models.Player) float64 {
	profile, ok := actionProfiles[action]
	if !ok {
		return neutralProbability
	}

	base := profile.base
	if action == ActionAttack && opponent != nil {
		blockFactor := float64(opponent.Stats.Block+opponent.Stats.Jump) / 200
		base = 0.6 - blockFactor*0.2
	}

	stats := profile.stats(player.Stats)
	avg := float64(stats[0]+stats[1]+stats[2]) / 3
	modifier := (avg - 50) / 100

	staminaFactor := math.Max(minStaminaFactor, float64(player.Stats.Stamina)/100)

	return clamp((base+modifier)*staminaFactor, MinProbability, MaxProbability)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
