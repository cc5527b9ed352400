package rally

import "github.com/KirkDiggler/rallied/internal/models"

const (
	// liberoReceiveThreshold and liberoAttackThreshold identify a defensive
	// specialist: receive above the first and attack below the second
	liberoReceiveThreshold = 85
	liberoAttackThreshold  = 50

	// liberoBonus is added to a specialist's receive score
	liberoBonus = 20
)

// SelectActor picks the player in lineup who performs action. The exclude
// player, matched by ID, is never picked; it keeps one player from touching
// the ball twice in a row. Ties go to the earliest player in lineup order.
//
// lineup must hold at least one player other than exclude.
func SelectActor(lineup []models.Player, action Action, exclude *models.Player) models.Player {
	var (
		best      models.Player
		bestScore float64
		found     bool
	)

	for _, p := range lineup {
		if exclude != nil && p.ID == exclude.ID {
			continue
		}
		score := selectionScore(p, action)
		if !found || score > bestScore {
			best, bestScore, found = p, score, true
		}
	}

	return best
}

// selectionScore is the value SelectActor maximizes for an action
func selectionScore(p models.Player, action Action) float64 {
	switch action {
	case ActionSet:
		return float64(p.Stats.Set)
	case ActionReceive, ActionDig:
		score := float64(p.Stats.Receive)
		if p.Stats.Receive > liberoReceiveThreshold && p.Stats.Attack < liberoAttackThreshold {
			score += liberoBonus
		}
		return score
	case ActionAttack:
		return float64(p.Stats.Attack)
	case ActionBlock:
		return float64(p.Stats.Block) + 0.5*float64(p.Stats.Jump)
	default:
		return SuccessProbability(p, action, nil)
	}
}
