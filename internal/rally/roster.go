package rally

import (
	"sort"

	"github.com/KirkDiggler/rallied/internal/models"
)

// OnCourt returns the players in slots 1-6 ordered by position. The team is
// not modified.
func OnCourt(team *models.Team) []models.Player {
	lineup := make([]models.Player, 0, models.PositionLast)
	for _, p := range team.Players {
		if p.OnCourt() {
			lineup = append(lineup, p)
		}
	}

	sort.SliceStable(lineup, func(i, j int) bool {
		return lineup[i].Position < lineup[j].Position
	})

	return lineup
}

// Rotate advances every on-court player by one slot, wrapping 6 to 1. The
// reserve keeps slot 7. A new team is returned; the argument is untouched.
func Rotate(team models.Team) models.Team {
	rotated := team.Clone()
	for i, p := range rotated.Players {
		if !p.OnCourt() {
			continue
		}
		if p.Position == models.PositionLast {
			rotated.Players[i].Position = models.PositionFirst
		} else {
			rotated.Players[i].Position = p.Position + 1
		}
	}
	return rotated
}

// ValidateLineup checks that exactly one player stands in each of the six
// court slots.
func ValidateLineup(team *models.Team) error {
	if team == nil {
		return ErrNilTeam
	}

	var seen [models.PositionLast + 1]bool
	count := 0
	for _, p := range team.Players {
		if !p.OnCourt() {
			continue
		}
		if seen[p.Position] {
			return ErrInvalidLineup
		}
		seen[p.Position] = true
		count++
	}

	if count != models.PositionLast {
		return ErrInvalidLineup
	}

	return nil
}
