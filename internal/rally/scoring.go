package rally

import "github.com/KirkDiggler/rallied/internal/models"

// ApplyPoint folds a rally winner into the team records. The winner scores;
// if it was receiving it takes serve and rotates, which is reported as a
// sideout. The arguments are not modified.
func ApplyPoint(home, away models.Team, winner models.Side) (models.Team, models.Team, bool) {
	home = home.Clone()
	away = away.Clone()

	won, lost := &home, &away
	if winner == models.SideAway {
		won, lost = &away, &home
	}

	won.Score++

	if won.Serving {
		return home, away, false
	}

	won.Serving = true
	lost.Serving = false
	*won = Rotate(*won)

	return home, away, true
}
