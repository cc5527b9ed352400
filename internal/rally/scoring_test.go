package rally

import (
	"testing"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestApplyPoint(t *testing.T) {
	testCases := []struct {
		name        string
		homeServing bool
		winner      models.Side
		wantSideout bool
		wantHome    int
		wantAway    int
		homeServes  bool
		homeRotated bool
		awayRotated bool
	}{
		{name: "server holds", homeServing: true, winner: models.SideHome, wantHome: 1, homeServes: true},
		{name: "receiver sides out", homeServing: true, winner: models.SideAway, wantSideout: true, wantAway: 1, awayRotated: true},
		{name: "home sides out", homeServing: false, winner: models.SideHome, wantSideout: true, wantHome: 1, homeServes: true, homeRotated: true},
		{name: "away holds", homeServing: false, winner: models.SideAway, wantAway: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			home := karasuno(tc.homeServing)
			away := aobaJohsai(!tc.homeServing)

			newHome, newAway, sideout := ApplyPoint(home, away, tc.winner)

			assert.Equal(t, tc.wantSideout, sideout)
			assert.Equal(t, tc.wantHome, newHome.Score)
			assert.Equal(t, tc.wantAway, newAway.Score)
			assert.Equal(t, tc.homeServes, newHome.Serving)
			assert.Equal(t, !tc.homeServes, newAway.Serving)
			assert.Equal(t, tc.homeRotated, positions(newHome)["karasuno-1"] == 2)
			assert.Equal(t, tc.awayRotated, positions(newAway)["aoba-1"] == 2)

			// inputs untouched
			assert.Zero(t, home.Score)
			assert.Equal(t, 1, positions(home)["karasuno-1"])
			assert.Equal(t, 1, positions(away)["aoba-1"])
		})
	}
}
