package models

// Side designates one of the two teams in a match
type Side string

const (
	// SideHome is the home team
	SideHome Side = "home"

	// SideAway is the away team
	SideAway Side = "away"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// TeamSize is the number of players on a roster: six on court plus one reserve
const TeamSize = 7

// Team represents one side of a match
type Team struct {
	// Name is the display name of the team
	Name string `json:"name" yaml:"name"`

	// Players holds the full roster, on court and reserve
	Players []Player `json:"players" yaml:"players"`

	// Score is the number of points won so far
	Score int `json:"score" yaml:"-"`

	// Serving indicates the team holds serve
	Serving bool `json:"serving" yaml:"-"`
}

// Clone returns a copy of the team that shares no player storage with t
func (t Team) Clone() Team {
	players := make([]Player, len(t.Players))
	copy(players, t.Players)
	t.Players = players
	return t
}
