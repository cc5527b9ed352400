package models

// Stats holds the ten attributes every player carries. Each value is in [0, 99].
type Stats struct {
	Attack    int `json:"attack" yaml:"attack"`
	Block     int `json:"block" yaml:"block"`
	Serve     int `json:"serve" yaml:"serve"`
	Receive   int `json:"receive" yaml:"receive"`
	Set       int `json:"set" yaml:"set"`
	Speed     int `json:"speed" yaml:"speed"`
	Jump      int `json:"jump" yaml:"jump"`
	Stamina   int `json:"stamina" yaml:"stamina"`
	Technique int `json:"technique" yaml:"technique"`
	Mental    int `json:"mental" yaml:"mental"`
}

const (
	// StatMin is the lowest value an attribute can take
	StatMin = 0

	// StatMax is the highest value an attribute can take
	StatMax = 99
)

// Values returns the attributes in declaration order
func (s Stats) Values() []int {
	return []int{
		s.Attack, s.Block, s.Serve, s.Receive, s.Set,
		s.Speed, s.Jump, s.Stamina, s.Technique, s.Mental,
	}
}

// InRange reports whether every attribute is within [StatMin, StatMax]
func (s Stats) InRange() bool {
	for _, v := range s.Values() {
		if v < StatMin || v > StatMax {
			return false
		}
	}
	return true
}

const (
	// PositionFirst is the first on-court slot; the player here serves
	PositionFirst = 1

	// PositionLast is the last on-court slot
	PositionLast = 6

	// PositionReserve is the bench slot, never selected for on-court actions
	PositionReserve = 7
)

// Player represents a team member in a match
type Player struct {
	// ID is the stable identifier of the player
	ID string `json:"id" yaml:"id"`

	// Name is the display name of the player
	Name string `json:"name" yaml:"name"`

	// Stats are the player's attributes
	Stats Stats `json:"stats" yaml:"stats"`

	// Position is the court slot (1-6) or the reserve slot (7)
	Position int `json:"position" yaml:"position"`
}

// OnCourt reports whether the player occupies one of the six court slots
func (p Player) OnCourt() bool {
	return p.Position >= PositionFirst && p.Position <= PositionLast
}
