// Package catalog holds the collectible characters and the default match
// rosters built from them.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rallied/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/characters.yaml
var charactersYAML []byte

//go:embed data/teams.yaml
var teamsYAML []byte

var (
	loadDefaultOnce sync.Once
	defaultCatalog  *Catalog
	defaultLoadErr  error
)

type charactersDocument struct {
	Characters []models.Character `yaml:"characters"`
}

type rosterSlotYAML struct {
	Character string `yaml:"character"`
	Position  int    `yaml:"position"`
}

type teamYAML struct {
	Name    string           `yaml:"name"`
	Serving bool             `yaml:"serving"`
	Roster  []rosterSlotYAML `yaml:"roster"`
}

type teamsDocument struct {
	Home teamYAML `yaml:"home"`
	Away teamYAML `yaml:"away"`
}

// Catalog is an immutable set of characters and the two default teams
type Catalog struct {
	characters []models.Character
	byID       map[string]int
	home       models.Team
	away       models.Team
}

// Default returns the catalog compiled into the binary. The embedded data is
// parsed and validated once.
func Default() (*Catalog, error) {
	loadDefaultOnce.Do(func() {
		defaultCatalog, defaultLoadErr = Parse(charactersYAML, teamsYAML)
	})
	return defaultCatalog, defaultLoadErr
}

// Parse decodes and validates a characters document and a teams document
func Parse(characters, teams []byte) (*Catalog, error) {
	var chars charactersDocument
	if err := yaml.Unmarshal(characters, &chars); err != nil {
		return nil, fmt.Errorf("failed to parse characters: %w", err)
	}

	c := &Catalog{
		characters: chars.Characters,
		byID:       make(map[string]int, len(chars.Characters)),
	}
	for i, ch := range chars.Characters {
		if err := validateCharacter(ch); err != nil {
			return nil, err
		}
		if _, ok := c.byID[ch.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCharacter, ch.ID)
		}
		c.byID[ch.ID] = i
	}

	var doc teamsDocument
	if err := yaml.Unmarshal(teams, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse teams: %w", err)
	}

	var err error
	if c.home, err = c.buildTeam(doc.Home); err != nil {
		return nil, err
	}
	if c.away, err = c.buildTeam(doc.Away); err != nil {
		return nil, err
	}

	// Actor selection excludes the last toucher by player ID, so no ID may
	// play for both teams
	homeIDs := make(map[string]bool, len(c.home.Players))
	for _, p := range c.home.Players {
		homeIDs[p.ID] = true
	}
	for _, p := range c.away.Players {
		if homeIDs[p.ID] {
			return nil, fmt.Errorf("%w: %s plays for both %s and %s", ErrInvalidRoster, p.ID, c.home.Name, c.away.Name)
		}
	}
	if c.home.Serving == c.away.Serving {
		return nil, fmt.Errorf("%w: exactly one default team must serve", ErrInvalidRoster)
	}

	return c, nil
}

func validateCharacter(ch models.Character) error {
	switch {
	case ch.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidCharacter)
	case ch.Name == "":
		return fmt.Errorf("%w: %s has no name", ErrInvalidCharacter, ch.ID)
	case !ch.Rarity.IsValid():
		return fmt.Errorf("%w: %s has rarity %q", ErrInvalidCharacter, ch.ID, ch.Rarity)
	case !ch.Tier.IsValid():
		return fmt.Errorf("%w: %s has tier %q", ErrInvalidCharacter, ch.ID, ch.Tier)
	case !ch.Stats.InRange():
		return fmt.Errorf("%w: %s has stats outside [%d, %d]", ErrInvalidCharacter, ch.ID, models.StatMin, models.StatMax)
	}
	return nil
}

// buildTeam turns roster slots into players, copying stats from the
// referenced characters
func (c *Catalog) buildTeam(t teamYAML) (models.Team, error) {
	if t.Name == "" {
		return models.Team{}, fmt.Errorf("%w: team without a name", ErrInvalidRoster)
	}
	if len(t.Roster) != models.TeamSize {
		return models.Team{}, fmt.Errorf("%w: %s has %d players, want %d", ErrInvalidRoster, t.Name, len(t.Roster), models.TeamSize)
	}

	team := models.Team{
		Name:    t.Name,
		Serving: t.Serving,
		Players: make([]models.Player, 0, len(t.Roster)),
	}

	var taken [models.PositionReserve + 1]bool
	picked := make(map[string]bool, len(t.Roster))
	for _, slot := range t.Roster {
		if slot.Position < models.PositionFirst || slot.Position > models.PositionReserve {
			return models.Team{}, fmt.Errorf("%w: %s uses position %d", ErrInvalidRoster, t.Name, slot.Position)
		}
		if taken[slot.Position] {
			return models.Team{}, fmt.Errorf("%w: %s uses position %d twice", ErrInvalidRoster, t.Name, slot.Position)
		}
		taken[slot.Position] = true

		ch, ok := c.Character(slot.Character)
		if !ok {
			return models.Team{}, fmt.Errorf("%w: %s in %s", ErrUnknownCharacter, slot.Character, t.Name)
		}
		if picked[ch.ID] {
			return models.Team{}, fmt.Errorf("%w: %s appears twice in %s", ErrInvalidRoster, ch.ID, t.Name)
		}
		picked[ch.ID] = true

		team.Players = append(team.Players, models.Player{
			ID:       ch.ID,
			Name:     ch.Name,
			Stats:    ch.Stats,
			Position: slot.Position,
		})
	}

	return team, nil
}

// Characters returns every character in catalog order
func (c *Catalog) Characters() []models.Character {
	out := make([]models.Character, len(c.characters))
	copy(out, c.characters)
	return out
}

// Character looks up a character by id
func (c *Catalog) Character(id string) (models.Character, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Character{}, false
	}
	return c.characters[i], true
}

// DefaultTeams returns fresh copies of the home and away rosters with zero
// scores
func (c *Catalog) DefaultTeams() (models.Team, models.Team) {
	return c.home.Clone(), c.away.Clone()
}
