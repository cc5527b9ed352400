package models

import (
	"time"
)

// Match represents a running volleyball match in a Discord channel
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// ChannelID is the Discord channel where the match is played
	ChannelID string

	// Home is the home team
	Home Team

	// Away is the away team
	Away Team

	// RallyCount is the number of points played so far
	RallyCount int

	// MessageID is the ID of the main match message in Discord
	MessageID string

	// CreatedAt is when the match was created
	CreatedAt time.Time

	// UpdatedAt is when the match was last updated
	UpdatedAt time.Time
}

// Team returns the team playing on the given side
func (m *Match) Team(side Side) *Team {
	if side == SideHome {
		return &m.Home
	}
	return &m.Away
}

// ServingSide returns the side currently holding serve
func (m *Match) ServingSide() Side {
	if m.Home.Serving {
		return SideHome
	}
	return SideAway
}
