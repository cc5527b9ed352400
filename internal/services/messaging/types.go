package messaging

import (
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneHype is the courtside announcer tone
	ToneHype MessageTone = "hype"
)

// ErrorType names a failure the bot explains to the user
type ErrorType string

const (
	ErrorTypeMatchNotFound  ErrorType = "match_not_found"
	ErrorTypeMatchExists    ErrorType = "match_exists"
	ErrorTypeAutoPlayActive ErrorType = "autoplay_active"
	ErrorTypeNoPacksLeft    ErrorType = "no_packs_left"
)

// GetPointMessageInput contains parameters for point commentary
type GetPointMessageInput struct {
	// WinnerName is the team that won the point
	WinnerName string

	// LoserName is the team that lost the point
	LoserName string

	// Sideout indicates the receiving team won the point and takes serve
	Sideout bool

	// CapReached indicates the rally was decided by the exchange cap
	CapReached bool

	// Exchanges is the number of exchanges in the rally
	Exchanges int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPointMessageOutput contains the generated commentary
type GetPointMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetMatchStatusMessageInput is the input for GetMatchStatusMessage
type GetMatchStatusMessageInput struct {
	HomeName  string
	AwayName  string
	HomeScore int
	AwayScore int
	AutoPlay  bool
}

// GetMatchStatusMessageOutput is the output for GetMatchStatusMessage
type GetMatchStatusMessageOutput struct {
	Message string
}

// GetPackOpenedMessageInput contains the input for GetPackOpenedMessage
type GetPackOpenedMessageInput struct {
	// OwnerName is the display name of the collector
	OwnerName string

	// Pulled are the characters unlocked by the pack
	Pulled []models.Character

	// PacksLeft is the number of packs remaining
	PacksLeft int
}

// GetPackOpenedMessageOutput contains the output for GetPackOpenedMessage
type GetPackOpenedMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among the candidate messages; a time-seeded roller is
	// used when nil
	Roller dice.Roller
}
