package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/models"
)

// longRallyExchanges is where commentary starts calling a rally long
const longRallyExchanges = 5

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var roller dice.Roller
	if config != nil {
		roller = config.Roller
	}
	if roller == nil {
		roller = dice.New(&dice.Config{})
	}

	return &service{
		roller: roller,
	}, nil
}

// pick returns one message at random
func (s *service) pick(messages []string) string {
	return messages[s.roller.Intn(len(messages))]
}

// GetPointMessage returns commentary for a finished rally
func (s *service) GetPointMessage(ctx context.Context, input *GetPointMessageInput) (*GetPointMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneHype
	}

	winner, loser := input.WinnerName, input.LoserName
	var messages []string

	switch {
	case input.CapReached:
		messages = []string{
			fmt.Sprintf("Neither side would let it drop! %s take the marathon rally.", winner),
			fmt.Sprintf("%d exchanges and somebody finally blinked. Point %s!", input.Exchanges, winner),
			"That rally had everything except an ending. The referee made one anyway.",
		}
	case input.Exchanges >= longRallyExchanges:
		messages = []string{
			fmt.Sprintf("What a rally! %s outlast %s after %d exchanges.", winner, loser, input.Exchanges),
			fmt.Sprintf("The crowd is on its feet! %s win the long one.", winner),
			fmt.Sprintf("%s dig deep and grind out the point.", winner),
		}
	case input.Sideout:
		messages = []string{
			fmt.Sprintf("Sideout! %s take the serve back.", winner),
			fmt.Sprintf("%s break the serve and rotate.", winner),
			fmt.Sprintf("Serve changes hands. Your ball, %s!", winner),
			fmt.Sprintf("%s answer back. %s lose the serve.", winner, loser),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s hold serve!", winner),
			fmt.Sprintf("%s keep the pressure on %s.", winner, loser),
			fmt.Sprintf("Another one for %s. The server stays back there.", winner),
			fmt.Sprintf("%s are rolling!", winner),
		}
	}

	if tone == ToneNeutral {
		messages = []string{fmt.Sprintf("Point %s.", winner)}
	}

	return &GetPointMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetMatchStatusMessage describes the current score
func (s *service) GetMatchStatusMessage(ctx context.Context, input *GetMatchStatusMessageInput) (*GetMatchStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	lead := input.HomeScore - input.AwayScore
	leader, trailer := input.HomeName, input.AwayName
	if lead < 0 {
		lead = -lead
		leader, trailer = trailer, leader
	}

	switch {
	case input.HomeScore == 0 && input.AwayScore == 0:
		messages = []string{
			"Players are warming up. First serve whenever you're ready!",
			"Fresh match, clean scoreboard.",
			"The gym is quiet. Somebody serve!",
		}
	case lead == 0:
		messages = []string{
			fmt.Sprintf("All square at %d!", input.HomeScore),
			"Dead even. Nobody is giving an inch.",
			"Tied up! This one could go either way.",
		}
	case lead >= 5:
		messages = []string{
			fmt.Sprintf("%s are running away with it.", leader),
			fmt.Sprintf("%s need a timeout, fast.", trailer),
			fmt.Sprintf("%s lead by %d. Somebody wake up %s!", leader, lead, trailer),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s edge ahead by %d.", leader, lead),
			fmt.Sprintf("%s are chasing. Still anyone's match.", trailer),
			fmt.Sprintf("%s in front, but %s are right there.", leader, trailer),
		}
	}

	message := s.pick(messages)
	if input.AutoPlay {
		message += " (auto-play is on)"
	}

	return &GetMatchStatusMessageOutput{
		Message: message,
	}, nil
}

// GetPackOpenedMessage builds the reveal shown after opening a pack
func (s *service) GetPackOpenedMessage(ctx context.Context, input *GetPackOpenedMessageInput) (*GetPackOpenedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Pulled) == 0 {
		return &GetPackOpenedMessageOutput{
			Title:   "📦 Empty pack",
			Message: fmt.Sprintf("%s, you already own every character. %d packs left.", input.OwnerName, input.PacksLeft),
		}, nil
	}

	best := input.Pulled[0]
	for _, c := range input.Pulled[1:] {
		if rarityRank(c.Rarity) > rarityRank(best.Rarity) {
			best = c
		}
	}

	var titles []string
	switch best.Rarity {
	case models.RarityLegendary:
		titles = []string{
			fmt.Sprintf("🌟 LEGENDARY PULL! %s!", best.Name),
			fmt.Sprintf("🌟 No way... %s joins the squad!", best.Name),
		}
	case models.RarityEpic:
		titles = []string{
			fmt.Sprintf("💜 Epic pull: %s", best.Name),
			fmt.Sprintf("💜 %s has entered the gym", best.Name),
		}
	default:
		titles = []string{
			"📦 Pack opened",
			"📦 Fresh recruits",
			"📦 New faces on the bench",
		}
	}

	names := make([]string, len(input.Pulled))
	for i, c := range input.Pulled {
		names[i] = fmt.Sprintf("%s (%s, %s)", c.Name, c.Rarity, c.Tier.Badge())
	}

	return &GetPackOpenedMessageOutput{
		Title: s.pick(titles),
		Message: fmt.Sprintf("%s pulled %s. %d packs left.",
			input.OwnerName, strings.Join(names, ", "), input.PacksLeft),
	}, nil
}

func rarityRank(r models.Rarity) int {
	switch r {
	case models.RarityLegendary:
		return 3
	case models.RarityEpic:
		return 2
	case models.RarityRare:
		return 1
	default:
		return 0
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeMatchNotFound:
		messages = []string{
			"There's no match in this channel. Try `/rally start`.",
			"The court is empty! Start a match with `/rally start`.",
			"Nobody's playing here yet. `/rally start` gets things going.",
		}
	case ErrorTypeMatchExists:
		messages = []string{
			"A match is already running in this channel.",
			"One match per court! This channel already has one.",
			"The court is taken. Use `/rally reset` to start over.",
		}
	case ErrorTypeAutoPlayActive:
		messages = []string{
			"Auto-play is running. Stop it before serving by hand.",
			"The bench coach has the ball! Turn off auto-play first.",
			"Hands off, auto-play is on.",
		}
	case ErrorTypeNoPacksLeft:
		messages = []string{
			"You're out of packs!",
			"No packs left. Your collection will have to do.",
			"The pack shelf is empty for you.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"The ball went into the rafters. Try again.",
			"Technical timeout! Try again in a moment.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
