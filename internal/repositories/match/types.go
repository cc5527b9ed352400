package match

import "github.com/KirkDiggler/rallied/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type DeleteMatchInput struct {
	MatchID string
}

type ListMatchesInput struct {
}

type ListMatchesOutput struct {
	Matches []*models.Match
}
