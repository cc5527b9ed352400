package discord

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/KirkDiggler/rallied/internal/services/collection"
	"github.com/KirkDiggler/rallied/internal/services/match"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonPlayPoint      = "play_point"
	ButtonToggleAutoPlay = "toggle_autoplay"
	ButtonResetMatch     = "reset_match"
)

const (
	colorMatch = 0xf97316
	colorHome  = 0x111827
	colorAway  = 0x06b6d4
	colorLog   = 0x6b7280
	colorError = 0xff0000

	// Discord rejects longer embed descriptions
	maxDescriptionLength = 4096

	// Discord rejects embeds with more fields
	maxEmbedFields = 25

	// Discord rejects messages with more embeds
	maxEmbeds = 10
)

// renderLineup lists a team's court slots in order with the reserve last
func renderLineup(team models.Team) string {
	players := make([]models.Player, len(team.Players))
	copy(players, team.Players)
	sort.Slice(players, func(a, b int) bool {
		return players[a].Position < players[b].Position
	})

	var sb strings.Builder
	for _, p := range players {
		if p.OnCourt() {
			fmt.Fprintf(&sb, "`%d` %s\n", p.Position, p.Name)
		} else {
			fmt.Fprintf(&sb, "`R` %s\n", p.Name)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// renderMatchEmbed renders the main match message
func renderMatchEmbed(m *models.Match, autoPlay bool, status string) *discordgo.MessageEmbed {
	serving := m.Team(m.ServingSide())

	autoPlayState := "off"
	if autoPlay {
		autoPlayState = "on"
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏐 %s vs %s", m.Home.Name, m.Away.Name),
		Description: status,
		Color:       colorMatch,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Score",
				Value:  fmt.Sprintf("**%s** %d - %d **%s**", m.Home.Name, m.Home.Score, m.Away.Score, m.Away.Name),
				Inline: false,
			},
			{
				Name:   "Serving",
				Value:  serving.Name,
				Inline: true,
			},
			{
				Name:   "Rallies",
				Value:  fmt.Sprintf("%d", m.RallyCount),
				Inline: true,
			},
			{
				Name:   m.Home.Name,
				Value:  renderLineup(m.Home),
				Inline: true,
			},
			{
				Name:   m.Away.Name,
				Value:  renderLineup(m.Away),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Auto-play: " + autoPlayState,
		},
		Timestamp: m.UpdatedAt.Format(time.RFC3339),
	}
}

// renderEndedEmbed renders the final state of an ended match
func renderEndedEmbed(m *models.Match) *discordgo.MessageEmbed {
	result := "It ends level."
	switch {
	case m.Home.Score > m.Away.Score:
		result = m.Home.Name + " take it."
	case m.Away.Score > m.Home.Score:
		result = m.Away.Name + " take it."
	}

	embed := renderMatchEmbed(m, false, "🏁 Match over. "+result)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Ended after %d rallies", m.RallyCount),
	}
	return embed
}

// renderControls renders the match buttons. Manual play is disabled while
// auto-play runs.
func renderControls(autoPlay bool) []discordgo.MessageComponent {
	autoLabel := "Start Auto-play"
	autoStyle := discordgo.SuccessButton
	if autoPlay {
		autoLabel = "Stop Auto-play"
		autoStyle = discordgo.SecondaryButton
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Play Point",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonPlayPoint,
					Disabled: autoPlay,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🏐",
					},
				},
				discordgo.Button{
					Label:    autoLabel,
					Style:    autoStyle,
					CustomID: ButtonToggleAutoPlay,
					Emoji: &discordgo.ComponentEmoji{
						Name: "⏯️",
					},
				},
				discordgo.Button{
					Label:    "Reset",
					Style:    discordgo.DangerButton,
					CustomID: ButtonResetMatch,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔄",
					},
				},
			},
		},
	}
}

// renderPointEmbed renders one played rally
func renderPointEmbed(event *match.PointEvent) *discordgo.MessageEmbed {
	color := colorHome
	if event.Result.Winner == models.SideAway {
		color = colorAway
	}

	title := fmt.Sprintf("Rally %d", event.Match.RallyCount)
	if event.Sideout {
		title += " · Sideout"
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: truncateLines(event.Result.Log, maxDescriptionLength),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Score",
				Value: event.ScoreLine,
			},
		},
	}

	if event.Commentary != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: event.Commentary,
		}
	}

	return embed
}

// renderLogEmbed renders the newest part of a game log
func renderLogEmbed(lines []string) *discordgo.MessageEmbed {
	description := truncateLines(lines, maxDescriptionLength)
	if description == "" {
		description = "No rallies played yet."
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Game Log",
		Description: description,
		Color:       colorLog,
	}
}

// renderCharacterField renders one card as an embed field
func renderCharacterField(c models.Character) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   c.Name,
		Value:  fmt.Sprintf("%s · %s\n%s · %s", c.Rarity, c.Tier.Badge(), c.School, c.Position),
		Inline: true,
	}
}

// renderCollectionEmbed renders a user's unlocked cards
func renderCollectionEmbed(username string, output *collection.GetCollectionOutput) *discordgo.MessageEmbed {
	description := fmt.Sprintf("%d/%d characters unlocked · %d pack(s) left",
		len(output.Unlocked), output.Total, output.Collection.PacksLeft)

	unlocked := output.Unlocked
	if len(unlocked) > maxEmbedFields {
		description += fmt.Sprintf("\nShowing %d of them.", maxEmbedFields)
		unlocked = unlocked[:maxEmbedFields]
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(unlocked))
	for _, c := range unlocked {
		fields = append(fields, renderCharacterField(c))
	}

	color := models.RarityCommon.Color()
	if best, ok := bestRarity(output.Unlocked); ok {
		color = best.Color()
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🃏 %s's Collection", username),
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

// renderPackEmbeds renders an opened pack: a headline embed and one card
// embed per pulled character, colored by rarity
func renderPackEmbeds(title, message string, pulled []models.Character) []*discordgo.MessageEmbed {
	embeds := []*discordgo.MessageEmbed{
		{
			Title:       title,
			Description: message,
			Color:       colorMatch,
		},
	}

	for _, c := range pulled {
		if len(embeds) == maxEmbeds {
			break
		}

		embed := &discordgo.MessageEmbed{
			Title:       c.Name,
			Description: fmt.Sprintf("%s · %s", c.Rarity, c.Tier.Badge()),
			Color:       c.Rarity.Color(),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "School", Value: c.School, Inline: true},
				{Name: "Position", Value: c.Position, Inline: true},
				{Name: "Year", Value: fmt.Sprintf("%d", c.Year), Inline: true},
			},
		}
		if strings.HasPrefix(c.Image, "http") {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.Image}
		}
		embeds = append(embeds, embed)
	}

	return embeds
}

var rarityRank = map[models.Rarity]int{
	models.RarityCommon:    0,
	models.RarityRare:      1,
	models.RarityEpic:      2,
	models.RarityLegendary: 3,
}

// bestRarity returns the rarest rarity among the characters
func bestRarity(characters []models.Character) (models.Rarity, bool) {
	if len(characters) == 0 {
		return "", false
	}

	best := characters[0].Rarity
	for _, c := range characters[1:] {
		if rarityRank[c.Rarity] > rarityRank[best] {
			best = c.Rarity
		}
	}
	return best, true
}

// truncateLines joins lines, dropping the oldest ones until the text fits
// in limit bytes
func truncateLines(lines []string, limit int) string {
	const marker = "…\n"

	total := 0
	start := len(lines)
	for start > 0 {
		next := total + len(lines[start-1]) + 1
		if next > limit-len(marker) {
			break
		}
		total = next
		start--
	}

	text := strings.Join(lines[start:], "\n")
	if start > 0 {
		return marker + text
	}
	return text
}
