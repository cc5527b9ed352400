package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/KirkDiggler/rallied/internal/services/collection"
	"github.com/KirkDiggler/rallied/internal/services/match"
	"github.com/KirkDiggler/rallied/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	defaultLogLines = 30
	maxLogLines     = 200
)

// RallyCommand handles the /rally command and the match buttons
type RallyCommand struct {
	BaseCommand
	matchService      match.Service
	collectionService collection.Service
	messagingService  messaging.Service
	logger            *zap.Logger
}

// NewRallyCommand creates a new rally command handler
func NewRallyCommand(matchService match.Service, collectionService collection.Service, messagingService messaging.Service, logger *zap.Logger) *RallyCommand {
	minLines := float64(1)

	return &RallyCommand{
		BaseCommand: BaseCommand{
			Name:        "rally",
			Description: "Volleyball match simulator",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a match in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "play",
					Description: "Play the next point",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "auto",
					Description: "Toggle auto-play",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset scores, lineups and the game log",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the match in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Show the current score",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Show the game log",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "lines",
							Description: "Number of recent lines to show",
							MinValue:    &minLines,
							MaxValue:    maxLogLines,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "collection",
					Description: "Show your character collection",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "openpack",
					Description: "Open a character pack",
				},
			},
		},
		matchService:      matchService,
		collectionService: collectionService,
		messagingService:  messagingService,
		logger:            logger,
	}
}

// Handle processes a Discord interaction for the rally command
func (c *RallyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i)
	case "play":
		return c.handlePlay(ctx, s, i)
	case "auto":
		return c.handleAuto(ctx, s, i)
	case "reset":
		return c.handleReset(ctx, s, i)
	case "end":
		return c.handleEnd(ctx, s, i)
	case "score":
		return c.handleScore(ctx, s, i)
	case "log":
		limit := defaultLogLines
		for _, opt := range sub.Options {
			if opt.Name == "lines" {
				limit = int(opt.IntValue())
			}
		}
		return c.handleLog(ctx, s, i, limit)
	case "collection":
		return c.handleCollection(ctx, s, i)
	case "openpack":
		return c.handleOpenPack(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// HandlesComponent reports whether the button belongs to the match message
func (c *RallyCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonPlayPoint, ButtonToggleAutoPlay, ButtonResetMatch:
		return true
	}
	return false
}

// HandleComponent processes a match button click
func (c *RallyCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	switch i.MessageComponentData().CustomID {
	case ButtonPlayPoint:
		return c.handlePlay(ctx, s, i)
	case ButtonToggleAutoPlay:
		return c.handleAuto(ctx, s, i)
	case ButtonResetMatch:
		return c.handleReset(ctx, s, i)
	default:
		return nil
	}
}

// handleStart creates the channel's match and posts its main message
func (c *RallyCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.matchService.CreateMatch(ctx, &match.CreateMatchInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	m := output.Match
	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderMatchEmbed(m, false, c.statusMessage(ctx, m.Home.Name, m.Away.Name, 0, 0, false))},
		Components: renderControls(false),
	})
	if err != nil {
		c.logger.Error("failed to send match message", zap.String("match_id", m.ID), zap.Error(err))
		return RespondWithError(s, i, "Failed to post the match message.")
	}

	if err := c.matchService.SetMessageID(ctx, &match.SetMessageIDInput{
		MatchID:   m.ID,
		MessageID: msg.ID,
	}); err != nil {
		// Not critical, the match still plays without live updates
		c.logger.Warn("failed to store match message", zap.String("match_id", m.ID), zap.Error(err))
	}

	return RespondWithEphemeralMessage(s, i, "Match created! Use the buttons or `/rally play` to play points.")
}

// handlePlay plays one point and posts the rally
func (c *RallyCommand) handlePlay(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.matchService.PlayPoint(ctx, &match.PlayPointInput{
		MatchID: current.Match.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	c.updateMatchMessage(ctx, s, output.Event.Match, false)

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderPointEmbed(output.Event)}, nil, false)
}

// handleAuto toggles auto-play for the channel's match
func (c *RallyCommand) handleAuto(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.matchService.ToggleAutoPlay(ctx, &match.ToggleAutoPlayInput{
		MatchID: current.Match.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	c.updateMatchMessage(ctx, s, current.Match, output.Enabled)

	if output.Enabled {
		return RespondWithEphemeralMessage(s, i, "▶️ Auto-play started.")
	}
	return RespondWithEphemeralMessage(s, i, "⏸️ Auto-play stopped.")
}

// handleReset resets the channel's match
func (c *RallyCommand) handleReset(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.matchService.ResetMatch(ctx, &match.ResetMatchInput{
		MatchID: current.Match.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	c.updateMatchMessage(ctx, s, output.Match, false)

	return RespondWithEphemeralMessage(s, i, "🔄 Match reset. Scores, lineups and the log are back to the start.")
}

// handleEnd ends the channel's match and freezes its main message
func (c *RallyCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.matchService.EndMatch(ctx, &match.EndMatchInput{
		MatchID: current.Match.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	m := output.Match
	final := renderEndedEmbed(m)

	if m.MessageID != "" {
		embeds := []*discordgo.MessageEmbed{final}
		components := []discordgo.MessageComponent{}
		if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    m.ChannelID,
			ID:         m.MessageID,
			Embeds:     &embeds,
			Components: &components,
		}); err != nil {
			c.logger.Error("failed to close match message",
				zap.String("match_id", m.ID),
				zap.String("message_id", m.MessageID),
				zap.Error(err))
		}
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{final}, nil, false)
}

// handleScore shows the match state to the channel
func (c *RallyCommand) handleScore(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	m := current.Match
	status := c.statusMessage(ctx, m.Home.Name, m.Away.Name, m.Home.Score, m.Away.Score, current.AutoPlay)

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderMatchEmbed(m, current.AutoPlay, status)}, nil, false)
}

// handleLog shows the newest game log lines to the caller
func (c *RallyCommand) handleLog(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, limit int) error {
	current, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.matchService.GetLog(ctx, &match.GetLogInput{
		MatchID: current.Match.ID,
		Limit:   limit,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLogEmbed(output.Lines)}, nil, true)
}

// handleCollection shows the caller's cards
func (c *RallyCommand) handleCollection(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)

	output, err := c.collectionService.GetCollection(ctx, &collection.GetCollectionInput{
		OwnerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderCollectionEmbed(username, output)}, nil, true)
}

// handleOpenPack opens one of the caller's packs in front of the channel
func (c *RallyCommand) handleOpenPack(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)

	output, err := c.collectionService.OpenPack(ctx, &collection.OpenPackInput{
		OwnerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	title := "📦 Pack opened!"
	message := ""
	msgOutput, err := c.messagingService.GetPackOpenedMessage(ctx, &messaging.GetPackOpenedMessageInput{
		OwnerName: username,
		Pulled:    output.Pulled,
		PacksLeft: output.Collection.PacksLeft,
	})
	if err != nil {
		c.logger.Warn("failed to get pack message", zap.String("owner_id", userID), zap.Error(err))
	} else {
		title = msgOutput.Title
		message = msgOutput.Message
	}

	return RespondWithEmbeds(s, i, renderPackEmbeds(title, message, output.Pulled), nil, false)
}

// PostPoint announces an auto-played point in the match's channel and
// refreshes the main match message
func (c *RallyCommand) PostPoint(s *discordgo.Session, event *match.PointEvent) {
	ctx := context.Background()

	if _, err := s.ChannelMessageSendEmbed(event.Match.ChannelID, renderPointEmbed(event)); err != nil {
		c.logger.Error("failed to post auto-played point",
			zap.String("match_id", event.Match.ID),
			zap.Error(err))
	}

	c.updateMatchMessage(ctx, s, event.Match, event.AutoPlayed)
}

// updateMatchMessage edits the main match message to the current state
func (c *RallyCommand) updateMatchMessage(ctx context.Context, s *discordgo.Session, m *models.Match, autoPlay bool) {
	if m.MessageID == "" {
		c.logger.Debug("match has no message, skipping update", zap.String("match_id", m.ID))
		return
	}

	status := c.statusMessage(ctx, m.Home.Name, m.Away.Name, m.Home.Score, m.Away.Score, autoPlay)
	embeds := []*discordgo.MessageEmbed{renderMatchEmbed(m, autoPlay, status)}
	components := renderControls(autoPlay)

	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    m.ChannelID,
		ID:         m.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		c.logger.Error("failed to update match message",
			zap.String("match_id", m.ID),
			zap.String("message_id", m.MessageID),
			zap.Error(err))
	}
}

// statusMessage asks the messaging service for the match status line
func (c *RallyCommand) statusMessage(ctx context.Context, homeName, awayName string, homeScore, awayScore int, autoPlay bool) string {
	output, err := c.messagingService.GetMatchStatusMessage(ctx, &messaging.GetMatchStatusMessageInput{
		HomeName:  homeName,
		AwayName:  awayName,
		HomeScore: homeScore,
		AwayScore: awayScore,
		AutoPlay:  autoPlay,
	})
	if err != nil {
		c.logger.Warn("failed to get status message", zap.Error(err))
		return ""
	}
	return output.Message
}

// respondWithServiceError explains expected failures to the caller and
// logs the rest
func (c *RallyCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	errorType, ok := errorTypeFor(err)
	if !ok {
		c.logger.Error("rally command failed",
			zap.String("channel_id", i.ChannelID),
			zap.Error(err))
		return RespondWithError(s, i, "Something went wrong. Please try again.")
	}

	output, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, output.Message)
}

// errorTypeFor maps expected service errors to their message category
func errorTypeFor(err error) (messaging.ErrorType, bool) {
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		return messaging.ErrorTypeMatchNotFound, true
	case errors.Is(err, match.ErrMatchAlreadyExists):
		return messaging.ErrorTypeMatchExists, true
	case errors.Is(err, match.ErrAutoPlayActive):
		return messaging.ErrorTypeAutoPlayActive, true
	case errors.Is(err, collection.ErrNoPacksLeft):
		return messaging.ErrorTypeNoPacksLeft, true
	}
	return "", false
}
