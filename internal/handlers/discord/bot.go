package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/services/collection"
	"github.com/KirkDiggler/rallied/internal/services/match"
	"github.com/KirkDiggler/rallied/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	rally      *RallyCommand
	logger     *zap.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	MatchService      match.Service
	CollectionService collection.Service
	MessagingService  messaging.Service
	Logger            *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.CollectionService == nil {
		return nil, errors.New("collection service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	logger := logging.OrNop(cfg.Logger)

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		rally:      NewRallyCommand(cfg.MatchService, cfg.CollectionService, cfg.MessagingService, logger),
		logger:     logger,
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.rally); err != nil {
		return fmt.Errorf("failed to register rally command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("deleted command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// or globally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

// HandlePoint posts an auto-played point to its channel. It is the match
// service's OnPoint subscriber.
func (b *Bot) HandlePoint(event *match.PointEvent) {
	b.rally.PostPoint(b.session, event)
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction", zap.Error(err))
		}
	}
}

// handleComponentInteraction routes a button click to the command owning it
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	for _, cmd := range b.commands {
		if h, ok := cmd.(ComponentHandler); ok && h.HandlesComponent(customID) {
			return h.HandleComponent(s, i)
		}
	}

	return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
}
