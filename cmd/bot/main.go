package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rallied/internal/catalog"
	"github.com/KirkDiggler/rallied/internal/common/clock"
	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/common/uuid"
	"github.com/KirkDiggler/rallied/internal/config"
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/handlers/discord"
	"github.com/KirkDiggler/rallied/internal/rally"
	collectionRepo "github.com/KirkDiggler/rallied/internal/repositories/collection"
	gameLogRepo "github.com/KirkDiggler/rallied/internal/repositories/game_log"
	matchRepo "github.com/KirkDiggler/rallied/internal/repositories/match"
	collectionService "github.com/KirkDiggler/rallied/internal/services/collection"
	matchService "github.com/KirkDiggler/rallied/internal/services/match"
	"github.com/KirkDiggler/rallied/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.DiscordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create match repository", zap.Error(err))
	}

	// Matches survive restarts; auto-play does not
	if stored, err := matches.ListMatches(ctx, &matchRepo.ListMatchesInput{}); err != nil {
		logger.Warn("failed to list stored matches", zap.Error(err))
	} else {
		for _, m := range stored.Matches {
			logger.Debug("stored match",
				zap.String("match_id", m.ID),
				zap.String("channel_id", m.ChannelID),
				zap.Int("rallies", m.RallyCount))
		}
		logger.Info("stored matches loaded", zap.Int("count", len(stored.Matches)))
	}

	gameLogs, err := gameLogRepo.NewRedis(&gameLogRepo.Config{
		RedisClient: redisClient,
		MaxLines:    cfg.GameLogMaxLines,
	})
	if err != nil {
		logger.Fatal("failed to create game log repository", zap.Error(err))
	}

	collections, err := collectionRepo.NewRedis(&collectionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create collection repository", zap.Error(err))
	}

	characters, err := catalog.Default()
	if err != nil {
		logger.Fatal("failed to load character catalog", zap.Error(err))
	}

	roller := dice.New(&dice.Config{
		Seed: cfg.RallySeed,
	})

	tunables := rally.DefaultTunables()
	if cfg.TunablesPath != "" {
		tunables, err = rally.LoadTunables(cfg.TunablesPath)
		if err != nil {
			logger.Fatal("failed to load rally tunables", zap.String("path", cfg.TunablesPath), zap.Error(err))
		}
	}

	engine, err := rally.New(&rally.Config{
		Roller:   roller,
		Tunables: tunables,
		Logger:   logger.Named("rally"),
	})
	if err != nil {
		logger.Fatal("failed to create rally engine", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: roller,
	})
	if err != nil {
		logger.Fatal("failed to create messaging service", zap.Error(err))
	}

	// The bot subscribes to auto-played points; it is assigned before any
	// match can auto-play
	var bot *discord.Bot

	matchSvc, err := matchService.New(&matchService.Config{
		AutoPlayInterval: cfg.AutoPlayInterval,
		OnPoint: func(event *matchService.PointEvent) {
			bot.HandlePoint(event)
		},
		MatchRepo:     matches,
		GameLogRepo:   gameLogs,
		Simulator:     engine,
		Teams:         characters,
		Messaging:     messagingSvc,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger.Named("match"),
	})
	if err != nil {
		logger.Fatal("failed to create match service", zap.Error(err))
	}

	collectionSvc, err := collectionService.New(&collectionService.Config{
		Repository:    collections,
		Characters:    characters,
		Roller:        roller,
		StartingPacks: cfg.StartingPacks,
		PackSize:      cfg.PackSize,
		Logger:        logger.Named("collection"),
	})
	if err != nil {
		logger.Fatal("failed to create collection service", zap.Error(err))
	}

	bot, err = discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		MatchService:      matchSvc,
		CollectionService: collectionSvc,
		MessagingService:  messagingSvc,
		Logger:            logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	// Stop auto-play first so no point is posted to a closed session
	if err := matchSvc.Close(); err != nil {
		logger.Error("error stopping auto-play", zap.Error(err))
	}

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}
