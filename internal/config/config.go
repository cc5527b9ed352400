// Package config loads process configuration from the environment, reading
// a .env file first when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read from the environment
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Discord application
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	// Delay between points while a match auto-plays
	AutoPlayInterval time.Duration `env:"AUTOPLAY_INTERVAL" envDefault:"2s"`

	// Seed for the rally random source; zero seeds from the clock
	RallySeed int64 `env:"RALLY_SEED" envDefault:"0"`

	// Optional YAML file overriding the rally tunables
	TunablesPath string `env:"RALLY_TUNABLES_PATH"`

	// Newest game log lines kept per match; zero keeps everything
	GameLogMaxLines int `env:"GAME_LOG_MAX_LINES" envDefault:"5000"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	// Collection settings
	StartingPacks int `env:"STARTING_PACKS" envDefault:"3"`
	PackSize      int `env:"PACK_SIZE" envDefault:"3"`
}

// Load reads the optional .env files and parses the environment.
// Missing .env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AutoPlayInterval <= 0 {
		return nil, fmt.Errorf("AUTOPLAY_INTERVAL must be positive, got %s", cfg.AutoPlayInterval)
	}
	if cfg.PackSize < 1 {
		return nil, fmt.Errorf("PACK_SIZE must be at least 1, got %d", cfg.PackSize)
	}
	if cfg.GameLogMaxLines < 0 {
		return nil, fmt.Errorf("GAME_LOG_MAX_LINES cannot be negative, got %d", cfg.GameLogMaxLines)
	}
	if cfg.StartingPacks < 0 {
		return nil, fmt.Errorf("STARTING_PACKS cannot be negative, got %d", cfg.StartingPacks)
	}

	return cfg, nil
}
