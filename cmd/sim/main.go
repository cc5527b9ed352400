// Command sim plays points between the default catalog teams and prints the
// game log, without Discord or Redis.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/rallied/internal/catalog"
	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/rally"
	"github.com/KirkDiggler/rallied/internal/services/match"
	"go.uber.org/zap"
)

func main() {
	points := flag.Int("points", 25, "number of points to play")
	seed := flag.Int64("seed", 0, "random seed for exact replay; 0 seeds from the clock")
	tunablesPath := flag.String("tunables", "", "YAML file overriding the rally tunables")
	logLevel := flag.String("log-level", "warn", "engine log level")
	flag.Parse()

	if *points < 1 {
		fmt.Fprintln(os.Stderr, "-points must be at least 1")
		os.Exit(2)
	}

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	tunables := rally.DefaultTunables()
	if *tunablesPath != "" {
		tunables, err = rally.LoadTunables(*tunablesPath)
		if err != nil {
			logger.Fatal("failed to load rally tunables", zap.String("path", *tunablesPath), zap.Error(err))
		}
	}

	engine, err := rally.New(&rally.Config{
		Roller:   dice.New(&dice.Config{Seed: *seed}),
		Tunables: tunables,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to create rally engine", zap.Error(err))
	}

	characters, err := catalog.Default()
	if err != nil {
		logger.Fatal("failed to load character catalog", zap.Error(err))
	}

	home, away := characters.DefaultTeams()
	for i := 0; i < *points; i++ {
		result, err := engine.Simulate(&home, &away)
		if err != nil {
			logger.Fatal("rally failed", zap.Int("point", i+1), zap.Error(err))
		}

		home, away, _ = rally.ApplyPoint(home, away, result.Winner)

		for _, line := range result.Log {
			fmt.Println(line)
		}
		fmt.Println(match.ScoreLine(home, away))
		fmt.Println(match.LogSeparator)
	}

	fmt.Printf("Final after %d points: %s %d - %d %s\n", *points, home.Name, home.Score, away.Score, away.Name)
}
