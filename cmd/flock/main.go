package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/logging"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

func main() {
	configFile := flag.String("config", "configs/flock.json", "JSON or TOML configuration file, empty for defaults")
	schemaFile := flag.String("schema", "", "JSON schema for the configuration, empty for the built-in one")
	flag.Parse()

	// 1. Load Configuration
	cfg := flock.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// 2. Start the actor system
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("Failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("Failed to start actor system: %v", err)
	}

	// 3. Setup Ebiten
	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flock: boids with a black hole")

	game, err := simulation.GetNewGame(ctx, cfg, system)
	if err != nil {
		_ = system.Stop(ctx)
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.System.Stop(ctx)

	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("Game stopped: %v", err)
	}
}
