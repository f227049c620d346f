// Command flockrec runs the flock without a window and records per tick
// statistics into a SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/logging"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/recorder"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, empty for defaults")
	schemaFile := flag.String("schema", "", "JSON schema for the configuration, empty for the built-in one")
	dbPath := flag.String("db", "flock_runs.db", "SQLite database to record into")
	ticks := flag.Int("ticks", 1000, "number of ticks to simulate")
	seed := flag.Uint64("seed", 0, "override the configured seed, 0 keeps it")
	agents := flag.Int("agents", -1, "override the configured population, -1 keeps it")
	workers := flag.Int("workers", -1, "override the configured steering workers, -1 keeps it")
	pressAt := flag.Int("press-at", 0, "press the attractor before this tick, 0 never")
	releaseAt := flag.Int("release-at", 0, "release the attractor before this tick, 0 never")
	attrX := flag.Float64("attractor-x", -1, "attractor x, -1 for the world center")
	attrY := flag.Float64("attractor-y", -1, "attractor y, -1 for the world center")
	list := flag.Bool("list", false, "list recorded runs and exit")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *agents >= 0 {
		cfg.NumAgents = *agents
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	db, err := recorder.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *dbPath, err)
	}
	defer db.Close()

	if *list {
		if err := listRuns(db); err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		return
	}

	sim, err := flock.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create flock: %v", err)
	}

	pos := geometry.Vector2D{X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2}
	if *attrX >= 0 {
		pos.X = *attrX
	}
	if *attrY >= 0 {
		pos.Y = *attrY
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	run, err := recorder.New(db, logger).Record(ctx, sim, recorder.Options{
		Ticks:        *ticks,
		PressAt:      *pressAt,
		ReleaseAt:    *releaseAt,
		AttractorPos: pos,
	})
	if run == nil {
		log.Fatalf("Recording failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("run %s\n", run.ID)
	fmt.Printf("  seed     %d\n", run.Seed)
	fmt.Printf("  agents   %s\n", humanize.Comma(int64(run.NumAgents)))
	fmt.Printf("  ticks    %s in %s (%s ticks/s)\n",
		humanize.Comma(run.Ticks), elapsed.Round(time.Millisecond),
		humanize.CommafWithDigits(float64(run.Ticks)/elapsed.Seconds(), 1))
	if fi, statErr := os.Stat(*dbPath); statErr == nil {
		fmt.Printf("  database %s (%s)\n", *dbPath, humanize.Bytes(uint64(fi.Size())))
	}
	if err != nil {
		log.Fatalf("Recording interrupted: %v", err)
	}
}

func listRuns(db *recorder.DB) error {
	runs, err := db.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %-14s seed=%d agents=%s ticks=%s\n",
			r.ID, humanize.Time(r.Started()), r.Seed,
			humanize.Comma(int64(r.NumAgents)), humanize.Comma(r.Ticks))
	}
	return nil
}
