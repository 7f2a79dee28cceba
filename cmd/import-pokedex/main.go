// Package main loads the YAML pokedex tables and stores them in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cory-johannsen/tallgrass/internal/config"
	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
	"github.com/cory-johannsen/tallgrass/internal/observability"
	"github.com/cory-johannsen/tallgrass/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	sourceDir := flag.String("source", "", "directory holding species.yaml, moves.yaml and species_moves.yaml (default: game.pokedex_dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	dir := *sourceDir
	if dir == "" {
		dir = cfg.Game.PokedexDir
	}

	start := time.Now()
	dex, err := pokedex.LoadFromDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()
	if err := pool.Health(ctx, 5*time.Second); err != nil {
		log.Fatalf("database health check: %v", err)
	}

	if err := postgres.NewPokedexRepository(pool.DB()).Store(ctx, dex); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("imported %d species, %d moves and %d links in %s\n",
		dex.SpeciesCount(), len(dex.AllMoves()), len(dex.AllLinks()),
		time.Since(start).Round(time.Millisecond))
}
