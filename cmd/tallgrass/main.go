// Package main provides the single-player terminal game binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/config"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
	"github.com/cory-johannsen/tallgrass/internal/game/session"
	"github.com/cory-johannsen/tallgrass/internal/game/world"
	"github.com/cory-johannsen/tallgrass/internal/observability"
	"github.com/cory-johannsen/tallgrass/internal/storage/postgres"
	"github.com/cory-johannsen/tallgrass/internal/tui"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before the configuration")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("note: %s not loaded: %v", *envFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	shutdown, err := observability.SetupTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("shutting down tracing", zap.Error(err))
			}
		}()
	}

	dex, err := loadPokedex(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("loading pokedex", zap.Error(err))
	}
	logger.Info("pokedex loaded",
		zap.String("source", cfg.Game.PokedexSource),
		zap.Int("species", dex.SpeciesCount()),
		zap.Int("moves", len(dex.AllMoves())),
	)

	policy, err := creature.ParseFallbackPolicy(cfg.Game.MoveFallback)
	if err != nil {
		logger.Fatal("parsing move fallback", zap.Error(err))
	}
	factory, err := creature.NewFactory(dex, policy, logger)
	if err != nil {
		logger.Fatal("creating creature factory", zap.Error(err))
	}

	m, err := world.LoadMapFromFile(cfg.Game.MapFile)
	if err != nil {
		logger.Fatal("loading map", zap.String("file", cfg.Game.MapFile), zap.Error(err))
	}
	if cfg.Game.RegionX != 0 || cfg.Game.RegionY != 0 {
		m.Region = world.Region{X: cfg.Game.RegionX, Y: cfg.Game.RegionY}
	}

	var src dice.Source
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(src, logger)

	bag := inventory.NewBag(cfg.Game.Potions, cfg.Game.Revives, cfg.Game.Pokeballs)
	s, err := session.New(m, bag, factory, roller, logger)
	if err != nil {
		logger.Fatal("creating session", zap.Error(err))
	}
	if err := s.PopulateTrainers(); err != nil {
		logger.Fatal("populating trainers", zap.Error(err))
	}

	logger.Info("game ready",
		zap.String("map", m.Name),
		zap.Int("region_x", m.Region.X),
		zap.Int("region_y", m.Region.Y),
		zap.Int("trainers", len(m.NonPlayers())),
		zap.Bool("seeded", cfg.Game.Seed != 0),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := tui.Run(ctx, s, logger); err != nil {
		logger.Fatal("running terminal UI", zap.Error(err))
	}
	logger.Info("game over", zap.Duration("played", time.Since(start)))
}

// loadPokedex reads the static tables from the configured source.
func loadPokedex(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pokedex.Pokedex, error) {
	switch cfg.Game.PokedexSource {
	case config.SourceYAML:
		return pokedex.LoadFromDir(cfg.Game.PokedexDir)
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		if err := pool.Health(ctx, 5*time.Second); err != nil {
			return nil, err
		}
		return postgres.NewPokedexRepository(pool.DB()).Load(ctx)
	default:
		return nil, fmt.Errorf("unknown pokedex source %q", cfg.Game.PokedexSource)
	}
}
