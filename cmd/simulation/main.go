package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-chase-simulation/internal/game"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML config (empty = use defaults)")
	variant := flag.String("variant", "", "Simulation variant: pursuit or follow (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, or random)")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stdout)

	cfg, err := loadConfig(*configPath, *variant, *seed)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("chase",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		logger.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatalf("failed to start actor system: %v", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	sim, err := simulation.NewSimulation(cfg, simulation.WithLogger(logger))
	if err != nil {
		logger.Fatalf("failed to create simulation: %v", err)
	}
	g, err := game.GetNewGame(ctx, cfg, system, sim)
	if err != nil {
		logger.Fatalf("failed to create game: %v", err)
	}

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Chase: %s", sim.Variant()))
	ebiten.SetTPS(ticksPerSecond(cfg))
	if err := ebiten.RunGame(g); err != nil {
		logger.Error(err)
	}
}

// loadConfig reads path (or the defaults) and applies the command line overrides.
func loadConfig(path, variant string, seed int64) (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = simulation.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if variant != "" {
		cfg.Variant = variant
	}
	if seed != 0 {
		cfg.Seed = &seed
	}
	return cfg, cfg.Validate()
}

// ticksPerSecond converts the configured frame interval into ebiten's TPS.
func ticksPerSecond(cfg *simulation.Config) int {
	if cfg.FrameIntervalMs <= 0 {
		return ebiten.DefaultTPS
	}
	tps := 1000 / cfg.FrameIntervalMs
	if tps < 1 {
		tps = 1
	}
	return tps
}
