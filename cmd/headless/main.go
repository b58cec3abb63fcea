// Command headless runs batches of chase simulations without a window and reports
// how long the pursuers need to catch the prey.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/telemetry"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML config (empty = use defaults)")
	variant := flag.String("variant", "", "Simulation variant: pursuit or follow (empty = use config)")
	runs := flag.Int("runs", 10, "Number of runs")
	seed := flag.Int64("seed", 1, "Seed of the first run; run i uses seed+i")
	maxSteps := flag.Int("max-steps", 10000, "Give up on a run after N steps")
	outputDir := flag.String("out", "", "Output directory for CSV logs and config snapshot (empty = no output)")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stderr)

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configPath); err != nil {
			logger.Fatalf("failed to load config: %v", err)
		}
	}
	if *variant != "" {
		cfg.Variant = *variant
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	rec, err := telemetry.NewRecorder(*outputDir)
	if err != nil {
		logger.Fatalf("failed to create output: %v", err)
	}
	defer rec.Close()
	if err := rec.WriteConfig(cfg); err != nil {
		logger.Fatalf("failed to write config: %v", err)
	}

	b := batch{cfg: cfg, maxSteps: *maxSteps, logger: logger, rec: rec}
	outcomes, err := b.run(*runs, *seed)
	if err != nil {
		logger.Fatal(err)
	}

	s := telemetry.Summarize(outcomes)
	fmt.Printf("variant:      %s\n", cfg.Variant)
	fmt.Printf("runs:         %d\n", s.Runs)
	fmt.Printf("captured:     %d (%.1f%%)\n", s.Captured, 100*s.CaptureRate)
	if s.Captured > 0 {
		fmt.Printf("steps mean:   %.2f\n", s.MeanSteps)
		fmt.Printf("steps stddev: %.2f\n", s.StdDevSteps)
		fmt.Printf("steps median: %.0f\n", s.MedianSteps)
		fmt.Printf("steps range:  %.0f - %.0f\n", s.MinSteps, s.MaxSteps)
	}
	if dir := rec.Dir(); dir != "" {
		fmt.Printf("output:       %s\n", dir)
	}
}
