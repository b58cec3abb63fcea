package main

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/telemetry"
	"github.com/tochemey/goakt/v3/log"
)

// batch runs seeded simulations one after the other.
type batch struct {
	cfg      *simulation.Config
	maxSteps int
	logger   log.Logger
	rec      *telemetry.Recorder // nil disables output
}

// run executes n runs with seeds firstSeed, firstSeed+1... Only the first run's
// trajectory is recorded.
func (b batch) run(n int, firstSeed int64) ([]telemetry.RunOutcome, error) {
	outcomes := make([]telemetry.RunOutcome, 0, n)
	for i := 0; i < n; i++ {
		seed := firstSeed + int64(i)
		o, err := b.runOne(i, seed)
		if err != nil {
			return outcomes, err
		}
		if err := b.rec.WriteOutcome(o); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func (b batch) runOne(run int, seed int64) (telemetry.RunOutcome, error) {
	cfg := *b.cfg
	cfg.Seed = &seed

	opts := []simulation.Option{simulation.WithLogger(b.logger)}
	record := run == 0 && b.rec != nil
	if record {
		opts = append(opts, simulation.WithEmitter(b.rec.Emitter(run)))
	}
	sim, err := simulation.NewSimulation(&cfg, opts...)
	if err != nil {
		return telemetry.RunOutcome{}, err
	}
	if record {
		// step 0 is the initial layout
		if err := b.rec.WriteStep(run, sim.Last()); err != nil {
			return telemetry.RunOutcome{}, err
		}
	}

	for step := 0; step < b.maxSteps && !sim.Terminated(); step++ {
		sim.Step()
	}
	res := sim.Last()
	if err := b.rec.Err(); err != nil {
		return telemetry.RunOutcome{}, fmt.Errorf("recording run %d: %w", run, err)
	}

	o := telemetry.RunOutcome{Run: run, Seed: seed, Steps: res.Step, Captured: res.Terminal}
	b.logger.Debugf("run %d (seed %d): %d steps, captured=%v", run, seed, o.Steps, o.Captured)
	return o, nil
}
