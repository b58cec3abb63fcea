package simulation

import (
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

// Variant selects which of the two simulations runs.
type Variant string

const (
	VariantPursuit Variant = "pursuit"
	VariantFollow  Variant = "follow"
)

// Dynamics are the constants of a run, fixed between resets.
type Dynamics struct {
	PursuerSpeed      float64
	TargetSpeed       float64
	RepulsionStrength float64
	NeighborRadius    float64
	MaxPopulation     int
	// LeadDirection is the travel direction of the lead (follow variant only).
	LeadDirection geometry.Vector2D
}

// Simulation is the step API shared by Pursuit and Follow.
// Calls must not overlap: Step is sequential and not re-entrant.
type Simulation interface {
	Variant() Variant
	Configure(populationSize int, safetyDistance float64)
	Step() StepResult
	Reset(populationSize int, arenaSize float64, opts ...ResetOption)
	State() State
	Last() StepResult
	Terminated() bool
}

// NewSimulation builds the variant named by cfg.Variant.
func NewSimulation(cfg *Config, opts ...Option) (Simulation, error) {
	switch Variant(cfg.Variant) {
	case VariantPursuit, "":
		return NewPursuit(cfg, opts...), nil
	case VariantFollow:
		return NewFollow(cfg, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Variant)
}

// Option customizes a simulation at construction.
type Option func(*engine)

// WithParamSource makes every Step read its Params from src instead of the last Configure call.
func WithParamSource(src ParamSource) Option {
	return func(e *engine) { e.source = src }
}

// WithEmitter registers a receiver for every StepResult.
func WithEmitter(em Emitter) Option {
	return func(e *engine) { e.emitter = em }
}

// WithObserver registers a receiver for population rebuilds.
func WithObserver(obs PopulationObserver) Option {
	return func(e *engine) { e.reconf.observer = obs }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l log.Logger) Option {
	return func(e *engine) {
		e.logger = l
		e.reconf.logger = l
	}
}

type resetOptions struct {
	seed   int64
	seeded bool
}

// ResetOption customizes Reset.
type ResetOption func(*resetOptions)

// Seed makes the reset, and every step after it, reproducible.
func Seed(seed int64) ResetOption {
	return func(o *resetOptions) {
		o.seed = seed
		o.seeded = true
	}
}

type moveFunc func(State, Dynamics) (State, StepResult)

// engine holds what Pursuit and Follow have in common: state, pending params,
// the random source and the external collaborators.
type engine struct {
	dyn      Dynamics
	state    State
	params   Params
	rng      *rand.Rand
	source   ParamSource
	emitter  Emitter
	reconf   reconfigurer
	logger   log.Logger
	last     StepResult
	stepping bool
}

func newEngine(cfg *Config, opts []Option) engine {
	e := engine{
		dyn:    cfg.Dynamics(),
		params: Params{PopulationSize: cfg.PopulationSize, SafetyDistance: cfg.SafetyDistance},
		logger: log.DiscardLogger,
	}
	e.reconf.logger = log.DiscardLogger
	for _, opt := range opts {
		opt(&e)
	}
	var ro []ResetOption
	if cfg.Seed != nil {
		ro = append(ro, Seed(*cfg.Seed))
	}
	e.Reset(cfg.PopulationSize, cfg.ArenaSize, ro...)
	return e
}

// Configure records the desired population size and safety distance.
// They take effect at the start of the next Step.
func (e *engine) Configure(populationSize int, safetyDistance float64) {
	e.params = Params{PopulationSize: populationSize, SafetyDistance: safetyDistance}
}

// Reset discards all state and draws fresh random positions: the population first,
// then the distinguished agent.
func (e *engine) Reset(populationSize int, arenaSize float64, opts ...ResetOption) {
	var o resetOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.seeded {
		e.rng = NewRand(o.seed)
	} else {
		e.rng = newEntropyRand()
	}

	size := ClampPopulation(populationSize, e.dyn.MaxPopulation)
	e.params.PopulationSize = size

	sample := UniformSampler(e.rng, arenaSize)
	pop := NewPopulation(e.dyn.MaxPopulation)
	pop.Replace(size, sample)
	pop.SetDistinguished(sample())

	e.state = State{
		ArenaSize:      arenaSize,
		SafetyDistance: e.params.SafetyDistance,
		Phase:          Running,
		Population:     pop,
	}
	e.last = restingResult(e.state)
	e.logger.Debugf("reset: %d agents, arena %.2f, seeded=%v", size, arenaSize, o.seeded)
	if e.reconf.observer != nil {
		e.reconf.observer.Repopulated(pop.Positions())
	}
}

// State returns a copy of the current state.
func (e *engine) State() State { return e.state.Clone() }

// Last returns the most recent StepResult (the resting layout right after Reset).
func (e *engine) Last() StepResult { return e.last }

// Terminated reports whether the capture check has fired.
func (e *engine) Terminated() bool { return e.state.Phase == Terminated }

// step runs reconfigure, move, check and emit. Once terminated it keeps returning
// the final result without touching the state.
func (e *engine) step(move moveFunc) StepResult {
	if e.stepping {
		panic("simulation: Step called while a step is in progress")
	}
	e.stepping = true
	defer func() { e.stepping = false }()

	if e.state.Phase == Terminated {
		return e.last
	}
	if e.source != nil {
		e.params = e.source.Params()
	}

	next := e.state.Clone()
	repopulated := e.reconf.apply(&next, e.params, UniformSampler(e.rng, next.ArenaSize))
	next, res := move(next, e.dyn)
	res.Repopulated = repopulated

	e.state = next
	e.last = res
	if res.Terminal {
		e.logger.Infof("prey caught at step %d by pursuer %d (distance %.3f < %.3f)",
			res.Step, res.Closest, res.MinDistance, next.SafetyDistance)
	}
	if e.emitter != nil {
		e.emitter.Emit(res)
	}
	return res
}

// restingResult describes s without moving anything.
func restingResult(s State) StepResult {
	positions := s.Population.Positions()
	target := s.Population.Distinguished()
	return StepResult{
		Step:                 s.Step,
		Distinguished:        target,
		DistinguishedHeading: geometry.DefaultHeading,
		Positions:            positions,
		Headings:             Headings(positions, target),
		Terminal:             s.Phase == Terminated,
		Closest:              -1,
	}
}
