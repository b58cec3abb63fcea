package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

// Phase is the orchestrator state machine position.
type Phase int

const (
	Running Phase = iota
	Terminated
)

func (p Phase) String() string {
	if p == Terminated {
		return "TERMINATED"
	}
	return "RUNNING"
}

// Params are the externally controlled values read at the start of each step.
type Params struct {
	PopulationSize int
	SafetyDistance float64
}

// ParamSource supplies Params at the start of every step (sliders, scripted controls...).
type ParamSource interface {
	Params() Params
}

// ParamSourceFunc adapts a function to ParamSource.
type ParamSourceFunc func() Params

func (f ParamSourceFunc) Params() Params { return f() }

// Emitter receives the result of every completed step.
type Emitter interface {
	Emit(StepResult)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(StepResult)

func (f EmitterFunc) Emit(r StepResult) { f(r) }

// PopulationObserver is told about a rebuilt population before any agent moves,
// so a presentation layer can recreate one shape per agent.
type PopulationObserver interface {
	Repopulated(positions []geometry.Vector2D)
}

// Sampler is the single randomness source of a simulation. *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// PointSampler draws one fresh agent position.
type PointSampler func() geometry.Vector2D

// UniformSampler draws points uniformly in the square [0, arena) x [0, arena), x first.
func UniformSampler(rng Sampler, arena float64) PointSampler {
	return func() geometry.Vector2D {
		x := rng.Float64() * arena
		y := rng.Float64() * arena
		return geometry.Vector2D{X: x, Y: y}
	}
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// newEntropyRand returns a generator seeded from the runtime's random source.
func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// State is the complete simulation state. Step functions take a State and return a
// new one; Clone gives the copy they mutate, so a previous State can be kept for replay.
type State struct {
	Step           uint64
	ArenaSize      float64
	SafetyDistance float64
	Phase          Phase
	Population     Population
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Population = s.Population.Clone()
	return s
}

// StepResult is what a step emits for the presentation layer.
type StepResult struct {
	Step                 uint64
	Distinguished        geometry.Vector2D
	DistinguishedHeading geometry.Vector2D
	Positions            []geometry.Vector2D
	Headings             []geometry.Vector2D
	// Terminal is only ever set by the pursuit variant.
	Terminal bool
	// Closest is the pursuer index the prey fled from, -1 for the follow variant.
	Closest     int
	MinDistance float64
	Repopulated bool
}

// NewState builds a running state with explicit positions, for replays and tests.
func NewState(arenaSize, safetyDistance float64, maxPopulation int, distinguished geometry.Vector2D, agents ...geometry.Vector2D) State {
	pop := NewPopulation(maxPopulation)
	pop.agents = append([]geometry.Vector2D(nil), agents...)
	pop.distinguished = distinguished
	return State{
		ArenaSize:      arenaSize,
		SafetyDistance: safetyDistance,
		Phase:          Running,
		Population:     pop,
	}
}
