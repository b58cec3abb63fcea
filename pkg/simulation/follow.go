package simulation

import "github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"

// Follow runs followers converging on a lead that travels in a straight line and
// wraps around the arena. It has no terminal condition.
type Follow struct {
	engine
}

var _ Simulation = (*Follow)(nil)

// NewFollow builds a follow simulation from cfg, already reset.
func NewFollow(cfg *Config, opts ...Option) *Follow {
	return &Follow{engine: newEngine(cfg, opts)}
}

func (f *Follow) Variant() Variant { return VariantFollow }

// Step advances the simulation by one tick.
func (f *Follow) Step() StepResult {
	return f.step(MoveFollow)
}

// AdvanceFollow is the pure form of Follow.Step.
func AdvanceFollow(s State, params Params, dyn Dynamics, sample PointSampler) (State, StepResult) {
	next := s.Clone()
	repopulated := Reconfigure(&next, params, sample)
	next, res := MoveFollow(next, dyn)
	res.Repopulated = repopulated
	return next, res
}

// MoveFollow moves the lead (wrapped into the arena), then the followers toward it.
// Followers are never wrapped.
func MoveFollow(s State, dyn Dynamics) (State, StepResult) {
	next := s.Clone()
	followers := next.Population.Positions()

	dir := dyn.LeadDirection.UnitOr(geometry.DefaultHeading)
	lead := next.Population.Distinguished().Add(dir.Mul(dyn.TargetSpeed)).Wrap(next.ArenaSize)
	next.Population.SetDistinguished(lead)

	moved := MoveTowards(followers, lead, dyn.PursuerSpeed, dyn.NeighborRadius, dyn.RepulsionStrength)
	for i, pos := range moved {
		next.Population.SetPosition(i, pos)
	}
	next.Step++

	return next, StepResult{
		Step:                 next.Step,
		Distinguished:        lead,
		DistinguishedHeading: dir,
		Positions:            moved,
		Headings:             Headings(moved, lead),
		Closest:              -1,
	}
}
