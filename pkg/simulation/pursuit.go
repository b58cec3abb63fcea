package simulation

// Pursuit runs hunters chasing a single prey that flees from its nearest hunter.
// It stops once the prey is caught.
type Pursuit struct {
	engine
}

var _ Simulation = (*Pursuit)(nil)

// NewPursuit builds a pursuit simulation from cfg, already reset.
func NewPursuit(cfg *Config, opts ...Option) *Pursuit {
	return &Pursuit{engine: newEngine(cfg, opts)}
}

func (p *Pursuit) Variant() Variant { return VariantPursuit }

// Step advances the simulation by one tick.
func (p *Pursuit) Step() StepResult {
	return p.step(MovePursuit)
}

// AdvancePursuit is the pure form of Pursuit.Step: it reconfigures a copy of s with
// params, moves it, and returns the new state. s itself is left untouched.
func AdvancePursuit(s State, params Params, dyn Dynamics, sample PointSampler) (State, StepResult) {
	next := s.Clone()
	repopulated := Reconfigure(&next, params, sample)
	next, res := MovePursuit(next, dyn)
	res.Repopulated = repopulated
	return next, res
}

// MovePursuit moves the prey, then the hunters, and evaluates the capture rule.
// One distance snapshot, taken before anything moves, decides both the hunter
// the prey flees from and whether the prey is caught.
func MovePursuit(s State, dyn Dynamics) (State, StepResult) {
	next := s.Clone()
	hunters := next.Population.Positions()
	prey := next.Population.Distinguished()

	dists := Distances(hunters, prey)
	closest := Closest(dists)
	capture := CheckCapture(dists, closest, next.SafetyDistance)

	threat := prey
	if closest >= 0 {
		threat = hunters[closest]
	}
	newPrey := prey.Add(Flee(prey, threat, dyn.TargetSpeed))
	next.Population.SetDistinguished(newPrey)

	moved := MoveTowards(hunters, newPrey, dyn.PursuerSpeed, dyn.NeighborRadius, dyn.RepulsionStrength)
	for i, pos := range moved {
		next.Population.SetPosition(i, pos)
	}

	next.Step++
	if capture.Caught {
		next.Phase = Terminated
	}

	return next, StepResult{
		Step:                 next.Step,
		Distinguished:        newPrey,
		DistinguishedHeading: Heading(newPrey, threat),
		Positions:            moved,
		Headings:             Headings(moved, newPrey),
		Terminal:             capture.Caught,
		Closest:              capture.Closest,
		MinDistance:          capture.MinDistance,
	}
}
