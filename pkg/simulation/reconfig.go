package simulation

import "github.com/tochemey/goakt/v3/log"

// ClampPopulation maps a requested size into [MinPopulation, max].
func ClampPopulation(n, max int) int {
	if n < MinPopulation {
		return MinPopulation
	}
	if n > max {
		return max
	}
	return n
}

// Reconfigure applies params to s before any motion happens in the step:
// the safety distance is taken as is, and a size change (after clamping) rebuilds the
// whole population with fresh positions from sample. It reports whether a rebuild happened.
func Reconfigure(s *State, params Params, sample PointSampler) bool {
	s.SafetyDistance = params.SafetyDistance
	want := ClampPopulation(params.PopulationSize, s.Population.Max())
	if want == s.Population.Len() {
		return false
	}
	s.Population.Replace(want, sample)
	return true
}

// reconfigurer runs Reconfigure and re-registers the new population with the
// presentation layer before returning.
type reconfigurer struct {
	observer PopulationObserver
	logger   log.Logger
}

func (r reconfigurer) apply(s *State, params Params, sample PointSampler) bool {
	before := s.Population.Len()
	if !Reconfigure(s, params, sample) {
		return false
	}
	r.logger.Debugf("population rebuilt: %d -> %d agents (requested %d)",
		before, s.Population.Len(), params.PopulationSize)
	if r.observer != nil {
		r.observer.Repopulated(s.Population.Positions())
	}
	return true
}
