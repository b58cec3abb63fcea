package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RunOutcome is how one headless run ended.
type RunOutcome struct {
	Run      int    `csv:"run"`
	Seed     int64  `csv:"seed"`
	Steps    uint64 `csv:"steps"`
	Captured bool   `csv:"captured"`
}

// Summary aggregates the capture step over the runs that ended in a capture.
type Summary struct {
	Runs        int
	Captured    int
	CaptureRate float64
	MeanSteps   float64
	StdDevSteps float64
	MedianSteps float64
	MinSteps    float64
	MaxSteps    float64
}

// Summarize computes a Summary. Statistics are zero when nothing was captured,
// and StdDevSteps is zero for a single capture.
func Summarize(outcomes []RunOutcome) Summary {
	s := Summary{Runs: len(outcomes)}
	steps := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Captured {
			steps = append(steps, float64(o.Steps))
		}
	}
	s.Captured = len(steps)
	if s.Runs > 0 {
		s.CaptureRate = float64(s.Captured) / float64(s.Runs)
	}
	if len(steps) == 0 {
		return s
	}

	sort.Float64s(steps)
	s.MinSteps = steps[0]
	s.MaxSteps = steps[len(steps)-1]
	s.MedianSteps = stat.Quantile(0.5, stat.Empirical, steps, nil)
	if len(steps) < 2 {
		s.MeanSteps = steps[0]
		return s
	}
	s.MeanSteps, s.StdDevSteps = stat.MeanStdDev(steps, nil)
	return s
}
