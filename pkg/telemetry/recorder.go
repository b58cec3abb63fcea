// Package telemetry writes simulation runs to CSV and summarizes batches of runs.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/simulation"
)

// Agent roles in a TrajectoryRecord.
const (
	RoleTarget = "target" // prey or lead
	RoleAgent  = "agent"  // pursuer or follower
)

// TrajectoryRecord is one agent at one step.
type TrajectoryRecord struct {
	Run      int     `csv:"run"`
	Step     uint64  `csv:"step"`
	Role     string  `csv:"role"`
	Index    int     `csv:"index"` // -1 for the target
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	HeadingX float64 `csv:"heading_x"`
	HeadingY float64 `csv:"heading_y"`
	Terminal bool    `csv:"terminal"`
}

// Records flattens a StepResult, target first, then agents in index order.
func Records(run int, res simulation.StepResult) []TrajectoryRecord {
	out := make([]TrajectoryRecord, 0, len(res.Positions)+1)
	out = append(out, TrajectoryRecord{
		Run:      run,
		Step:     res.Step,
		Role:     RoleTarget,
		Index:    -1,
		X:        res.Distinguished.X,
		Y:        res.Distinguished.Y,
		HeadingX: res.DistinguishedHeading.X,
		HeadingY: res.DistinguishedHeading.Y,
		Terminal: res.Terminal,
	})
	for i, p := range res.Positions {
		rec := TrajectoryRecord{Run: run, Step: res.Step, Role: RoleAgent, Index: i, X: p.X, Y: p.Y, Terminal: res.Terminal}
		if i < len(res.Headings) {
			rec.HeadingX, rec.HeadingY = res.Headings[i].X, res.Headings[i].Y
		}
		out = append(out, rec)
	}
	return out
}

// Recorder writes trajectory.csv and runs.csv into an output directory.
// A nil *Recorder is valid and discards everything.
type Recorder struct {
	dir            string
	trajectoryFile *os.File
	runsFile       *os.File

	// Track if headers have been written
	trajectoryHeaderWritten bool
	runsHeaderWritten       bool

	// first error hit by an Emitter, which cannot return one
	emitErr error
}

// NewRecorder creates dir and the CSV files in it.
// Returns nil if dir is empty (output disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	r := &Recorder{dir: dir}
	f, err := os.Create(filepath.Join(dir, "trajectory.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating trajectory.csv: %w", err)
	}
	r.trajectoryFile = f

	f, err = os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		r.trajectoryFile.Close()
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	r.runsFile = f

	return r, nil
}

// WriteConfig saves the run configuration as YAML next to the CSV files.
func (r *Recorder) WriteConfig(cfg *simulation.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// WriteStep appends every agent of res to trajectory.csv.
func (r *Recorder) WriteStep(run int, res simulation.StepResult) error {
	if r == nil {
		return nil
	}
	records := Records(run, res)
	if !r.trajectoryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.trajectoryFile); err != nil {
			return fmt.Errorf("writing trajectory: %w", err)
		}
		r.trajectoryHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.trajectoryFile); err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}
	return nil
}

// WriteOutcome appends one finished run to runs.csv.
func (r *Recorder) WriteOutcome(o RunOutcome) error {
	if r == nil {
		return nil
	}
	records := []RunOutcome{o}
	if !r.runsHeaderWritten {
		if err := gocsv.Marshal(records, r.runsFile); err != nil {
			return fmt.Errorf("writing run outcome: %w", err)
		}
		r.runsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.runsFile); err != nil {
		return fmt.Errorf("writing run outcome: %w", err)
	}
	return nil
}

// Emitter returns a simulation.Emitter writing every step of run to trajectory.csv.
// Write failures are kept and reported by Err.
func (r *Recorder) Emitter(run int) simulation.Emitter {
	return simulation.EmitterFunc(func(res simulation.StepResult) {
		if err := r.WriteStep(run, res); err != nil && r.emitErr == nil {
			r.emitErr = err
		}
	})
}

// Err returns the first error an Emitter ran into.
func (r *Recorder) Err() error {
	if r == nil {
		return nil
	}
	return r.emitErr
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close closes all output files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{r.trajectoryFile, r.runsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
