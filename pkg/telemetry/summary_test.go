package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []RunOutcome
		want     Summary
	}{
		{
			name: "mixed",
			outcomes: []RunOutcome{
				{Run: 0, Steps: 30, Captured: true},
				{Run: 1, Steps: 10, Captured: true},
				{Run: 2, Steps: 500, Captured: false},
				{Run: 3, Steps: 50, Captured: true},
				{Run: 4, Steps: 20, Captured: true},
				{Run: 5, Steps: 40, Captured: true},
			},
			want: Summary{
				Runs: 6, Captured: 5, CaptureRate: 5.0 / 6,
				MeanSteps: 30, StdDevSteps: math.Sqrt(250), MedianSteps: 30,
				MinSteps: 10, MaxSteps: 50,
			},
		},
		{
			name:     "single capture",
			outcomes: []RunOutcome{{Steps: 7, Captured: true}},
			want: Summary{
				Runs: 1, Captured: 1, CaptureRate: 1,
				MeanSteps: 7, MedianSteps: 7, MinSteps: 7, MaxSteps: 7,
			},
		},
		{
			name:     "no capture",
			outcomes: []RunOutcome{{Steps: 100}, {Steps: 100}},
			want:     Summary{Runs: 2},
		},
		{
			name: "empty",
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.outcomes)
			if got.Runs != tt.want.Runs || got.Captured != tt.want.Captured {
				t.Errorf("counts = %d/%d; want %d/%d", got.Captured, got.Runs, tt.want.Captured, tt.want.Runs)
			}
			checks := []struct {
				field     string
				got, want float64
			}{
				{"CaptureRate", got.CaptureRate, tt.want.CaptureRate},
				{"MeanSteps", got.MeanSteps, tt.want.MeanSteps},
				{"StdDevSteps", got.StdDevSteps, tt.want.StdDevSteps},
				{"MedianSteps", got.MedianSteps, tt.want.MedianSteps},
				{"MinSteps", got.MinSteps, tt.want.MinSteps},
				{"MaxSteps", got.MaxSteps, tt.want.MaxSteps},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) > 1e-9 {
					t.Errorf("%s = %v; want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}
