package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

func TestFollow_LeadWrapsAroundTheArena(t *testing.T) {
	f := NewFollow(seededConfig(1))
	f.state = NewState(10, 1, 5, vec(9.99, 5), vec(1, 1))
	f.Configure(1, 1)

	res := f.Step()
	if math.Abs(res.Distinguished.X-0.02) > tol || res.Distinguished.Y != 5 {
		t.Errorf("lead = %v; want (0.02, 5)", res.Distinguished)
	}
	if res.DistinguishedHeading != vec(1, 0) {
		t.Errorf("lead heading = %v; want (1, 0)", res.DistinguishedHeading)
	}
}

func TestFollow_CustomLeadDirection(t *testing.T) {
	cfg := seededConfig(1)
	cfg.LeadDirection = vec(0, -2)
	f := NewFollow(cfg)
	f.state = NewState(10, 1, 5, vec(5, 0.01), vec(1, 1))
	f.Configure(1, 1)

	res := f.Step()
	if !res.Distinguished.EqTol(vec(5, 9.98), tol) {
		t.Errorf("lead = %v; want (5, 9.98)", res.Distinguished)
	}
	if !res.DistinguishedHeading.EqTol(vec(0, -1), tol) {
		t.Errorf("lead heading = %v; want (0, -1)", res.DistinguishedHeading)
	}
}

func TestFollow_FollowersAreNotWrapped(t *testing.T) {
	f := NewFollow(seededConfig(1))
	f.state = NewState(10, 1, 5, vec(5, 5), vec(-3, 5))
	f.Configure(1, 1)

	res := f.Step()
	if !res.Positions[0].EqTol(vec(-2.95, 5), tol) {
		t.Errorf("follower = %v; want (-2.95, 5)", res.Positions[0])
	}
}

func TestFollow_NeverTerminates(t *testing.T) {
	f := NewFollow(seededConfig(5))
	// huge safety distance would trigger at once in the pursuit variant
	f.Configure(5, 100)

	for i := 0; i < 500; i++ {
		res := f.Step()
		if res.Terminal || f.Terminated() {
			t.Fatalf("follow variant terminated at step %d", res.Step)
		}
		if res.Closest != -1 || res.MinDistance != 0 {
			t.Fatalf("step %d: Closest %d MinDistance %v; want -1, 0", res.Step, res.Closest, res.MinDistance)
		}
	}
	if got := f.State(); got.SafetyDistance != 100 {
		t.Errorf("stored safety distance = %v; want 100", got.SafetyDistance)
	}
	if got := f.Last().Step; got != 500 {
		t.Errorf("Last().Step = %d; want 500", got)
	}
}

func TestFollow_PopulationSizeInvariant(t *testing.T) {
	f := NewFollow(seededConfig(3))
	for _, tt := range []struct{ requested, want int }{
		{3, 3}, {0, 1}, {9, 5}, {2, 2}, {-1, 1},
	} {
		f.Configure(tt.requested, 1)
		res := f.Step()
		if len(res.Positions) != tt.want || len(res.Headings) != tt.want {
			t.Errorf("requested %d: got %d positions, %d headings; want %d",
				tt.requested, len(res.Positions), len(res.Headings), tt.want)
		}
	}
}

func TestFollow_Deterministic(t *testing.T) {
	cfg := seededConfig(42)
	cfg.Variant = string(VariantFollow)
	a, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ra := runScripted(a, 100)
	rb := runScripted(b, 100)
	for i := range ra {
		if ra[i].Distinguished != rb[i].Distinguished || len(ra[i].Positions) != len(rb[i].Positions) {
			t.Fatalf("runs diverged at step %d", i+1)
		}
		for j := range ra[i].Positions {
			if ra[i].Positions[j] != rb[i].Positions[j] {
				t.Fatalf("runs diverged at step %d agent %d", i+1, j)
			}
		}
	}
}

func TestAdvanceFollow(t *testing.T) {
	s := NewState(10, 1, 5, vec(2, 2), vec(1, 1), vec(1, 1.2))
	dyn := DefaultConfig().Dynamics()

	next, res := AdvanceFollow(s, Params{PopulationSize: 2, SafetyDistance: 1}, dyn, func() geometry.Vector2D { return vec(0, 0) })
	if res.Repopulated {
		t.Error("Repopulated = true without a size change")
	}
	if next.Step != 1 || s.Step != 0 {
		t.Errorf("steps: next %d, input %d; want 1, 0", next.Step, s.Step)
	}
	if !next.Population.Distinguished().EqTol(vec(2.03, 2), tol) {
		t.Errorf("lead = %v; want (2.03, 2)", next.Population.Distinguished())
	}
}
