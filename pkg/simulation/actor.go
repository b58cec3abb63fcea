package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// SimulationActor owns a Simulation and serializes every access to it through its
// mailbox: a Tick is processed only after the previous one has fully completed.
type SimulationActor struct {
	sim Simulation
	// Communication with UI
	snapshotCh chan<- StepResult
	// --- Benchmark Stats ---
	stepCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*SimulationActor)(nil)

// NewSimulationActor wraps sim. snapshotCh may be nil when results are only polled with GetState.
func NewSimulationActor(sim Simulation, snapshotCh chan<- StepResult) *SimulationActor {
	return &SimulationActor{
		sim:         sim,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (a *SimulationActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("%s simulation starting with %d agents",
		a.sim.Variant(), len(a.sim.Last().Positions))
	return nil
}

func (a *SimulationActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("%s started", ctx.Self().Name())
		a.pushSnapshot(a.sim.Last())

	default:
		switch {
		case pb.Is(msg, pb.Tick):
			a.logBenchmarks(ctx)
			if a.sim.Terminated() {
				return
			}
			a.stepCount++
			a.pushSnapshot(a.sim.Step())

		// Handle dynamic slider updates from UI
		case pb.Is(msg, pb.Configure):
			size, safety := pb.ConfigureValues(msg)
			a.sim.Configure(int(size), safety)

		case pb.Is(msg, pb.Reset):
			size, arena, seed, seeded := pb.ResetValues(msg)
			var opts []ResetOption
			if seeded {
				opts = append(opts, Seed(seed))
			}
			a.sim.Reset(int(size), arena, opts...)
			ctx.Logger().Infof("%s reset: %d agents, arena %.2f", a.sim.Variant(), len(a.sim.Last().Positions), arena)
			a.pushSnapshot(a.sim.Last())

		case pb.Is(msg, pb.GetState):
			ctx.Response(a.sim.Last().ToProto())

		default:
			ctx.Unhandled()
		}
	}
}

func (a *SimulationActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Debugf("STEP RATE: %d/sec | Agents: %d | Terminated: %v",
			a.stepCount, len(a.sim.Last().Positions), a.sim.Terminated())
		a.stepCount = 0
		a.lastLogTime = time.Now()
	}
}

func (a *SimulationActor) pushSnapshot(res StepResult) {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- res:
	default:
		// UI busy, skip frame
	}
}

func (a *SimulationActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("%s simulation stopped after step %d", a.sim.Variant(), a.sim.Last().Step)
	return nil
}
