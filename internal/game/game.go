// Package game is the ebiten front end of the chase simulation. It drives the
// simulation actor with one Tick per frame and draws the snapshots it pushes back.
package game

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pb"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const (
	panelWidth   = 220
	arenaPixels  = 560
	margin       = 20
	ScreenWidth  = panelWidth + arenaPixels + 2*margin
	ScreenHeight = arenaPixels + 2*margin
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	colorAgent  = color.RGBA{R: 50, G: 100, B: 255, A: 255}
	colorPrey   = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	colorLead   = color.RGBA{R: 50, G: 220, B: 90, A: 255}
	colorRing   = color.RGBA{R: 255, G: 200, B: 0, A: 120}
	colorBorder = color.RGBA{R: 100, G: 100, B: 110, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	simPID     *actor.PID
	snapshotCh chan simulation.StepResult
	lastState  simulation.StepResult
	variant    simulation.Variant
	cfg        *simulation.Config
	view       viewport

	// UI Controls
	panel                *ui.UIPanel
	widgetPopulation     *ui.Slider
	widgetSafetyDistance *ui.Slider
	widgetSafetyRing     *ui.Checkbox
	widgetPaused         *ui.Checkbox

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the simulation actor for sim on system and builds the control panel.
func GetNewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, sim simulation.Simulation) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan simulation.StepResult, 10)

	simPID, err := system.Spawn(ctx, "simulation", simulation.NewSimulationActor(sim, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn simulation actor: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		simPID:     simPID,
		snapshotCh: snapshotCh,
		lastState:  sim.Last(),
		variant:    sim.Variant(),
		cfg:        cfg,
		view:       newViewport(panelWidth+margin, margin, arenaPixels, cfg.ArenaSize),
	}

	panel := ui.NewUIPanel(fmt.Sprintf("Chase: %s", sim.Variant()), 10, 10, panelWidth-20, ScreenHeight-20)
	panel.AddSection("Population")
	g.widgetPopulation = panel.AddIntSlider("Agents", simulation.MinPopulation, cfg.MaxPopulation, cfg.PopulationSize)
	panel.AddSection("Capture")
	g.widgetSafetyDistance = panel.AddSlider("Safety distance", cfg.SafetyDistanceMin, cfg.SafetyDistanceMax, cfg.SafetyDistance)
	panel.AddSection("Visualization")
	g.widgetSafetyRing = panel.AddCheckbox("Show safety ring", true)
	g.widgetPaused = panel.AddCheckbox("Pause", false)
	panel.AddButton("Reset", g.reset)
	g.panel = panel

	return g, nil
}

// reset asks the actor for a fresh layout with the current slider population.
func (g *Game) reset() {
	_ = actor.Tell(g.ctx, g.simPID, pb.NewReset(int32(g.widgetPopulation.Int()), g.cfg.ArenaSize, 0, false))
}

// drainSnapshots keeps the most recent pushed StepResult.
func (g *Game) drainSnapshots() {
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()
	g.drainSnapshots()

	// A terminal snapshot freezes the view until Reset
	if g.lastState.Terminal || g.widgetPaused.Value {
		return nil
	}

	configure := pb.NewConfigure(int32(g.widgetPopulation.Int()), g.widgetSafetyDistance.Value)
	if err := actor.Tell(g.ctx, g.simPID, configure); err != nil {
		return fmt.Errorf("sending configure: %w", err)
	}
	if err := actor.Tell(g.ctx, g.simPID, pb.NewTick()); err != nil {
		return fmt.Errorf("sending tick: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})
	vector.StrokeRect(screen,
		float32(g.view.originX), float32(g.view.originY-arenaPixels),
		arenaPixels, arenaPixels,
		1, colorBorder, true)

	state := g.lastState
	target := colorLead
	if g.variant == simulation.VariantPursuit {
		target = colorPrey
		if g.widgetSafetyRing.Value {
			x, y := g.view.toScreen(state.Distinguished)
			vector.StrokeCircle(screen, x, y, g.view.length(g.widgetSafetyDistance.Value), 1, colorRing, true)
		}
	}

	for i, pos := range state.Positions {
		heading := geometry.DefaultHeading
		if i < len(state.Headings) {
			heading = state.Headings[i]
		}
		g.drawAgent(screen, pos, heading, colorAgent)
	}
	g.drawAgent(screen, state.Distinguished, state.DistinguishedHeading, target)

	g.panel.Draw(screen)

	if state.Terminal {
		msg := fmt.Sprintf("CAUGHT at step %d\nby pursuer %d (%.3f)\n\npress Reset", state.Step, state.Closest, state.MinDistance)
		ebitenutil.DebugPrintAt(screen, msg, int(g.view.originX)+arenaPixels/2-60, ScreenHeight/2-20)
	}

	msg := fmt.Sprintf("Step: %d\nAgents: %d\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		state.Step,
		len(state.Positions),
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, ScreenWidth-130, margin+5)
}

func (g *Game) drawAgent(screen *ebiten.Image, pos, heading geometry.Vector2D, clr color.RGBA) {
	r, gr, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	tri := triangle(pos, heading)

	vertices := make([]ebiten.Vertex, len(tri))
	for i, p := range tri {
		x, y := g.view.toScreen(p)
		vertices[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
		}
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(w, h int) (int, int) { return ScreenWidth, ScreenHeight }
