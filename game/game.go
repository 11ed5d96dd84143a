package game

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/render"
	"github.com/lixenwraith/drift/status"
	"github.com/lixenwraith/drift/system"
)

// Options configures a new Game
type Options struct {
	// Viewport in world units
	Width, Height float32

	TickRate     int
	StepDistance float32

	// Cell is the world size of one sprite cell
	Cell component.SizeComponent

	Keys *input.KeyTable
}

// DefaultOptions returns options for a viewport of the given world size
func DefaultOptions(width, height float32) Options {
	return Options{
		Width:        width,
		Height:       height,
		TickRate:     parameter.DesiredTPS,
		StepDistance: parameter.StepDistance,
		Cell:         component.SizeComponent{Width: parameter.CellWidth, Height: parameter.CellHeight},
		Keys:         input.DefaultKeyTable(),
	}
}

// Game owns the world, runs fixed steps on Update and draws on Draw
type Game struct {
	World   *engine.World
	Scene   Scene
	Session uuid.UUID

	res  engine.CoreResources
	comp engine.ComponentStore
	keys *input.KeyTable

	passes *render.Orchestrator
	logger *zap.Logger

	// Actions held on the previous update pass, for one-shot toggles
	prevActions input.ActionSet

	steps    uint64
	frames   uint64
	quitting bool

	// Cached metric slots
	statSteps        *atomic.Int64
	statFrames       *atomic.Int64
	statStepsInFrame *atomic.Int64
	statAlpha        *status.AtomicFloat
}

// NewGame builds the world, registers the step systems and populates the initial scene
func NewGame(opts Options, logger *zap.Logger) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %gx%g", opts.Width, opts.Height)
	}
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", opts.TickRate)
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	session := uuid.New()
	w := engine.NewWorld()
	res := engine.AddCoreResources(w, engine.SimResource{
		TickRate:     opts.TickRate,
		StepDistance: opts.StepDistance,
	})
	comp := engine.GetComponentStore(w)

	g := &Game{
		World:   w,
		Session: session,
		res:     res,
		comp:    comp,
		keys:    opts.Keys,
		passes:  render.NewOrchestrator(),
		logger:  logger.With(zap.String("session", session.String())),

		statSteps:        res.Status.Ints.Get(status.KeySteps),
		statFrames:       res.Status.Ints.Get(status.KeyFrames),
		statStepsInFrame: res.Status.Ints.Get(status.KeyStepsInFrame),
		statAlpha:        res.Status.Floats.Get(status.KeyAlpha),
	}
	res.Status.Strings.Get(status.KeySession).Store(session.String())

	g.Scene = populate(w, comp, opts.Width, opts.Height, opts.Cell)
	res.Camera.Entity = g.Scene.MainCamera

	w.AddSystem(system.NewIntentSystem(w, opts.Keys))
	w.AddSystem(system.NewMotionSystem[component.Mesh](w))
	w.AddSystem(system.NewMotionSystem[component.Sprite](w))
	w.AddSystem(system.NewCameraMotionSystem(w))
	w.AddSystem(system.NewStopSystem(w,
		system.NewRenderableSettler[component.Mesh](w),
		system.NewRenderableSettler[component.Sprite](w),
		system.NewCameraSettler(w),
	))

	g.logger.Info("world initialized",
		zap.Int("entities", w.EntityCount()),
		zap.Int("systems", len(w.Systems())),
		zap.Int("players", len(engine.NewQuery().With(comp.Player).With(comp.Mesh).Execute())),
		zap.Int("tick_rate", opts.TickRate),
		zap.Float32("viewport_w", opts.Width),
		zap.Float32("viewport_h", opts.Height),
	)
	return g, nil
}

// RegisterDrawer attaches a drawer for drawable kind D at the given draw priority
func RegisterDrawer[D any](g *Game, drawer render.Drawer[D], priority int) {
	rs := system.NewRenderSystem(g.World, drawer, priority)
	g.AddRenderer(rs, rs.Priority())
}

// AddRenderer adds a draw pass; lower priority draws first
func (g *Game) AddRenderer(p render.Pass, priority int) {
	g.passes.Register(p, priority)
}

// MainCamera returns the camera entity used for drawing
func (g *Game) MainCamera() core.Entity {
	return g.res.Camera.Entity
}

// Resources exposes the core resources for hosts and tests
func (g *Game) Resources() engine.CoreResources {
	return g.res
}

// Status returns the metric registry
func (g *Game) Status() *status.Registry {
	return g.res.Status
}

// Quitting reports whether a quit action was held on an update
func (g *Game) Quitting() bool {
	return g.quitting
}

// Update runs every fixed step the host has time for
// Held keys are polled once per pass and shared by all steps in it
func (g *Game) Update(host Host) error {
	g.frames++
	g.statFrames.Store(int64(g.frames))

	held := host.PressedKeys()
	if held == nil {
		held = input.NewKeySet()
	}
	g.res.Input.Held = held

	actions := g.keys.Actions(held)
	pressed := actions.Minus(g.prevActions)
	g.prevActions = actions

	if pressed.Has(input.ActionToggleHUD) {
		n := g.passes.ToggleOverlays()
		g.logger.Debug("overlays toggled", zap.Int("passes", n))
	}

	if actions.Has(input.ActionQuit) {
		if !g.quitting {
			g.logger.Info("quit requested", zap.Uint64("step", g.steps))
		}
		g.quitting = true
		return nil
	}

	tps := g.res.Sim.TickRate
	stepDelta := engine.StepDuration(tps)
	n := 0
	for host.CheckUpdateTime(tps) {
		g.steps++
		g.res.Time.Update(stepDelta, g.steps, g.frames)
		g.World.Step()
		n++
	}

	g.statSteps.Store(int64(g.steps))
	g.statStepsInFrame.Store(int64(n))
	if n > 1 {
		g.logger.Debug("catch-up", zap.Int("steps", n), zap.Uint64("frame", g.frames))
	}
	return nil
}

// Draw renders every registered pass at the host's alpha
// The first failing pass aborts the frame
func (g *Game) Draw(alpha float64) error {
	g.statAlpha.Set(alpha)
	if err := g.passes.RenderFrame(alpha); err != nil {
		g.logger.Error("draw failed", zap.Error(err), zap.Uint64("frame", g.frames))
		return fmt.Errorf("draw frame %d: %w", g.frames, err)
	}
	return nil
}

// Steps returns the number of simulated steps
func (g *Game) Steps() uint64 {
	return g.steps
}

// TickRate returns the fixed simulation rate in steps per second
func (g *Game) TickRate() int {
	return g.res.Sim.TickRate
}

// Resize updates the main camera viewport, in world units
func (g *Game) Resize(width, height float32) {
	cam, ok := g.comp.Camera.GetMut(g.MainCamera())
	if !ok {
		return
	}
	cam.Width, cam.Height = width, height
	g.logger.Debug("viewport resized", zap.Float32("width", width), zap.Float32("height", height))
}
