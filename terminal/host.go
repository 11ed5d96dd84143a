package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/game"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/status"
)

// ErrScreenInit wraps failures to create or initialize the tcell screen
var ErrScreenInit = errors.New("screen init failed")

// NewScreen creates and initializes the terminal screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	return screen, nil
}

// Options configures a Host
type Options struct {
	Cell         component.SizeComponent
	HoldWindow   time.Duration
	RepeatWindow time.Duration

	// Clock drives both the step timer and key tracking; nil uses the system clock
	Clock engine.TimeProvider
}

// Sim is the simulation driven by the host loop
type Sim interface {
	Update(host game.Host) error
	Draw(alpha float64) error
	Quitting() bool
	TickRate() int
	Resize(width, height float32)
}

// Host implements game.Host on a tcell screen
type Host struct {
	screen tcell.Screen
	cell   component.SizeComponent
	timer  *engine.StepTimer
	keys   *KeyTracker
	logger *zap.Logger

	statFPS *status.AtomicFloat
}

var _ game.Host = (*Host)(nil)

// NewHost wraps an initialized screen
// registry must be the one the HUD draws, normally the game's Status()
func NewHost(screen tcell.Screen, opts Options, registry *status.Registry, logger *zap.Logger) *Host {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		screen:  screen,
		cell:    opts.Cell,
		timer:   engine.NewStepTimer(clock),
		keys:    NewKeyTracker(clock, opts.HoldWindow, opts.RepeatWindow),
		logger:  logger,
		statFPS: registry.Floats.Get(status.KeyFPS),
	}
}

func (h *Host) PressedKeys() input.KeySet {
	return h.keys.Held()
}

func (h *Host) CheckUpdateTime(tps int) bool {
	return h.timer.CheckUpdateTime(tps)
}

func (h *Host) InterpolationAlpha(tps int) float64 {
	return h.timer.Alpha(tps)
}

// Keys exposes the key tracker
func (h *Host) Keys() *KeyTracker {
	return h.keys
}

// Viewport returns the screen size in world units
func (h *Host) Viewport() (width, height float32) {
	return Viewport(h.screen, h.cell)
}

// Viewport converts the screen size in cells to world units
func Viewport(screen tcell.Screen, cell component.SizeComponent) (width, height float32) {
	w, hgt := screen.Size()
	return float32(w) * cell.Width, float32(hgt) * cell.Height
}

// HandleEvent feeds one tcell event into the host
// Resize events are forwarded to sim as a new viewport
func (h *Host) HandleEvent(ev tcell.Event, sim Sim) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.keys.Press(KeyFromEvent(ev))
	case *tcell.EventResize:
		h.screen.Sync()
		w, hgt := h.Viewport()
		sim.Resize(w, hgt)
		h.logger.Debug("resize", zap.Float32("width", w), zap.Float32("height", hgt))
	case *tcell.EventFocus:
		if !ev.Focused {
			h.keys.ReleaseAll()
		}
	}
}

// Frame runs one host frame: credit elapsed time, update, draw, show
func (h *Host) Frame(sim Sim) error {
	h.timer.Tick()
	h.statFPS.Set(h.timer.FPS())

	if err := sim.Update(h); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if sim.Quitting() {
		return nil
	}

	h.screen.Clear()
	if err := sim.Draw(h.InterpolationAlpha(sim.TickRate())); err != nil {
		return err
	}
	h.screen.Show()
	return nil
}

// Run polls events and drives frames every interval until quit, ctx cancellation or an error
func (h *Host) Run(ctx context.Context, sim Sim, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 256)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(core.Guard(func() error {
		h.screen.ChannelEvents(events, ctx.Done())
		return nil
	}))

	g.Go(core.Guard(func() error {
		defer cancel()
		return h.loop(ctx, sim, events, interval)
	}))

	err := g.Wait()
	h.logger.Info("host stopped", zap.Uint64("frames", h.timer.Frames()))
	return err
}

func (h *Host) loop(ctx context.Context, sim Sim, events <-chan tcell.Event, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h.HandleEvent(ev, sim)

		case <-ticker.C:
			if err := h.Frame(sim); err != nil {
				h.logger.Error("frame failed", zap.Error(err))
				return err
			}
			if sim.Quitting() {
				return nil
			}
		}
	}
}
