package system

import (
	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
)

// Settler clears the interpolation snapshot of entities that have stopped
type Settler interface {
	Settle(intents *engine.Store[component.IntentComponent]) int
}

// RenderableSettler settles renderables of drawable kind D
type RenderableSettler[D any] struct {
	store *engine.Store[component.RenderableComponent[D]]
}

func NewRenderableSettler[D any](world *engine.World) RenderableSettler[D] {
	return RenderableSettler[D]{store: engine.GetStore[component.RenderableComponent[D]](world)}
}

func (r RenderableSettler[D]) Settle(intents *engine.Store[component.IntentComponent]) int {
	n := 0
	for e, rc := range r.store.Each() {
		if !rc.Moving() || moving(intents, e) {
			continue
		}
		rc.PrevPos = nil
		n++
	}
	return n
}

// CameraSettler settles camera position snapshots; scale is owned by zoom handling
type CameraSettler struct {
	store *engine.Store[component.CameraComponent]
}

func NewCameraSettler(world *engine.World) CameraSettler {
	return CameraSettler{store: engine.GetStore[component.CameraComponent](world)}
}

func (c CameraSettler) Settle(intents *engine.Store[component.IntentComponent]) int {
	n := 0
	for e, cam := range c.store.Each() {
		if cam.PrevPos == nil || moving(intents, e) {
			continue
		}
		cam.PrevPos = nil
		n++
	}
	return n
}

func moving(intents *engine.Store[component.IntentComponent], e core.Entity) bool {
	intent, ok := intents.Get(e)
	return ok && !intent.Dirs.Empty()
}

// StopSystem drops PrevPos on everything whose intent is absent or empty,
// so a stopped entity renders at CurPos without blending
type StopSystem struct {
	engine.SystemBase
	settlers []Settler
}

func NewStopSystem(world *engine.World, settlers ...Settler) *StopSystem {
	return &StopSystem{
		SystemBase: engine.NewSystemBase(world),
		settlers:   settlers,
	}
}

func (s *StopSystem) Name() string {
	return "stop"
}

func (s *StopSystem) Priority() int {
	return parameter.PriorityStop
}

func (s *StopSystem) Update() {
	for _, settler := range s.settlers {
		settler.Settle(s.Component.Intent)
	}
}
