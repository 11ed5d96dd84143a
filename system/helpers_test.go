package system

import (
	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
)

type fixture struct {
	world  *engine.World
	res    engine.CoreResources
	comp   engine.ComponentStore
	keys   *input.KeyTable
	intent *IntentSystem
	player core.Entity
}

func newFixture() *fixture {
	w, res := engine.NewTestWorld(800, 600)
	f := &fixture{
		world: w,
		res:   res,
		comp:  engine.GetComponentStore(w),
		keys:  input.DefaultKeyTable(),
	}

	f.player = w.CreateEntity()
	f.comp.Mesh.Set(f.player, component.RenderableComponent[component.Mesh]{
		Drawable: component.Mesh{Width: parameter.PlayerSize, Height: parameter.PlayerSize},
	})
	f.comp.Size.Set(f.player, component.SizeComponent{Width: parameter.PlayerSize, Height: parameter.PlayerSize})
	f.comp.Facing.Set(f.player, component.FacingComponent{Direction: core.DirRight})
	f.comp.Player.Set(f.player, component.PlayerComponent{})

	f.intent = NewIntentSystem(w, f.keys)
	w.AddSystem(f.intent)
	w.AddSystem(NewMotionSystem[component.Mesh](w))
	w.AddSystem(NewCameraMotionSystem(w))
	w.AddSystem(NewStopSystem(w,
		NewRenderableSettler[component.Mesh](w),
		NewCameraSettler(w),
	))
	return f
}

// hold replaces the held-key snapshot, as the host does before each step
func (f *fixture) hold(keys ...input.Key) {
	f.res.Input.Held = input.NewKeySet(keys...)
}

// step holds keys and runs one full simulation step
func (f *fixture) step(keys ...input.Key) {
	f.hold(keys...)
	f.world.Step()
}

func (f *fixture) camera() *component.CameraComponent {
	cam, _ := f.comp.Camera.GetMut(f.res.Camera.Entity)
	return cam
}

func (f *fixture) playerRenderable() *component.RenderableComponent[component.Mesh] {
	rc, _ := f.comp.Mesh.GetMut(f.player)
	return rc
}
