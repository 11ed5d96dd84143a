package system

import (
	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
)

// IntentSystem turns the polled held-key snapshot into IntentComponent sets
// Player and camera follow different rules: the player replaces its intent with
// the single held horizontal direction, the camera merges every held direction
type IntentSystem struct {
	engine.SystemBase
	keys *input.KeyTable

	// Actions held on the previous step, for release detection
	prevHeld input.ActionSet
}

var playerActions = [2]input.Action{input.ActionPlayerLeft, input.ActionPlayerRight}

var cameraActions = [4]input.Action{
	input.ActionCameraLeft,
	input.ActionCameraRight,
	input.ActionCameraUp,
	input.ActionCameraDown,
}

// NewIntentSystem creates the intent system reading bindings from keys
func NewIntentSystem(world *engine.World, keys *input.KeyTable) *IntentSystem {
	return &IntentSystem{
		SystemBase: engine.NewSystemBase(world),
		keys:       keys,
	}
}

func (s *IntentSystem) Name() string {
	return "intent"
}

func (s *IntentSystem) Priority() int {
	return parameter.PriorityIntent
}

// Update applies releases first, then camera commands, then player intent
func (s *IntentSystem) Update() {
	held := s.keys.Actions(s.Resource.Input.Held)
	released := s.prevHeld.Minus(held)
	s.prevHeld = held

	s.applyReleases(released)
	s.updateCamera(held)
	s.updatePlayers(held)
}

// applyReleases mirrors key-up handling: a player stops only when the released key
// produced its current facing, a camera drops just the released direction
func (s *IntentSystem) applyReleases(released input.ActionSet) {
	if released.Empty() {
		return
	}

	for _, a := range playerActions {
		if !released.Has(a) {
			continue
		}
		dir, _ := a.Direction()
		for row := range engine.Join2(s.Component.Player, s.Component.Facing) {
			if row.B.Direction == dir && s.Component.Intent.Has(row.Entity) {
				s.Component.Intent.Remove(row.Entity)
			}
		}
	}

	for _, a := range cameraActions {
		if !released.Has(a) {
			continue
		}
		dir, _ := a.Direction()
		for row := range engine.Join2(s.Component.Camera, s.Component.Intent) {
			row.B.Dirs = row.B.Dirs.Remove(dir)
		}
	}
}

func (s *IntentSystem) updateCamera(held input.ActionSet) {
	camEntity := s.Resource.Camera.Entity
	cam, ok := s.Component.Camera.GetMut(camEntity)
	if !ok {
		return
	}

	var dirs component.DirectionSet
	for _, a := range cameraActions {
		if held.Has(a) {
			dir, _ := a.Direction()
			dirs = dirs.Add(dir)
		}
	}

	if dirs.Empty() {
		s.Component.Intent.Remove(camEntity)
		cam.PrevPos = nil
	} else {
		intent, _ := s.Component.Intent.Get(camEntity)
		s.Component.Intent.Set(camEntity, component.IntentComponent{Dirs: intent.Dirs | dirs})
	}

	s.updateZoom(cam, held)

	// Reset is a direct overwrite with no interpolation blend
	// Dropping the intent keeps a held pan key from moving the camera off the origin this step
	if held.Has(input.ActionCameraReset) {
		s.Component.Intent.Remove(camEntity)
		cam.Reset()
	}
}

// updateZoom scales the camera while exactly one zoom action is held
func (s *IntentSystem) updateZoom(cam *component.CameraComponent, held input.ActionSet) {
	in, out := held.Has(input.ActionZoomIn), held.Has(input.ActionZoomOut)
	if in == out {
		cam.PrevScale = nil
		return
	}

	prev := cam.CurScale
	cam.PrevScale = &prev

	factor := parameter.ZoomFactor
	if out {
		factor = 1 / factor
	}
	cam.CurScale = component.Scale{
		X: clampZoom(cam.CurScale.X * factor),
		Y: clampZoom(cam.CurScale.Y * factor),
	}
}

func clampZoom(v float32) float32 {
	if v < parameter.ZoomMin {
		return parameter.ZoomMin
	}
	if v > parameter.ZoomMax {
		return parameter.ZoomMax
	}
	return v
}

// updatePlayers resolves the horizontal pair: both held clears intent outright
// rather than cancelling through the vector sum
func (s *IntentSystem) updatePlayers(held input.ActionSet) {
	left, right := held.Has(input.ActionPlayerLeft), held.Has(input.ActionPlayerRight)

	if left && right {
		for e := range s.Component.Player.Each() {
			s.Component.Intent.Remove(e)
		}
		return
	}

	var dir core.Direction
	switch {
	case left:
		dir = core.DirLeft
	case right:
		dir = core.DirRight
	default:
		return
	}

	for e := range s.Component.Player.Each() {
		s.Component.Facing.Set(e, component.FacingComponent{Direction: dir})
		s.Component.Intent.Set(e, component.IntentComponent{Dirs: component.DirectionsOf(dir)})
	}
}
