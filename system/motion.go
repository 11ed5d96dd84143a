package system

import (
	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
)

// Displace moves pos by step along every direction in dirs, in world space (y up)
// Diagonals are not normalized
func Displace(pos component.Position, dirs component.DirectionSet, step float32) component.Position {
	var dx, dy float32
	dirs.Each(func(d core.Direction) {
		ux, uy := d.Unit()
		dx += ux
		dy += uy
	})
	return component.Position{
		X: pos.X + dx*step,
		Y: pos.Y + dy*step,
	}
}

// MotionSystem advances every renderable of drawable kind D that carries a non-empty intent
// One instance per drawable kind, since stores are keyed by the full component type
type MotionSystem[D any] struct {
	engine.SystemBase
	renderables *engine.Store[component.RenderableComponent[D]]
}

// NewMotionSystem creates a motion system over the renderables of kind D
func NewMotionSystem[D any](world *engine.World) *MotionSystem[D] {
	return &MotionSystem[D]{
		SystemBase:  engine.NewSystemBase(world),
		renderables: engine.GetStore[component.RenderableComponent[D]](world),
	}
}

func (s *MotionSystem[D]) Name() string {
	return "motion"
}

func (s *MotionSystem[D]) Priority() int {
	return parameter.PriorityMotion
}

// Update snapshots CurPos into PrevPos, then displaces CurPos by one step
func (s *MotionSystem[D]) Update() {
	step := s.Resource.Sim.StepDistance
	for row := range engine.Join2(s.renderables, s.Component.Intent) {
		if row.B.Dirs.Empty() {
			continue
		}
		row.A.PrevPos = row.A.CurPos.Ptr()
		row.A.CurPos = Displace(row.A.CurPos, row.B.Dirs, step)
	}
}

// CameraMotionSystem pans cameras the way MotionSystem moves renderables
// Camera bookkeeping stays in world space; only rendered content is y-flipped
type CameraMotionSystem struct {
	engine.SystemBase
}

func NewCameraMotionSystem(world *engine.World) *CameraMotionSystem {
	return &CameraMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CameraMotionSystem) Name() string {
	return "camera_motion"
}

func (s *CameraMotionSystem) Priority() int {
	return parameter.PriorityCameraMotion
}

func (s *CameraMotionSystem) Update() {
	step := s.Resource.Sim.StepDistance
	for row := range engine.Join2(s.Component.Camera, s.Component.Intent) {
		if row.B.Dirs.Empty() {
			continue
		}
		row.A.PrevPos = row.A.CurPos.Ptr()
		row.A.CurPos = Displace(row.A.CurPos, row.B.Dirs, step)
	}
}
