package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/render"
)

// ErrNoCamera is returned by Render when the main camera entity has no camera component
var ErrNoCamera = errors.New("main camera missing")

// RenderSystem draws every renderable of kind D through its drawer
// It runs in the draw phase and never mutates the world
type RenderSystem[D any] struct {
	engine.SystemBase
	renderables *engine.Store[component.RenderableComponent[D]]
	drawer      render.Drawer[D]
	priority    int
}

// NewRenderSystem binds a drawer to the renderables of kind D
// Lower priority draws first, later draws overwrite earlier cells
func NewRenderSystem[D any](world *engine.World, drawer render.Drawer[D], priority int) *RenderSystem[D] {
	return &RenderSystem[D]{
		SystemBase:  engine.NewSystemBase(world),
		renderables: engine.GetStore[component.RenderableComponent[D]](world),
		drawer:      drawer,
		priority:    priority,
	}
}

func (s *RenderSystem[D]) Priority() int {
	return s.priority
}

// Render projects each renderable through the main camera at alpha and draws it
// Returns the first drawer error; remaining entities are not drawn
func (s *RenderSystem[D]) Render(alpha float64) error {
	camEntity := s.Resource.Camera.Entity
	cam, ok := s.Component.Camera.Get(camEntity)
	if !ok {
		return fmt.Errorf("camera entity %d: %w", camEntity, ErrNoCamera)
	}

	a := render.ClampAlpha(alpha)
	view := render.CameraView(&cam, a)
	scale := view.ScreenScale()

	for e, rc := range s.renderables.Each() {
		var half mgl32.Vec2
		if size, ok := s.Component.Size.Get(e); ok {
			half = size.Half()
		}

		pos := render.BlendPosition(rc.CurPos, rc.PrevPos, a)
		dest := component.PositionFromVec(view.Project(pos.Vec(), half))

		if err := s.drawer.Draw(rc.Drawable, dest, scale, rc.Param); err != nil {
			return fmt.Errorf("draw entity %d: %w", e, err)
		}
	}
	return nil
}
