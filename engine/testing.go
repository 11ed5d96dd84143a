package engine

import (
	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/parameter"
)

// NewTestWorld creates a world with core resources and a main camera at the origin
// This is a test helper; the viewport is width x height at unit scale
func NewTestWorld(width, height float32) (*World, CoreResources) {
	w := NewWorld()
	res := AddCoreResources(w, SimResource{
		TickRate:     parameter.DesiredTPS,
		StepDistance: parameter.StepDistance,
	})

	cam := w.CreateEntity()
	GetStore[component.CameraComponent](w).Set(cam, component.NewCamera(component.Position{}, width, height, 1))
	res.Camera.Entity = cam

	return w, res
}
