package engine

import (
	"github.com/lixenwraith/drift/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per system to eliminate runtime map lookup
type ComponentStore struct {
	// Drawables, one store per drawable kind
	Mesh   *Store[component.RenderableComponent[component.Mesh]]
	Sprite *Store[component.RenderableComponent[component.Sprite]]
	Size   *Store[component.SizeComponent]

	// Control
	Player *Store[component.PlayerComponent]
	Facing *Store[component.FacingComponent]
	Intent *Store[component.IntentComponent]
	Camera *Store[component.CameraComponent]

	// Room topology
	Doors       *Store[component.DoorsComponent]
	SpecialRoom *Store[component.SpecialRoomComponent]
}

// GetComponentStore populates ComponentStore from world
// Call once during system construction; pointer remain valid for application lifetime
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Mesh:   GetStore[component.RenderableComponent[component.Mesh]](w),
		Sprite: GetStore[component.RenderableComponent[component.Sprite]](w),
		Size:   GetStore[component.SizeComponent](w),

		Player: GetStore[component.PlayerComponent](w),
		Facing: GetStore[component.FacingComponent](w),
		Intent: GetStore[component.IntentComponent](w),
		Camera: GetStore[component.CameraComponent](w),

		Doors:       GetStore[component.DoorsComponent](w),
		SpecialRoom: GetStore[component.SpecialRoomComponent](w),
	}
}
