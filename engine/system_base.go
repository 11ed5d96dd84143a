package engine

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  CoreResources
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor, after core resources are added
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetCoreResources(w),
		Component: GetComponentStore(w),
	}
}
