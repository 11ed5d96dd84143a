package engine

import (
	"reflect"

	"github.com/lixenwraith/drift/core"
)

// System is a simulation step participant, run by World.Update in priority order
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World contains all entities and their components using typed stores
// Not safe for concurrent use: the host mutates it only from the update phase
// and reads it during draw
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	stores    map[reflect.Type]AnyStore
	storeList []AnyStore // registration order, drives destruction

	commands CommandQueue

	// Global resources (time, input, metrics)
	Resources *ResourceStore

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		stores:       make(map[reflect.Type]AnyStore),
		Resources:    NewResourceStore(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID, visible immediately
// Use QueueSpawn from inside a join
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// IsAlive reports whether e was created and not destroyed
func (w *World) IsAlive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// DestroyEntity marks e dead now; its components are reclaimed at the next Maintain
func (w *World) DestroyEntity(e core.Entity) {
	if !w.IsAlive(e) {
		return
	}
	delete(w.alive, e)
	w.commands.push(func(w *World) {
		w.removeFromAllStores(e)
	})
}

// Maintain applies queued spawns, removals and destructions in FIFO order
// Must run once per simulation step before any system
func (w *World) Maintain() int {
	return w.commands.drain(w)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	clear(w.alive)
	w.commands.reset()
	for _, s := range w.storeList {
		s.Clear()
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, s := range w.storeList {
		if s.Has(e) {
			return true
		}
	}
	return false
}

func (w *World) removeFromAllStores(e core.Entity) {
	for _, s := range w.storeList {
		s.Remove(e)
	}
}

// GetStore returns the store for component type T, registering it on first use
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	s.owner = w
	w.stores[t] = s
	w.storeList = append(w.storeList, s)
	return s
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N), stable for equal priority
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step runs one simulation step: maintain, then all systems sequentially
func (w *World) Step() {
	w.Maintain()
	w.Update()
}

// Update runs all systems sequentially without maintaining
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}
