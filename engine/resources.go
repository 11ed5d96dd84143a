package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/status"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (Time, Input, Sim) without
// coupling to the Game
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointers are recommended so systems can cache and observe updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources that must exist before systems are constructed
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource describes the step currently being simulated
// Updated by the game loop before each World.Step
type TimeResource struct {
	// StepDelta is the fixed simulated duration of one step
	StepDelta time.Duration

	// StepNumber counts simulated steps since start
	StepNumber uint64

	// FrameNumber counts host frames (update+draw cycles)
	FrameNumber uint64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(stepDelta time.Duration, stepNumber, frameNumber uint64) {
	tr.StepDelta = stepDelta
	tr.StepNumber = stepNumber
	tr.FrameNumber = frameNumber
}

// InputResource holds the held-key snapshot polled once per update pass
type InputResource struct {
	Held input.KeySet
}

// SimResource holds simulation tunables resolved from configuration
type SimResource struct {
	TickRate     int
	StepDistance float32
}

// CameraResource holds the main camera entity reference
type CameraResource struct {
	Entity core.Entity
}

// CoreResources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type CoreResources struct {
	Time   *TimeResource
	Input  *InputResource
	Sim    *SimResource
	Camera *CameraResource
	Status *status.Registry
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system construction; pointers remain valid for application lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Input:  MustGetResource[*InputResource](w.Resources),
		Sim:    MustGetResource[*SimResource](w.Resources),
		Camera: MustGetResource[*CameraResource](w.Resources),
		Status: MustGetResource[*status.Registry](w.Resources),
	}
}

// AddCoreResources registers fresh core resources on w and returns them
// The camera entity is left zero; the caller creates the camera and fills it in
func AddCoreResources(w *World, sim SimResource) CoreResources {
	res := CoreResources{
		Time:   &TimeResource{},
		Input:  &InputResource{Held: input.NewKeySet()},
		Sim:    &sim,
		Camera: &CameraResource{},
		Status: status.NewRegistry(),
	}
	AddResource(w.Resources, res.Time)
	AddResource(w.Resources, res.Input)
	AddResource(w.Resources, res.Sim)
	AddResource(w.Resources, res.Camera)
	AddResource(w.Resources, res.Status)
	return res
}
