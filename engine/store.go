package engine

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/drift/core"
)

// Store is a generic container for a specific component type T
// Sparse set: sparse maps entity to dense index, dense arrays are packed for iteration
type Store[T any] struct {
	owner  *World
	sparse map[core.Entity]int
	dense  []core.Entity
	data   []T
}

// NewStore creates a component store for type T not bound to a world
// Unbound stores skip liveness checks
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		sparse: make(map[core.Entity]int),
		dense:  make([]core.Entity, 0, 16),
		data:   make([]T, 0, 16),
	}
}

// Set inserts or overwrites the component for an entity
// Panics with ErrDeadEntity if the owning world does not consider e alive
func (s *Store[T]) Set(e core.Entity, val T) {
	if s.owner != nil && !s.owner.IsAlive(e) {
		var zero T
		panic(fmt.Errorf("set %T on entity %d: %w", zero, e, ErrDeadEntity))
	}

	if idx, ok := s.sparse[e]; ok {
		s.data[idx] = val
		return
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, e)
	s.data = append(s.data, val)
}

// Get returns a copy of the component, false if absent
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	idx, ok := s.sparse[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.data[idx], true
}

// GetMut returns a pointer into the dense array, false if absent
// Pointer is valid until the next structural change to this store
func (s *Store[T]) GetMut(e core.Entity) (*T, bool) {
	idx, ok := s.sparse[e]
	if !ok {
		return nil, false
	}
	return &s.data[idx], true
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.sparse[e]
	return ok
}

// Remove deletes the component for an entity, no-op if absent
// Swap-remove keeps the dense arrays packed
func (s *Store[T]) Remove(e core.Entity) {
	idx, ok := s.sparse[e]
	if !ok {
		return
	}

	last := len(s.dense) - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.data[idx] = s.data[last]
		s.sparse[moved] = idx
	}

	var zero T
	s.data[last] = zero
	s.dense = s.dense[:last]
	s.data = s.data[:last]
	delete(s.sparse, e)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.dense)
}

// All returns a copy of the entities holding this component in dense order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.dense))
	copy(result, s.dense)
	return result
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.sparse = make(map[core.Entity]int)
	s.dense = s.dense[:0]
	clear(s.data)
	s.data = s.data[:0]
}

// Each yields every entity and a mutable pointer to its component in dense order
// Iterates a snapshot of the entity list; entries removed mid-pass are skipped
func (s *Store[T]) Each() iter.Seq2[core.Entity, *T] {
	return func(yield func(core.Entity, *T) bool) {
		for _, e := range s.All() {
			ptr, ok := s.GetMut(e)
			if !ok {
				continue
			}
			if !yield(e, ptr) {
				return
			}
		}
	}
}
