package engine

import (
	"iter"
	"sort"

	"github.com/lixenwraith/drift/core"
)

// Row2 is one joined entity with pointers to both components
type Row2[A, B any] struct {
	Entity core.Entity
	A      *A
	B      *B
}

// Row3 is one joined entity with pointers to three components
type Row3[A, B, C any] struct {
	Entity core.Entity
	A      *A
	B      *B
	C      *C
}

// Join2 yields every entity present in both stores
// Lazy: the candidate list is taken from the smaller store's dense layout when
// iteration starts, so order is stable within one pass. Entities removed mid-pass
// are skipped; entities added mid-pass are not visited
func Join2[A, B any](a *Store[A], b *Store[B]) iter.Seq[Row2[A, B]] {
	return func(yield func(Row2[A, B]) bool) {
		var driver QueryableStore = a
		if b.Count() < a.Count() {
			driver = b
		}
		for _, e := range driver.All() {
			pa, ok := a.GetMut(e)
			if !ok {
				continue
			}
			pb, ok := b.GetMut(e)
			if !ok {
				continue
			}
			if !yield(Row2[A, B]{Entity: e, A: pa, B: pb}) {
				return
			}
		}
	}
}

// Join3 yields every entity present in all three stores
func Join3[A, B, C any](a *Store[A], b *Store[B], c *Store[C]) iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		candidates := NewQuery().With(a).With(b).With(c).Execute()
		for _, e := range candidates {
			pa, ok := a.GetMut(e)
			if !ok {
				continue
			}
			pb, ok := b.GetMut(e)
			if !ok {
				continue
			}
			pc, ok := c.GetMut(e)
			if !ok {
				continue
			}
			if !yield(Row3[A, B, C]{Entity: e, A: pa, B: pb, C: pc}) {
				return
			}
		}
	}
}

// QueryableStore is the subset of store operations the query builder needs
type QueryableStore interface {
	Has(e core.Entity) bool
	Count() int
	All() []core.Entity
}

// QueryBuilder finds entities present in every added store.
// The query starts with the smallest store and filters through larger ones.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// NewQuery creates an empty query
//
// Example:
//
//	entities := engine.NewQuery().
//	    With(cameras).
//	    With(intents).
//	    Execute()
func NewQuery() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a store to the filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities present in all stores, cached after the first call
// Result order follows the smallest store's dense layout
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest first minimizes Has() checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// All() copies, so filtering in place is safe
	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
