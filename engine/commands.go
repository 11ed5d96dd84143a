package engine

import "github.com/lixenwraith/drift/core"

// CommandQueue defers structural changes until World.Maintain
// Joins never observe entities or removals queued during the same pass
type CommandQueue struct {
	pending []func(*World)
}

func (q *CommandQueue) push(cmd func(*World)) {
	q.pending = append(q.pending, cmd)
}

// Len returns the number of queued commands
func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// drain applies commands, including ones queued by commands being applied
func (q *CommandQueue) drain(w *World) int {
	applied := 0
	for len(q.pending) > 0 {
		batch := q.pending
		q.pending = nil
		for _, cmd := range batch {
			cmd(w)
			applied++
		}
	}
	return applied
}

func (q *CommandQueue) reset() {
	q.pending = nil
}

// PendingCommands returns the number of commands waiting for Maintain
func (w *World) PendingCommands() int {
	return w.commands.Len()
}

// QueueSpawn creates an entity at the next Maintain and passes it to build
func (w *World) QueueSpawn(build func(w *World, e core.Entity)) {
	w.commands.push(func(w *World) {
		e := w.CreateEntity()
		if build != nil {
			build(w, e)
		}
	})
}

// QueueDestroy defers DestroyEntity to the next Maintain
func (w *World) QueueDestroy(e core.Entity) {
	w.commands.push(func(w *World) {
		w.DestroyEntity(e)
	})
}

// QueueRemove defers removal of component T from e to the next Maintain
func QueueRemove[T any](w *World, e core.Entity) {
	store := GetStore[T](w)
	w.commands.push(func(*World) {
		store.Remove(e)
	})
}

// QueueSet defers insertion of component T to the next Maintain
// Skipped if e died in the meantime
func QueueSet[T any](w *World, e core.Entity, val T) {
	store := GetStore[T](w)
	w.commands.push(func(w *World) {
		if w.IsAlive(e) {
			store.Set(e, val)
		}
	})
}
