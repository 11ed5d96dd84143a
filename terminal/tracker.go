package terminal

import (
	"sync"
	"time"

	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/input"
)

type keyState struct {
	last      time.Time
	repeating bool
}

// KeyTracker infers the held-key set from press and repeat events
type KeyTracker struct {
	mu    sync.Mutex
	clock engine.TimeProvider

	hold   time.Duration
	repeat time.Duration

	keys map[input.Key]*keyState
}

// NewKeyTracker creates a tracker; hold covers the OS repeat delay, repeat covers the repeat interval
func NewKeyTracker(clock engine.TimeProvider, hold, repeat time.Duration) *KeyTracker {
	return &KeyTracker{
		clock:  clock,
		hold:   hold,
		repeat: repeat,
		keys:   make(map[input.Key]*keyState),
	}
}

// Press records a press or auto-repeat of k
// A second event while k is still held marks it repeating
func (t *KeyTracker) Press(k input.Key) {
	if k == input.KeyNone {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if st, ok := t.keys[k]; ok && t.alive(st, now) {
		st.last = now
		st.repeating = true
		return
	}
	t.keys[k] = &keyState{last: now}
}

// ReleaseAll forgets every key, used on focus loss
func (t *KeyTracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.keys)
}

// Held returns the keys still inside their window and prunes the rest
func (t *KeyTracker) Held() input.KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	held := make(input.KeySet, len(t.keys))
	for k, st := range t.keys {
		if t.alive(st, now) {
			held.Add(k)
		} else {
			delete(t.keys, k)
		}
	}
	return held
}

func (t *KeyTracker) alive(st *keyState, now time.Time) bool {
	window := t.hold
	if st.repeating {
		window = t.repeat
	}
	return now.Sub(st.last) <= window
}
