package render

type passEntry struct {
	pass     Pass
	priority int
	index    int // registration order for stable sort
}

// Pass is one draw-phase renderer
type Pass interface {
	Render(alpha float64) error
}

// VisibilityToggle is implemented by passes that can be hidden
type VisibilityToggle interface {
	IsVisible() bool
}

// Toggler is implemented by overlay passes that can be switched on and off at runtime
type Toggler interface {
	Toggle()
}

// Orchestrator runs registered passes in priority order each frame
type Orchestrator struct {
	passes   []passEntry
	regCount int
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{passes: make([]passEntry, 0, 8)}
}

// Register adds a pass at the specified priority. Maintains sorted order via insertion sort
// Equal priorities run in registration order
func (o *Orchestrator) Register(p Pass, priority int) {
	entry := passEntry{
		pass:     p,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.passes)
	for i, e := range o.passes {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.passes = append(o.passes, passEntry{})
	copy(o.passes[pos+1:], o.passes[pos:])
	o.passes[pos] = entry
}

// Len returns the number of registered passes
func (o *Orchestrator) Len() int {
	return len(o.passes)
}

// ToggleOverlays flips every registered pass that implements Toggler
// Returns the number of passes toggled
func (o *Orchestrator) ToggleOverlays() int {
	n := 0
	for _, entry := range o.passes {
		if t, ok := entry.pass.(Toggler); ok {
			t.Toggle()
			n++
		}
	}
	return n
}

// RenderFrame runs every visible pass at alpha, stopping at the first error
func (o *Orchestrator) RenderFrame(alpha float64) error {
	for _, entry := range o.passes {
		if vt, ok := entry.pass.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		if err := entry.pass.Render(alpha); err != nil {
			return err
		}
	}
	return nil
}
