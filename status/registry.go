package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and game loop
const (
	KeySteps        = "engine.steps"
	KeyFrames       = "engine.frames"
	KeyStepsInFrame = "engine.steps_in_frame"
	KeyFPS          = "render.fps"
	KeyAlpha        = "render.alpha"
	KeySession      = "game.session"
)

// Registry is the central metrics facade
// Loops cache slot pointers at construction and write atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key value", ints then floats then strings
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s %s", k, v.Load()))
	})
	return lines
}
