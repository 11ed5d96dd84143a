package engine

import "time"

const (
	// MaxFrameTime caps the time credited per host frame so a stall
	// does not trigger an unbounded catch-up burst
	MaxFrameTime = 250 * time.Millisecond

	fpsWindow = 64
)

// StepTimer accumulates wall time per host frame and hands it out in fixed steps
// The leftover fraction of a step is the interpolation alpha for draw
type StepTimer struct {
	clock    TimeProvider
	last     time.Time
	residual time.Duration

	frames    uint64
	durations [fpsWindow]time.Duration
}

// NewStepTimer creates a timer reading from clock
func NewStepTimer(clock TimeProvider) *StepTimer {
	return &StepTimer{
		clock: clock,
		last:  clock.Now(),
	}
}

// StepDuration converts a tick rate to its fixed step length
func StepDuration(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

// Tick credits the time elapsed since the previous Tick, call once per host frame
// Returns the credited duration after clamping
func (t *StepTimer) Tick() time.Duration {
	now := t.clock.Now()
	delta := now.Sub(t.last)
	t.last = now

	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameTime {
		delta = MaxFrameTime
	}

	t.durations[t.frames%fpsWindow] = delta
	t.frames++
	t.residual += delta
	return delta
}

// CheckUpdateTime consumes one fixed step if enough time has accumulated
// Call in a loop to drain every step owed since the last frame
func (t *StepTimer) CheckUpdateTime(tps int) bool {
	step := StepDuration(tps)
	if step <= 0 || t.residual < step {
		return false
	}
	t.residual -= step
	return true
}

// RemainingUpdateTime is the accumulated time not yet consumed by a step
func (t *StepTimer) RemainingUpdateTime() time.Duration {
	return t.residual
}

// Alpha is the fraction of a step elapsed since the last consumed step, in [0,1]
func (t *StepTimer) Alpha(tps int) float64 {
	step := StepDuration(tps)
	if step <= 0 {
		return 0
	}
	a := float64(t.residual) / float64(step)
	if a > 1 {
		return 1
	}
	return a
}

// Frames returns the number of Tick calls
func (t *StepTimer) Frames() uint64 {
	return t.frames
}

// FPS averages frame rate over the recent window
func (t *StepTimer) FPS() float64 {
	n := t.frames
	if n > fpsWindow {
		n = fpsWindow
	}
	if n == 0 {
		return 0
	}
	var total time.Duration
	for i := uint64(0); i < n; i++ {
		total += t.durations[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(n) / total.Seconds()
}
