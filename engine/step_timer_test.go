package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTimer() (*StepTimer, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	return NewStepTimer(clock), clock
}

func drain(timer *StepTimer, tps int) int {
	n := 0
	for timer.CheckUpdateTime(tps) {
		n++
	}
	return n
}

func TestStepTimer_StepsPerFrame(t *testing.T) {
	tests := []struct {
		name  string
		tps   int
		frame time.Duration
		want  int
	}{
		{"one step", 50, 20 * time.Millisecond, 1},
		{"catch-up", 50, 65 * time.Millisecond, 3},
		{"not yet", 50, 19 * time.Millisecond, 0},
		{"clamped stall", 100, 2 * time.Second, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, clock := newTestTimer()
			clock.Advance(tt.frame)
			timer.Tick()

			assert.Equal(t, tt.want, drain(timer, tt.tps))
		})
	}
}

func TestStepTimer_ResidualCarriesOver(t *testing.T) {
	timer, clock := newTestTimer()

	// 30ms at 50 tps: one step, 10ms left
	clock.Advance(30 * time.Millisecond)
	timer.Tick()
	require.Equal(t, 1, drain(timer, 50))
	assert.Equal(t, 10*time.Millisecond, timer.RemainingUpdateTime())
	assert.InDelta(t, 0.5, timer.Alpha(50), 1e-9)

	// Another 10ms completes the owed step
	clock.Advance(10 * time.Millisecond)
	timer.Tick()
	assert.Equal(t, 1, drain(timer, 50))
	assert.Zero(t, timer.Alpha(50))
}

func TestStepTimer_InvalidRate(t *testing.T) {
	timer, clock := newTestTimer()
	clock.Advance(time.Second)
	timer.Tick()

	assert.False(t, timer.CheckUpdateTime(0))
	assert.Zero(t, timer.Alpha(-1))
}

func TestStepTimer_FPS(t *testing.T) {
	timer, clock := newTestTimer()
	assert.Zero(t, timer.FPS())

	for range 10 {
		clock.Advance(20 * time.Millisecond)
		timer.Tick()
	}
	assert.InDelta(t, 50, timer.FPS(), 1e-6)
	assert.Equal(t, uint64(10), timer.Frames())
}
