package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/input"
)

func TestDisplace(t *testing.T) {
	origin := component.Position{}
	tests := []struct {
		name string
		dirs component.DirectionSet
		want component.Position
	}{
		{"right", component.DirectionsOf(core.DirRight), component.Position{X: 2.5}},
		{"left", component.DirectionsOf(core.DirLeft), component.Position{X: -2.5}},
		{"up", component.DirectionsOf(core.DirUp), component.Position{Y: 2.5}},
		{"down", component.DirectionsOf(core.DirDown), component.Position{Y: -2.5}},
		{"diagonal not normalized", component.DirectionsOf(core.DirRight, core.DirUp), component.Position{X: 2.5, Y: 2.5}},
		{"opposites cancel", component.DirectionsOf(core.DirUp, core.DirDown), component.Position{}},
		{"empty", 0, component.Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Displace(origin, tt.dirs, 2.5))
		})
	}
}

func TestMotion_FourStepsRight(t *testing.T) {
	f := newFixture()

	for range 4 {
		f.step(input.KeyRight)
	}

	rc := f.playerRenderable()
	assert.InDelta(t, 10.0, rc.CurPos.X, 1e-6)
	assert.InDelta(t, 0.0, rc.CurPos.Y, 1e-6)
	require.NotNil(t, rc.PrevPos)
	assert.InDelta(t, 7.5, rc.PrevPos.X, 1e-6)
}

func TestMotion_NoIntentNoMovement(t *testing.T) {
	f := newFixture()

	f.step()
	rc := f.playerRenderable()
	assert.Equal(t, component.Position{}, rc.CurPos)
	assert.Nil(t, rc.PrevPos)
}

func TestMotion_EmptyIntentSkipped(t *testing.T) {
	f := newFixture()
	f.comp.Intent.Set(f.player, component.IntentComponent{})

	f.hold()
	f.world.Update()
	assert.Equal(t, component.Position{}, f.playerRenderable().CurPos)
}

func TestCameraMotion_UpIncreasesY(t *testing.T) {
	f := newFixture()

	f.step(input.RuneKey('w'))
	f.step(input.RuneKey('w'))

	c := f.camera()
	assert.InDelta(t, 5.0, c.CurPos.Y, 1e-6)
	require.NotNil(t, c.PrevPos)
	assert.InDelta(t, 2.5, c.PrevPos.Y, 1e-6)

	// Camera keys never move the player
	assert.Equal(t, component.Position{}, f.playerRenderable().CurPos)
}

func TestCameraMotion_Diagonal(t *testing.T) {
	f := newFixture()

	f.step(input.RuneKey('a'), input.RuneKey('s'))
	c := f.camera()
	assert.InDelta(t, -2.5, c.CurPos.X, 1e-6)
	assert.InDelta(t, -2.5, c.CurPos.Y, 1e-6)
}
