package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
)

func TestIntent_PlayerHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		keys   []input.Key
		facing core.Direction
		dirs   component.DirectionSet
		has    bool
	}{
		{"right", []input.Key{input.KeyRight}, core.DirRight, component.DirectionsOf(core.DirRight), true},
		{"left", []input.Key{input.KeyLeft}, core.DirLeft, component.DirectionsOf(core.DirLeft), true},
		{"both cancel", []input.Key{input.KeyLeft, input.KeyRight}, core.DirRight, 0, false},
		{"none", nil, core.DirRight, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.hold(tt.keys...)
			f.intent.Update()

			facing, ok := f.comp.Facing.Get(f.player)
			require.True(t, ok)
			assert.Equal(t, tt.facing, facing.Direction)

			intent, ok := f.comp.Intent.Get(f.player)
			assert.Equal(t, tt.has, ok)
			assert.Equal(t, tt.dirs, intent.Dirs)
		})
	}
}

func TestIntent_BothHeldAfterMovingClearsIntent(t *testing.T) {
	f := newFixture()

	f.hold(input.KeyRight)
	f.intent.Update()
	require.True(t, f.comp.Intent.Has(f.player))

	f.hold(input.KeyRight, input.KeyLeft)
	f.intent.Update()
	assert.False(t, f.comp.Intent.Has(f.player))
}

func TestIntent_ReleaseMatchingFacingStops(t *testing.T) {
	f := newFixture()

	f.hold(input.KeyRight)
	f.intent.Update()

	f.hold()
	f.intent.Update()
	assert.False(t, f.comp.Intent.Has(f.player))
}

func TestIntent_ReleaseOtherDirectionKeepsIntent(t *testing.T) {
	f := newFixture()

	// Player moving left while the right key was held last step and is now released
	f.comp.Facing.Set(f.player, component.FacingComponent{Direction: core.DirLeft})
	f.comp.Intent.Set(f.player, component.IntentComponent{Dirs: component.DirectionsOf(core.DirLeft)})
	f.intent.prevHeld = input.ActionSet(0).With(input.ActionPlayerRight)

	f.hold()
	f.intent.Update()

	intent, ok := f.comp.Intent.Get(f.player)
	require.True(t, ok)
	assert.True(t, intent.Dirs.Has(core.DirLeft))
}

func TestIntent_SwitchDirection(t *testing.T) {
	f := newFixture()

	f.hold(input.KeyRight)
	f.intent.Update()

	f.hold(input.KeyLeft)
	f.intent.Update()

	facing, _ := f.comp.Facing.Get(f.player)
	assert.Equal(t, core.DirLeft, facing.Direction)
	intent, ok := f.comp.Intent.Get(f.player)
	require.True(t, ok)
	assert.Equal(t, component.DirectionsOf(core.DirLeft), intent.Dirs)
}

func TestIntent_CameraMergesHeldDirections(t *testing.T) {
	f := newFixture()
	cam := f.res.Camera.Entity

	f.hold(input.RuneKey('w'), input.RuneKey('d'))
	f.intent.Update()

	intent, ok := f.comp.Intent.Get(cam)
	require.True(t, ok)
	assert.Equal(t, component.DirectionsOf(core.DirUp, core.DirRight), intent.Dirs)

	// Releasing one direction drops only that direction
	f.hold(input.RuneKey('d'))
	f.intent.Update()
	intent, ok = f.comp.Intent.Get(cam)
	require.True(t, ok)
	assert.Equal(t, component.DirectionsOf(core.DirRight), intent.Dirs)

	// Player is unaffected by camera keys
	assert.False(t, f.comp.Intent.Has(f.player))
}

func TestIntent_CameraReleaseAllClearsIntentAndSnapshot(t *testing.T) {
	f := newFixture()
	cam := f.res.Camera.Entity

	f.step(input.RuneKey('a'))
	require.NotNil(t, f.camera().PrevPos)

	f.hold()
	f.intent.Update()
	assert.False(t, f.comp.Intent.Has(cam))
	assert.Nil(t, f.camera().PrevPos)
}

func TestIntent_CameraReset(t *testing.T) {
	f := newFixture()
	c := f.camera()
	c.CurPos = component.Position{X: 40, Y: -12}
	c.PrevPos = component.Position{X: 38, Y: -12}.Ptr()
	c.CurScale = component.Scale{X: 2, Y: 2}

	// Reset wins over a simultaneous zoom
	f.hold(input.RuneKey('0'), input.RuneKey('='))
	f.intent.Update()

	c = f.camera()
	assert.Equal(t, component.Position{}, c.CurPos)
	assert.Equal(t, component.UnitScale, c.CurScale)
	assert.Nil(t, c.PrevPos)
	assert.Nil(t, c.PrevScale)
}

func TestIntent_ResetWinsOverHeldPan(t *testing.T) {
	f := newFixture()
	cam := f.res.Camera.Entity
	c := f.camera()
	c.CurPos = component.Position{X: 40, Y: 12}

	f.step(input.RuneKey('0'), input.RuneKey('d'))

	c = f.camera()
	assert.Equal(t, component.Position{}, c.CurPos)
	assert.Nil(t, c.PrevPos)
	assert.False(t, f.comp.Intent.Has(cam))

	// Once reset is released the held pan resumes from the origin
	f.step(input.RuneKey('d'))
	c = f.camera()
	assert.InDelta(t, 2.5, c.CurPos.X, 1e-6)
	require.NotNil(t, c.PrevPos)
	assert.Equal(t, component.Position{}, *c.PrevPos)
}

func TestIntent_Zoom(t *testing.T) {
	f := newFixture()

	f.hold(input.RuneKey('='))
	f.intent.Update()

	c := f.camera()
	require.NotNil(t, c.PrevScale)
	assert.Equal(t, component.UnitScale, *c.PrevScale)
	assert.InDelta(t, parameter.ZoomFactor, c.CurScale.X, 1e-6)
	assert.InDelta(t, parameter.ZoomFactor, c.CurScale.Y, 1e-6)

	f.hold(input.RuneKey('-'))
	f.intent.Update()
	assert.InDelta(t, 1.0, f.camera().CurScale.X, 1e-5)

	// Both zoom keys held is no zoom
	f.hold(input.RuneKey('='), input.RuneKey('-'))
	f.intent.Update()
	assert.Nil(t, f.camera().PrevScale)
	assert.InDelta(t, 1.0, f.camera().CurScale.X, 1e-5)
}

func TestIntent_ZoomClamped(t *testing.T) {
	f := newFixture()
	f.camera().CurScale = component.Scale{X: parameter.ZoomMax, Y: parameter.ZoomMax}

	f.hold(input.RuneKey('='))
	f.intent.Update()
	assert.Equal(t, float32(parameter.ZoomMax), f.camera().CurScale.X)

	f.camera().CurScale = component.Scale{X: parameter.ZoomMin, Y: parameter.ZoomMin}
	f.hold(input.RuneKey('-'))
	f.intent.Update()
	assert.Equal(t, float32(parameter.ZoomMin), f.camera().CurScale.Y)
}
