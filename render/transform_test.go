package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/drift/component"
)

func TestClampAlpha(t *testing.T) {
	assert.Equal(t, float32(0), ClampAlpha(-0.2))
	assert.Equal(t, float32(1), ClampAlpha(1.7))
	assert.Equal(t, float32(0.25), ClampAlpha(0.25))
}

func TestBlend(t *testing.T) {
	cur := mgl32.Vec2{10, 4}
	prev := mgl32.Vec2{7.5, 0}

	assert.Equal(t, cur, Blend(cur, nil, 0.3))

	got := Blend(cur, &prev, 0.5)
	assert.InDelta(t, 8.75, got.X(), 1e-6)
	assert.InDelta(t, 2.0, got.Y(), 1e-6)

	assert.Equal(t, prev, Blend(cur, &prev, 0))
	assert.Equal(t, cur, Blend(cur, &prev, 1))
}

func TestBlendPosition_SettledIgnoresAlpha(t *testing.T) {
	cur := component.Position{X: 3, Y: -2}
	for _, a := range []float32{0, 0.4, 1} {
		assert.Equal(t, cur, BlendPosition(cur, nil, a))
	}
}

func TestBlendScale(t *testing.T) {
	prev := component.UnitScale
	got := BlendScale(component.Scale{X: 2, Y: 2}, &prev, 0.25)
	assert.InDelta(t, 1.25, got.X, 1e-6)
}

func TestView_Project(t *testing.T) {
	cam := component.NewCamera(component.Position{X: 10, Y: 20}, 800, 600, 1)
	view := CameraView(&cam, 1)

	off := view.Offset()
	assert.InDelta(t, 10-400, off.X(), 1e-6)
	assert.InDelta(t, 20-300, off.Y(), 1e-6)

	// Entity y is flipped before the camera offset is applied
	got := view.Project(mgl32.Vec2{50, 30}, mgl32.Vec2{15, 15})
	assert.InDelta(t, (50-15)-(10-400), got.X(), 1e-6)
	assert.InDelta(t, (-30-15)-(20-300), got.Y(), 1e-6)
}

func TestCameraView_BlendsPositionAndScale(t *testing.T) {
	cam := component.NewCamera(component.Position{X: 10}, 100, 100, 2)
	cam.PrevPos = component.Position{}.Ptr()
	cam.PrevScale = &component.Scale{X: 1, Y: 1}

	view := CameraView(&cam, 0.5)
	assert.InDelta(t, 5.0, view.Pos.X(), 1e-6)
	assert.InDelta(t, 1.5, view.Scale.X(), 1e-6)
	assert.Equal(t, component.Scale{X: 1.5, Y: 1.5}, view.ScreenScale())
	assert.Equal(t, mgl32.Vec2{50, 50}, view.HalfExtent)
}
