package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift/component"
)

// ClampAlpha converts a host alpha to float32 in [0,1]
func ClampAlpha(alpha float64) float32 {
	switch {
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	}
	return float32(alpha)
}

// Blend interpolates between the previous and current snapshot
// With no previous snapshot the current value is returned unchanged
func Blend(cur mgl32.Vec2, prev *mgl32.Vec2, alpha float32) mgl32.Vec2 {
	if prev == nil {
		return cur
	}
	return cur.Mul(alpha).Add(prev.Mul(1 - alpha))
}

// BlendPosition is Blend over component positions
func BlendPosition(cur component.Position, prev *component.Position, alpha float32) component.Position {
	if prev == nil {
		return cur
	}
	p := prev.Vec()
	return component.PositionFromVec(Blend(cur.Vec(), &p, alpha))
}

// BlendScale is Blend over camera scales
func BlendScale(cur component.Scale, prev *component.Scale, alpha float32) component.Scale {
	if prev == nil {
		return cur
	}
	p := prev.Vec()
	return component.ScaleFromVec(Blend(cur.Vec(), &p, alpha))
}

// View is a camera resolved for one draw call
type View struct {
	Pos        mgl32.Vec2 // blended camera position
	Scale      mgl32.Vec2 // blended camera scale
	HalfExtent mgl32.Vec2 // half viewport, unscaled
}

// CameraView blends the camera position and scale at alpha
func CameraView(cam *component.CameraComponent, alpha float32) View {
	pos := BlendPosition(cam.CurPos, cam.PrevPos, alpha)
	scale := BlendScale(cam.CurScale, cam.PrevScale, alpha)
	return View{
		Pos:        pos.Vec(),
		Scale:      scale.Vec(),
		HalfExtent: mgl32.Vec2{cam.Width / 2, cam.Height / 2},
	}
}

// Offset is the screen-space shift: camera position times scale minus half viewport
func (v View) Offset() mgl32.Vec2 {
	return mgl32.Vec2{
		v.Pos.X()*v.Scale.X() - v.HalfExtent.X(),
		v.Pos.Y()*v.Scale.Y() - v.HalfExtent.Y(),
	}
}

// Project maps a blended world position to screen space
// The entity y term is negated (world up is positive, screen down is positive);
// the camera's own position is not flipped
func (v View) Project(pos, half mgl32.Vec2) mgl32.Vec2 {
	off := v.Offset()
	return mgl32.Vec2{
		(pos.X()-half.X())*v.Scale.X() - off.X(),
		(-pos.Y()-half.Y())*v.Scale.Y() - off.Y(),
	}
}

// ScreenScale returns the blended scale as a component value for drawers
func (v View) ScreenScale() component.Scale {
	return component.ScaleFromVec(v.Scale)
}
