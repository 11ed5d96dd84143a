package component

import "github.com/go-gl/mathgl/mgl32"

// Position is a plain 2D world point, copied by value
type Position struct {
	X, Y float32
}

// Vec converts to an mgl32 vector for interpolation math
func (p Position) Vec() mgl32.Vec2 {
	return mgl32.Vec2{p.X, p.Y}
}

// PositionFromVec converts an mgl32 vector back to a Position
func PositionFromVec(v mgl32.Vec2) Position {
	return Position{X: v.X(), Y: v.Y()}
}

// Ptr returns a pointer to a copy of p, used to arm PrevPos slots
func (p Position) Ptr() *Position {
	return &p
}

// Scale is a per-axis world to screen multiplier
type Scale struct {
	X, Y float32
}

// UnitScale is the identity scale
var UnitScale = Scale{X: 1, Y: 1}

func (s Scale) Vec() mgl32.Vec2 {
	return mgl32.Vec2{s.X, s.Y}
}

func ScaleFromVec(v mgl32.Vec2) Scale {
	return Scale{X: v.X(), Y: v.Y()}
}

// SizeComponent is the axis-aligned extent used to center a drawable on its position
type SizeComponent struct {
	Width, Height float32
}

// Half returns the half extent as a vector
func (s SizeComponent) Half() mgl32.Vec2 {
	return mgl32.Vec2{s.Width / 2, s.Height / 2}
}
