package component

// CameraComponent is a viewport entity with interpolated position and zoom
// Width and Height are the viewport in world units before scaling
type CameraComponent struct {
	CurPos    Position
	PrevPos   *Position
	Width     float32
	Height    float32
	CurScale  Scale
	PrevScale *Scale
}

// NewCamera creates a camera at pos with a uniform scale
func NewCamera(pos Position, width, height, scale float32) CameraComponent {
	return CameraComponent{
		CurPos:   pos,
		Width:    width,
		Height:   height,
		CurScale: Scale{X: scale, Y: scale},
	}
}

// Reset snaps the camera to the origin at unit scale with no interpolation
func (c *CameraComponent) Reset() {
	c.CurPos = Position{}
	c.CurScale = UnitScale
	c.PrevPos = nil
	c.PrevScale = nil
}
