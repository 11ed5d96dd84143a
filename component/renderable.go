package component

// RenderableComponent owns a drawable handle and the entity's world position
// PrevPos is non-nil only while the entity is moving across a step boundary
type RenderableComponent[D any] struct {
	Drawable D
	CurPos   Position
	PrevPos  *Position
	Param    *DrawParam
}

// Moving reports whether the renderable is interpolating between two snapshots
func (r *RenderableComponent[D]) Moving() bool {
	return r.PrevPos != nil
}

// Rect is a source crop rectangle in drawable-local units
type Rect struct {
	X, Y, W, H float32
}

// DrawParam carries optional per-draw parameters forwarded to the drawer
type DrawParam struct {
	Crop *Rect
}
