package render

import "github.com/lixenwraith/drift/component"

// Drawer is the rasterizing collaborator for one drawable kind
// dest is in screen units; a non-nil error aborts the frame
type Drawer[D any] interface {
	Draw(d D, dest component.Position, scale component.Scale, param *component.DrawParam) error
}

// DrawerFunc adapts a function to Drawer
type DrawerFunc[D any] func(d D, dest component.Position, scale component.Scale, param *component.DrawParam) error

func (f DrawerFunc[D]) Draw(d D, dest component.Position, scale component.Scale, param *component.DrawParam) error {
	return f(d, dest, scale, param)
}
