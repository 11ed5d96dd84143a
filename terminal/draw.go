package terminal

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/component"
)

// ErrInvalidScale is returned by drawers for a non-positive camera scale
var ErrInvalidScale = errors.New("invalid draw scale")

// cellRect is a half-open cell range [x0,x1) x [y0,y1)
type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) empty() bool {
	return r.x0 >= r.x1 || r.y0 >= r.y1
}

func (r cellRect) clip(w, h int) cellRect {
	return cellRect{
		x0: max(r.x0, 0),
		y0: max(r.y0, 0),
		x1: min(r.x1, w),
		y1: min(r.y1, h),
	}
}

// toCells maps a screen-space world rectangle onto the cells it covers
func toCells(x, y, w, h float32, cell component.SizeComponent) cellRect {
	return cellRect{
		x0: int(math.Floor(float64(x / cell.Width))),
		y0: int(math.Floor(float64(y / cell.Height))),
		x1: int(math.Ceil(float64((x + w) / cell.Width))),
		y1: int(math.Ceil(float64((y + h) / cell.Height))),
	}
}

func checkScale(scale component.Scale) error {
	if scale.X <= 0 || scale.Y <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScale, scale.X, scale.Y)
	}
	return nil
}

// MeshDrawer fills the cells covered by a mesh rectangle with its color
type MeshDrawer struct {
	screen tcell.Screen
	cell   component.SizeComponent
}

func NewMeshDrawer(screen tcell.Screen, cell component.SizeComponent) *MeshDrawer {
	return &MeshDrawer{screen: screen, cell: cell}
}

// Draw fills the scaled mesh at dest, the mesh's top-left corner in screen units
// A crop selects a sub-rectangle in mesh-local units
func (d *MeshDrawer) Draw(m component.Mesh, dest component.Position, scale component.Scale, param *component.DrawParam) error {
	if err := checkScale(scale); err != nil {
		return err
	}

	x, y := dest.X, dest.Y
	w, h := m.Width, m.Height
	if param != nil && param.Crop != nil {
		c := param.Crop
		x += c.X * scale.X
		y += c.Y * scale.Y
		w = min(c.W, m.Width-c.X)
		h = min(c.H, m.Height-c.Y)
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	sw, sh := d.screen.Size()
	r := toCells(x, y, w*scale.X, h*scale.Y, d.cell).clip(sw, sh)
	if r.empty() {
		return nil
	}

	style := tcell.StyleDefault.Background(m.Color)
	for cy := r.y0; cy < r.y1; cy++ {
		for cx := r.x0; cx < r.x1; cx++ {
			d.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
	return nil
}

// SpriteDrawer writes sprite runes one per cell
// Glyphs cannot scale, so scale moves the sprite but never resizes it
type SpriteDrawer struct {
	screen tcell.Screen
	cell   component.SizeComponent
}

func NewSpriteDrawer(screen tcell.Screen, cell component.SizeComponent) *SpriteDrawer {
	return &SpriteDrawer{screen: screen, cell: cell}
}

// Draw writes the sprite with its top-left cell at dest
// Spaces are transparent; a crop selects rows and columns in cell units
func (d *SpriteDrawer) Draw(s component.Sprite, dest component.Position, scale component.Scale, param *component.DrawParam) error {
	if err := checkScale(scale); err != nil {
		return err
	}

	cols, rows := s.Size()
	src := cellRect{x1: cols, y1: rows}
	if param != nil && param.Crop != nil {
		c := param.Crop
		src = cellRect{
			x0: int(c.X),
			y0: int(c.Y),
			x1: int(c.X + c.W),
			y1: int(c.Y + c.H),
		}.clip(cols, rows)
	}
	if src.empty() {
		return nil
	}

	origin := toCells(dest.X, dest.Y, 0, 0, d.cell)
	sw, sh := d.screen.Size()
	style := tcell.StyleDefault.Foreground(s.Color)

	for row := src.y0; row < src.y1; row++ {
		line := []rune(s.Rows[row])
		cy := origin.y0 + row - src.y0
		if cy < 0 || cy >= sh {
			continue
		}
		for col := src.x0; col < src.x1 && col < len(line); col++ {
			cx := origin.x0 + col - src.x0
			if cx < 0 || cx >= sw || line[col] == ' ' {
				continue
			}
			d.screen.SetContent(cx, cy, line[col], nil, style)
		}
	}
	return nil
}
