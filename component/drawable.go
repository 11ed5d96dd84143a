package component

import "github.com/gdamore/tcell/v2"

// Mesh is a filled rectangle drawable
type Mesh struct {
	Width, Height float32
	Color         tcell.Color
}

// Sprite is a rune-art drawable, one string per row
// Space runes are transparent
type Sprite struct {
	Rows  []string
	Color tcell.Color
}

// Size returns the sprite extent in cells
func (s Sprite) Size() (w, h int) {
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(s.Rows)
}
