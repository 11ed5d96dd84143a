package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/status"
)

// HUD prints the metric registry in the top-left corner
type HUD struct {
	screen   tcell.Screen
	registry *status.Registry
	style    tcell.Style
	visible  bool
}

func NewHUD(screen tcell.Screen, registry *status.Registry, visible bool) *HUD {
	return &HUD{
		screen:   screen,
		registry: registry,
		style:    tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
		visible:  visible,
	}
}

// Toggle flips HUD visibility
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

func (h *HUD) IsVisible() bool {
	return h.visible
}

func (h *HUD) Render(float64) error {
	w, hgt := h.screen.Size()
	for y, line := range h.registry.Lines() {
		if y >= hgt {
			break
		}
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			h.screen.SetContent(x, y, r, nil, h.style)
			x++
		}
	}
	return nil
}
