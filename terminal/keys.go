package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/input"
)

// namedKeys maps tcell special keys to input keys
var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyCtrlC:      input.KeyCtrlC,
	tcell.KeyCtrlQ:      input.KeyCtrlQ,
}

// KeyFromEvent converts a tcell key event, KeyNone if unmapped
func KeyFromEvent(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		// Some terminals report control chords as a rune plus ModCtrl
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch ev.Rune() {
			case 'c', 'C':
				return input.KeyCtrlC
			case 'q', 'Q':
				return input.KeyCtrlQ
			}
		}
		return input.RuneKey(ev.Rune())
	}
	if k, ok := namedKeys[ev.Key()]; ok {
		return k
	}
	return input.KeyNone
}
