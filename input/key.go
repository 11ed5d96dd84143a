package input

import (
	"strings"
	"unicode"
)

// Key identifies a physical key as reported by the host
// Values below 0x80 are lowercase printable ASCII runes; named keys start at 0x100
type Key uint16

const KeyNone Key = 0

// Named keys
const (
	KeyEscape Key = 0x100 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
	KeyCtrlQ
)

// keyToName maps named keys to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyCtrlC:     "ctrl_c",
	KeyCtrlQ:     "ctrl_q",
}

var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, name := range keyToName {
		nameToKey[name] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["plus"] = RuneKey('+')
	nameToKey["minus"] = RuneKey('-')
	nameToKey["equals"] = RuneKey('=')
}

// RuneKey converts a printable ASCII rune to a Key, case-folded
// Returns KeyNone for anything else
func RuneKey(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	if r <= 0x20 || r >= 0x7f {
		return KeyNone
	}
	return Key(unicode.ToLower(r))
}

// IsRune reports whether the key is a printable ASCII key
func (k Key) IsRune() bool {
	return k > 0x20 && k < 0x7f
}

// String returns the canonical config name of the key
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k.IsRune() {
		return string(rune(k))
	}
	return "none"
}

// KeyByName resolves a config key name or single character
func KeyByName(name string) (Key, bool) {
	name = strings.TrimSpace(name)
	if k, ok := nameToKey[strings.ToLower(name)]; ok {
		return k, true
	}
	runes := []rune(name)
	if len(runes) == 1 {
		if k := RuneKey(runes[0]); k != KeyNone {
			return k, true
		}
	}
	return KeyNone, false
}
