package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/drift/core"
)

// Action is a semantic command bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota
	ActionPlayerLeft
	ActionPlayerRight
	ActionCameraLeft
	ActionCameraRight
	ActionCameraUp
	ActionCameraDown
	ActionCameraReset
	ActionZoomIn
	ActionZoomOut
	ActionToggleHUD
	ActionQuit

	actionCount
)

// actionNames maps canonical action names used by the keymap config
var actionNames = map[string]Action{
	"none":         ActionNone,
	"player_left":  ActionPlayerLeft,
	"player_right": ActionPlayerRight,
	"camera_left":  ActionCameraLeft,
	"camera_right": ActionCameraRight,
	"camera_up":    ActionCameraUp,
	"camera_down":  ActionCameraDown,
	"camera_reset": ActionCameraReset,
	"zoom_in":      ActionZoomIn,
	"zoom_out":     ActionZoomOut,
	"toggle_hud":   ActionToggleHUD,
	"quit":         ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// ActionNames returns all canonical action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for n, v := range actionNames {
		if v == a {
			return n
		}
	}
	return "unknown"
}

// Direction returns the movement direction an action commands, false for non-movement actions
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionPlayerRight, ActionCameraRight:
		return core.DirRight, true
	case ActionPlayerLeft, ActionCameraLeft:
		return core.DirLeft, true
	case ActionCameraUp:
		return core.DirUp, true
	case ActionCameraDown:
		return core.DirDown, true
	}
	return core.DirRight, false
}

// ActionSet is a bitset of actions
type ActionSet uint16

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Minus returns actions in s not present in other
func (s ActionSet) Minus(other ActionSet) ActionSet {
	return s &^ other
}

func (s ActionSet) Empty() bool {
	return s == 0
}
