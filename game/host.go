package game

import "github.com/lixenwraith/drift/input"

// Host is the windowing collaborator that drives the game
// CheckUpdateTime consumes one fixed step from the host's accumulator per true result
type Host interface {
	PressedKeys() input.KeySet
	CheckUpdateTime(tps int) bool
	InterpolationAlpha(tps int) float64
}
