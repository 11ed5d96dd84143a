package component

import "github.com/lixenwraith/drift/core"

// DirectionSet is a bitset over the four directions
type DirectionSet uint8

// DirectionsOf builds a set from the given directions
func DirectionsOf(dirs ...core.Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

func (s DirectionSet) Has(d core.Direction) bool {
	return s&(1<<d) != 0
}

func (s DirectionSet) Add(d core.Direction) DirectionSet {
	return s | 1<<d
}

func (s DirectionSet) Remove(d core.Direction) DirectionSet {
	return s &^ (1 << d)
}

func (s DirectionSet) Empty() bool {
	return s == 0
}

// Len returns the number of directions in the set
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range core.Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Each calls fn for every member in core.Directions order
func (s DirectionSet) Each(fn func(core.Direction)) {
	for _, d := range core.Directions {
		if s.Has(d) {
			fn(d)
		}
	}
}

// IntentComponent holds the directions an entity is currently commanded to move in
type IntentComponent struct {
	Dirs DirectionSet
}

// FacingComponent is the last commanded direction, independent of intent
type FacingComponent struct {
	Direction core.Direction
}

// PlayerComponent tags the player-controlled entity
type PlayerComponent struct{}
