package input

import "sort"

// KeySet is the set of keys currently held
type KeySet map[Key]struct{}

// NewKeySet builds a set from keys
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Add(k Key) {
	s[k] = struct{}{}
}

func (s KeySet) Remove(k Key) {
	delete(s, k)
}

// Clone returns an independent copy
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Minus returns keys in s that are not in other
func (s KeySet) Minus(other KeySet) KeySet {
	out := make(KeySet)
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Sorted returns members in ascending key order for deterministic iteration
func (s KeySet) Sorted() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
