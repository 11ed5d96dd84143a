package input

// KeyTable maps keys to actions
// Several keys may share an action; a key has at most one action
type KeyTable struct {
	Bindings map[Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Bindings: map[Key]Action{
			KeyLeft:  ActionPlayerLeft,
			KeyRight: ActionPlayerRight,

			RuneKey('a'): ActionCameraLeft,
			RuneKey('d'): ActionCameraRight,
			RuneKey('w'): ActionCameraUp,
			RuneKey('s'): ActionCameraDown,
			RuneKey('0'): ActionCameraReset,

			RuneKey('='): ActionZoomIn,
			RuneKey('+'): ActionZoomIn,
			RuneKey('-'): ActionZoomOut,

			KeyTab: ActionToggleHUD,

			KeyEscape:    ActionQuit,
			KeyCtrlC:     ActionQuit,
			KeyCtrlQ:     ActionQuit,
			RuneKey('q'): ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{Bindings: make(map[Key]Action, len(kt.Bindings))}
	for k, a := range kt.Bindings {
		c.Bindings[k] = a
	}
	return c
}

// Lookup returns the action bound to k
func (kt *KeyTable) Lookup(k Key) (Action, bool) {
	a, ok := kt.Bindings[k]
	return a, ok && a != ActionNone
}

// Actions folds a held-key snapshot into the set of held actions
func (kt *KeyTable) Actions(held KeySet) ActionSet {
	var set ActionSet
	for k := range held {
		if a, ok := kt.Lookup(k); ok {
			set = set.With(a)
		}
	}
	return set
}

// KeysFor returns the keys bound to a, sorted
func (kt *KeyTable) KeysFor(a Action) []Key {
	held := make(KeySet)
	for k, bound := range kt.Bindings {
		if bound == a {
			held.Add(k)
		}
	}
	return held.Sorted()
}
