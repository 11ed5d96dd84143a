package input

import "fmt"

// LoadKeyConfig parses action → key-name bindings into a sparse override KeyTable
// Every configured action is returned in the replaced list so its default keys are dropped;
// an empty list leaves the action unbound
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, []Action, error) {
	kt := &KeyTable{Bindings: make(map[Key]Action)}
	var replaced []Action

	for actionName, keyNames := range bindings {
		action, err := ActionByName(actionName)
		if err != nil {
			return nil, nil, fmt.Errorf("keymap: %w", err)
		}

		replaced = append(replaced, action)

		for _, name := range keyNames {
			k, ok := KeyByName(name)
			if !ok {
				return nil, nil, fmt.Errorf("keymap [%s]: unknown key name: %q", actionName, name)
			}
			if prev, dup := kt.Bindings[k]; dup && prev != action {
				return nil, nil, fmt.Errorf("keymap [%s]: key %q already bound to %s", actionName, name, prev)
			}
			kt.Bindings[k] = action
		}
	}

	return kt, replaced, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Actions listed in cleared lose their base keys first; ActionNone entries delete the key
func MergeKeyTable(base, override *KeyTable, cleared ...Action) *KeyTable {
	result := base.Clone()

	for _, a := range cleared {
		for k, bound := range result.Bindings {
			if bound == a {
				delete(result.Bindings, k)
			}
		}
	}

	if override == nil {
		return result
	}
	for k, a := range override.Bindings {
		if a == ActionNone {
			delete(result.Bindings, k)
		} else {
			result.Bindings[k] = a
		}
	}
	return result
}
