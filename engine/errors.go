package engine

import "errors"

// ErrDeadEntity signals a store consistency violation: a component was written
// for an entity that was never created or has been destroyed
var ErrDeadEntity = errors.New("entity is not alive")
