// Package terminal hosts the simulation in a tcell screen.
//
// Terminals report key presses and auto-repeats but never releases, so held
// keys are inferred: a key stays held for a hold window after its last event,
// shortened to the repeat window once auto-repeat has been observed.
// Cells map to world units through a configurable cell size.
package terminal
