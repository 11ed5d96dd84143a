package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DesiredTPS is the fixed simulation rate in steps per second
	DesiredTPS = 73

	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after its last press or repeat event
	// Terminals report no key releases; the window must exceed the OS auto-repeat delay
	KeyHoldWindow = 550 * time.Millisecond

	// KeyRepeatWindow is the shorter hold window applied once auto-repeat is observed
	KeyRepeatWindow = 120 * time.Millisecond
)
