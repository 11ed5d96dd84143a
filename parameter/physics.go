package parameter

// Motion
const (
	// StepDistance is the fixed displacement per simulation step, in world units
	// Applied per axis and not normalized, so diagonal movement is faster
	StepDistance float32 = 2.5
)
