package parameter

// System run order inside one simulation step, lower runs first
const (
	PriorityIntent       = 10
	PriorityMotion       = 20
	PriorityCameraMotion = 30
	PriorityStop         = 40
)

// Draw order per drawable kind, lower draws first
const (
	RenderPriorityMesh   = 100
	RenderPrioritySprite = 200
	RenderPriorityHUD    = 400
)
