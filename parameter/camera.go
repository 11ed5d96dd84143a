package parameter

// Camera zoom configuration
const (
	// ZoomFactor is the multiplicative zoom applied per step while a zoom key is held
	ZoomFactor float32 = 1.01

	// ZoomMin and ZoomMax clamp the uniform camera scale
	ZoomMin float32 = 0.25
	ZoomMax float32 = 2.5
)
