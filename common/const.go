package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

const (
	// Gravity applied to airborne entities, world units per tick squared.
	Gravity = 0.12

	// TicksPerSecond is the fixed update rate of the driver loop.
	TicksPerSecond = 60
)
