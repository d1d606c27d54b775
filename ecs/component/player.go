package component

// Player is the runner controller state.
type Player struct {
	RunSpeed   float64
	SteerSpeed float64
	// LaneHalfWidth clamps lateral position to the bridge surface.
	LaneHalfWidth float64
	JumpSpeed     float64

	VerticalVel float64
	Grounded    bool

	FireInterval int
	FireCooldown int

	// Projectile is the pool key fired by the auto-attack; AimRange bounds
	// target acquisition.
	Projectile string
	AimRange   float64

	Coins  int
	IFrame int
}

var PlayerComponent = New[Player]()
