package component

// StateID names an AI state within a scripted state machine.
type StateID string

// Enemy is the AI brain state for a combat entity.
type Enemy struct {
	State  StateID
	Script string
	Kind   string
	Biome  string

	MoveSpeed   float64
	AggroRange  float64
	AttackRange float64

	// AttackTicks counts down an in-progress attack; Cooldown gates the next.
	AttackTicks int
	Cooldown    int
	Damage      int
}

var EnemyComponent = New[Enemy]()
