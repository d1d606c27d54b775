package component

// EffectKind identifies a status effect applied on hit.
type EffectKind string

const (
	EffectNone  EffectKind = ""
	EffectBurn  EffectKind = "burn"
	EffectChill EffectKind = "chill"
)

// Status holds active status-effect timers, all in update ticks.
type Status struct {
	// Burn deals BurnDamage every BurnInterval ticks while BurnTicks > 0.
	BurnTicks     int
	BurnInterval  int
	BurnCountdown int
	BurnDamage    int

	// Chill multiplies movement speed by ChillFactor while ChillTicks > 0.
	ChillTicks  int
	ChillFactor float64
}

var StatusComponent = New[Status]()
