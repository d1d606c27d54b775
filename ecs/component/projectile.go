package component

import "github.com/emberworks/pathofember/common"

// Projectile is a pooled ember shot in straight flight.
type Projectile struct {
	Vel       common.Vec3
	LifeTicks int
	Damage    int
	Effect    EffectKind
	Owner     string
}

var ProjectileComponent = New[Projectile]()
