package component

// CollisionLayer selects the trigger-space collision type for an entity.
type CollisionLayer int

const (
	LayerPlayer CollisionLayer = iota
	LayerEnemy
	LayerProjectile
	LayerCoin
	LayerHazard
)

// Collider is a planar circle sensor on the ground plane.
type Collider struct {
	Radius float64
	Layer  CollisionLayer
}

var ColliderComponent = New[Collider]()
