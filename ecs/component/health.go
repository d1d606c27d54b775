package component

// Health is hit points for a damageable entity.
type Health struct {
	Current int
	Max     int
}

var HealthComponent = New[Health]()
