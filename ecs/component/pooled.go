package component

// Pooled marks an instance as owned by the entity pool and records the
// prototype it was cloned from, for release routing.
type Pooled struct {
	Prototype string
}

var PooledComponent = New[Pooled]()
