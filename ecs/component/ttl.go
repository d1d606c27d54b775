package component

// TTL destroys or releases an entity after the given number of update ticks.
type TTL struct {
	Ticks int
}

var TTLComponent = New[TTL]()
