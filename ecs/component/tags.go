package component

// Disabled marks an entity as inactive. Systems skip disabled entities; the
// pool attaches this while an instance is parked.
type Disabled struct{}

var DisabledComponent = New[Disabled]()
