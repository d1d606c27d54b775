package component

// ChunkRef ties a chunk root entity to its index in the streamed sequence.
type ChunkRef struct {
	Index     int
	Prototype string

	// SetupTicks counts down deferred population of chunk contents. A chunk
	// despawned mid-setup simply drops the remaining work with the entity.
	SetupTicks int
	SetupDone  bool
}

var ChunkRefComponent = New[ChunkRef]()
