package component

// VFX is a pooled visual effect that despawns when its TTL expires.
type VFX struct {
	Kind string
}

var VFXComponent = New[VFX]()
