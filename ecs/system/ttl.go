package system

import (
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/pool"
)

// TTLSystem expires short-lived entities. Pooled instances go back to the
// pool, the rest are destroyed.
type TTLSystem struct {
	pool *pool.Pool[ecs.Entity]
}

func NewTTLSystem(p *pool.Pool[ecs.Entity]) *TTLSystem {
	return &TTLSystem{pool: p}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		ttl.Ticks--
		if ttl.Ticks > 0 {
			return
		}
		if s.pool != nil && ecs.Has(w, e, component.PooledComponent.Kind()) {
			s.pool.Release(e)
			return
		}
		w.DestroyEntity(e)
	})
}
