package system

import (
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/pool"
)

// ProjectileSystem integrates projectile flight and expires shots back into
// the pool.
type ProjectileSystem struct {
	pool *pool.Pool[ecs.Entity]
}

func NewProjectileSystem(p *pool.Pool[ecs.Entity]) *ProjectileSystem {
	return &ProjectileSystem{pool: p}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Pos = t.Pos.Add(p.Vel)
		}
		p.LifeTicks--
		if p.LifeTicks > 0 {
			return
		}
		if s.pool != nil {
			s.pool.Release(e)
			return
		}
		w.DestroyEntity(e)
	})
}
