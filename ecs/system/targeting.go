package system

import (
	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/targeting"
)

// TargetingSystem keeps the nearest-target registry in step with enemy
// lifecycle: live enemies are registered, parked ones are pulled out.
type TargetingSystem struct {
	registry *targeting.Registry
	tracked  map[ecs.Entity]*worldTarget
}

func NewTargetingSystem(r *targeting.Registry) *TargetingSystem {
	return &TargetingSystem{
		registry: r,
		tracked:  make(map[ecs.Entity]*worldTarget),
	}
}

func (s *TargetingSystem) Update(w *ecs.World) {
	if s == nil || s.registry == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy) {
		if active(w, e) {
			if _, ok := s.tracked[e]; !ok {
				t := &worldTarget{world: w, entity: e}
				s.tracked[e] = t
				s.registry.Register(t)
			}
			return
		}
		if t, ok := s.tracked[e]; ok {
			s.registry.Unregister(t)
			delete(s.tracked, e)
		}
	})

	for e, t := range s.tracked {
		if !w.IsAlive(e) {
			s.registry.Unregister(t)
			delete(s.tracked, e)
		}
	}
}

// worldTarget adapts an ECS entity to the registry's Target interface.
type worldTarget struct {
	world  *ecs.World
	entity ecs.Entity
}

func (t *worldTarget) Alive() bool {
	if t == nil || t.world == nil {
		return false
	}
	if !active(t.world, t.entity) {
		return false
	}
	if hp, ok := ecs.Get(t.world, t.entity, component.HealthComponent.Kind()); ok && hp.Current <= 0 {
		return false
	}
	return true
}

func (t *worldTarget) Position() common.Vec3 {
	if t == nil || t.world == nil {
		return common.Vec3{}
	}
	if tr, ok := ecs.Get(t.world, t.entity, component.TransformComponent.Kind()); ok {
		return tr.Pos
	}
	return common.Vec3{}
}
