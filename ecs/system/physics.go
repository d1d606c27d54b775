package system

import (
	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// PhysicsSystem mirrors active colliders into the planar sensor space and
// steps it once per tick. Overlap events land on the world queue through the
// space's collision handlers.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, c *component.Collider) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		pw.EnsureBody(e, t, c)
		pw.SyncBody(e, t)
	})

	pw.Step(1.0 / common.TicksPerSecond)
}
