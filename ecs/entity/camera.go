package entity

import (
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// BuildCamera creates the follow camera locked onto a target entity.
func (f *Factory) BuildCamera(target ecs.Entity) ecs.Entity {
	if f == nil || f.world == nil || f.catalog == nil {
		return ecs.Entity{}
	}
	spec := f.catalog.Camera()

	e := f.world.CreateEntity()
	t := component.Transform{}
	cam := component.Camera{
		TargetID:   target.ID,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		LookAhead:  spec.LookAhead,
	}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.CameraComponent.Kind(), &cam)
	return e
}
