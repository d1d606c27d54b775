package entity

import (
	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// BuildPlayer creates the runner at the given position from player.yaml.
func (f *Factory) BuildPlayer(pos common.Vec3) ecs.Entity {
	if f == nil || f.world == nil || f.catalog == nil {
		return ecs.Entity{}
	}
	spec := f.catalog.Player()

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos}
	c := component.Collider{Radius: spec.Radius, Layer: component.LayerPlayer}
	hp := component.Health{Current: spec.Health, Max: spec.Health}
	p := component.Player{
		RunSpeed:      spec.RunSpeed,
		SteerSpeed:    spec.SteerSpeed,
		LaneHalfWidth: spec.LaneHalfWidth,
		JumpSpeed:     spec.JumpSpeed,
		FireInterval:  spec.FireInterval,
		Projectile:    spec.Projectile,
		AimRange:      spec.AimRange,
		Grounded:      true,
	}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.ColliderComponent.Kind(), &c)
	_ = ecs.Add(f.world, e, component.HealthComponent.Kind(), &hp)
	_ = ecs.Add(f.world, e, component.PlayerComponent.Kind(), &p)
	return e
}
