package entity

import (
	"fmt"
	"math"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

func (f *Factory) buildProjectile(prototype string, pos common.Vec3, yaw float64) (ecs.Entity, error) {
	spec, ok := f.catalog.Projectile(prototype)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("entity: projectile spec %q missing", prototype)
	}

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos, Yaw: yaw}
	c := component.Collider{Radius: spec.Radius, Layer: component.LayerProjectile}
	p := component.Projectile{
		LifeTicks: spec.LifeTicks,
		Damage:    spec.Damage,
		Effect:    component.EffectKind(spec.Effect),
	}
	pl := component.Pooled{Prototype: prototype}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.ColliderComponent.Kind(), &c)
	_ = ecs.Add(f.world, e, component.ProjectileComponent.Kind(), &p)
	_ = ecs.Add(f.world, e, component.PooledComponent.Kind(), &pl)
	return e, nil
}

// Launch aims an acquired projectile along its heading at the prototype's
// speed. Called after pool.Acquire, once the transform yaw is final.
func (f *Factory) Launch(h ecs.Entity) {
	if f == nil || f.world == nil {
		return
	}
	pooled, ok := ecs.Get(f.world, h, component.PooledComponent.Kind())
	if !ok {
		return
	}
	spec, ok := f.catalog.Projectile(pooled.Prototype)
	if !ok {
		return
	}
	t, ok := ecs.Get(f.world, h, component.TransformComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(f.world, h, component.ProjectileComponent.Kind())
	if !ok {
		return
	}

	rad := t.Yaw * math.Pi / 180
	p.Vel = common.Vec3{X: math.Sin(rad) * spec.Speed, Z: math.Cos(rad) * spec.Speed}
	p.LifeTicks = spec.LifeTicks
}
