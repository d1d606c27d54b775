package entity

import (
	"fmt"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

func (f *Factory) buildEnemy(prototype string, pos common.Vec3, yaw float64) (ecs.Entity, error) {
	spec, ok := f.catalog.Enemy(prototype)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("entity: enemy spec %q missing", prototype)
	}

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos, Yaw: yaw}
	c := component.Collider{Radius: spec.Radius, Layer: component.LayerEnemy}
	hp := component.Health{Current: spec.Health, Max: spec.Health}
	en := component.Enemy{
		State:       "idle",
		Script:      spec.Script,
		Kind:        prototype,
		MoveSpeed:   spec.MoveSpeed,
		AggroRange:  spec.AggroRange,
		AttackRange: spec.AttackRange,
		Damage:      spec.Damage,
	}
	st := component.Status{}
	pl := component.Pooled{Prototype: prototype}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.ColliderComponent.Kind(), &c)
	_ = ecs.Add(f.world, e, component.HealthComponent.Kind(), &hp)
	_ = ecs.Add(f.world, e, component.EnemyComponent.Kind(), &en)
	_ = ecs.Add(f.world, e, component.StatusComponent.Kind(), &st)
	_ = ecs.Add(f.world, e, component.PooledComponent.Kind(), &pl)
	return e, nil
}
