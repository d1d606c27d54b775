package entity

import (
	"fmt"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

func (f *Factory) buildVFX(prototype string, pos common.Vec3) (ecs.Entity, error) {
	spec, ok := f.catalog.VFX(prototype)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("entity: vfx spec %q missing", prototype)
	}

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos}
	v := component.VFX{Kind: prototype}
	ttl := component.TTL{Ticks: spec.TTLTicks}
	pl := component.Pooled{Prototype: prototype}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.VFXComponent.Kind(), &v)
	_ = ecs.Add(f.world, e, component.TTLComponent.Kind(), &ttl)
	_ = ecs.Add(f.world, e, component.PooledComponent.Kind(), &pl)
	return e, nil
}
