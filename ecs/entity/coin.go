package entity

import (
	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

func (f *Factory) buildCoin(pos common.Vec3) (ecs.Entity, error) {
	spec := f.catalog.Coin()

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos}
	c := component.Collider{Radius: spec.Radius, Layer: component.LayerCoin}
	coin := component.Coin{Value: spec.Value}
	ttl := component.TTL{Ticks: spec.TTLTicks}
	pl := component.Pooled{Prototype: f.catalog.CoinName()}

	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.ColliderComponent.Kind(), &c)
	_ = ecs.Add(f.world, e, component.CoinComponent.Kind(), &coin)
	_ = ecs.Add(f.world, e, component.TTLComponent.Kind(), &ttl)
	_ = ecs.Add(f.world, e, component.PooledComponent.Kind(), &pl)
	return e, nil
}
