package entity

import (
	"fmt"
	"log"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// SpawnChunk materializes a chunk root at its computed origin. Hazards are
// static and spawn with the root; enemies and coins are populated later by
// the chunk setup system, after SetupTicks elapse, so heavy content work is
// spread past the spawn tick.
func (f *Factory) SpawnChunk(prototype string, index int, pos common.Vec3) (ecs.Entity, error) {
	if f == nil || f.world == nil || f.catalog == nil {
		return ecs.Entity{}, fmt.Errorf("entity: factory not initialized")
	}
	spec, ok := f.catalog.Chunk(prototype)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("entity: chunk spec %q missing", prototype)
	}

	e := f.world.CreateEntity()
	t := component.Transform{Pos: pos, Yaw: spec.Yaw}
	ref := component.ChunkRef{
		Index:      index,
		Prototype:  prototype,
		SetupTicks: f.catalog.Game().Chunk.SetupTicks,
	}
	_ = ecs.Add(f.world, e, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(f.world, e, component.ChunkRefComponent.Kind(), &ref)

	for _, h := range spec.Hazards {
		hz := f.world.CreateEntity()
		ht := component.Transform{Pos: pos.Add(common.Vec3{X: h.X, Z: h.Z})}
		hc := component.Collider{Radius: h.Radius, Layer: component.LayerHazard}
		_ = ecs.Add(f.world, hz, component.TransformComponent.Kind(), &ht)
		_ = ecs.Add(f.world, hz, component.ColliderComponent.Kind(), &hc)
		f.adopt(e, hz)
	}
	return e, nil
}

// enemySpawnYaw faces spawned enemies back down the bridge, toward the
// oncoming runner.
const enemySpawnYaw = 180

// PopulateChunk spawns the chunk's deferred content (enemies and coins) from
// the pool. Called once by the chunk setup system when SetupTicks reach zero;
// a chunk despawned before that simply never populates.
func (f *Factory) PopulateChunk(chunk ecs.Entity, ref *component.ChunkRef) {
	if f == nil || f.world == nil || ref == nil || ref.SetupDone {
		return
	}
	spec, ok := f.catalog.Chunk(ref.Prototype)
	if !ok {
		return
	}
	origin, ok := ecs.Get(f.world, chunk, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if f.pool == nil {
		log.Printf("entity: no pool wired, chunk %d content skipped", ref.Index)
		ref.SetupDone = true
		return
	}

	for _, en := range spec.Enemies {
		h, ok := f.pool.Acquire(en.Prototype, origin.Pos.Add(common.Vec3{X: en.X, Z: en.Z}), enemySpawnYaw)
		if ok {
			f.adopt(chunk, h)
		}
	}
	coinProto := f.catalog.CoinName()
	for _, c := range spec.Coins {
		h, ok := f.pool.Acquire(coinProto, origin.Pos.Add(common.Vec3{X: c.X, Z: c.Z}), 0)
		if ok {
			f.adopt(chunk, h)
		}
	}
	ref.SetupDone = true
}

// DespawnChunk tears a chunk down: pooled content goes back to the pool,
// everything else (root, hazards) is destroyed outright.
func (f *Factory) DespawnChunk(h ecs.Entity) {
	if f == nil || f.world == nil {
		return
	}
	for _, child := range f.chunkChildren[h] {
		delete(f.childOwner, child)
		if !f.world.IsAlive(child) {
			continue
		}
		if f.pool != nil && ecs.Has(f.world, child, component.PooledComponent.Kind()) {
			f.pool.Release(child)
			continue
		}
		f.world.DestroyEntity(child)
	}
	delete(f.chunkChildren, h)
	f.world.DestroyEntity(h)
}

// Disown drops a child from its chunk's teardown list, for content that left
// the chunk's ownership (collected coins, dead enemies).
func (f *Factory) Disown(chunk ecs.Entity, child ecs.Entity) {
	if f == nil {
		return
	}
	if f.childOwner[child] == chunk {
		delete(f.childOwner, child)
	}
	kids := f.chunkChildren[chunk]
	for i, k := range kids {
		if k == child {
			kids[i] = kids[len(kids)-1]
			f.chunkChildren[chunk] = kids[:len(kids)-1]
			return
		}
	}
}

// Orphan detaches a child from whichever chunk owns it, if any.
func (f *Factory) Orphan(child ecs.Entity) {
	if f == nil {
		return
	}
	if owner, ok := f.childOwner[child]; ok {
		f.Disown(owner, child)
	}
}

// adopt records chunk ownership of spawned content. A pooled instance
// reacquired by a later chunk is disowned from its previous one first, so
// only the current owner's despawn can reclaim it.
func (f *Factory) adopt(chunk ecs.Entity, child ecs.Entity) {
	if prev, ok := f.childOwner[child]; ok && prev != chunk {
		f.Disown(prev, child)
	}
	f.childOwner[child] = chunk
	f.chunkChildren[chunk] = append(f.chunkChildren[chunk], child)
}
