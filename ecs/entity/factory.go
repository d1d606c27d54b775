// Package entity builds game entities from prefab specs. Factory is the
// host-side spawn boundary: the pool and the chunk stream drive it through
// their Spawner interfaces.
package entity

import (
	"fmt"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/prefabs"
)

// Factory clones prototypes into live entities and tears them down. It
// implements pool.Spawner[ecs.Entity] and stream.ChunkSpawner[ecs.Entity].
type Factory struct {
	world   *ecs.World
	catalog *prefabs.Catalog
	pool    *pool.Pool[ecs.Entity]

	// chunkChildren tracks content spawned into each chunk so despawn can
	// release or destroy it with the chunk. childOwner is the reverse map.
	chunkChildren map[ecs.Entity][]ecs.Entity
	childOwner    map[ecs.Entity]ecs.Entity
}

func NewFactory(w *ecs.World, catalog *prefabs.Catalog) *Factory {
	return &Factory{
		world:         w,
		catalog:       catalog,
		chunkChildren: make(map[ecs.Entity][]ecs.Entity),
		childOwner:    make(map[ecs.Entity]ecs.Entity),
	}
}

// SetPool wires the entity pool in after construction; the pool itself is
// built around this factory.
func (f *Factory) SetPool(p *pool.Pool[ecs.Entity]) {
	if f == nil {
		return
	}
	f.pool = p
}

// SetCatalog swaps the prototype catalog, used by spec hot reload. Already
// built entities keep their old tuning; new clones pick up the new specs.
func (f *Factory) SetCatalog(c *prefabs.Catalog) {
	if f == nil || c == nil {
		return
	}
	f.catalog = c
}

// Catalog returns the active prototype catalog.
func (f *Factory) Catalog() *prefabs.Catalog {
	if f == nil {
		return nil
	}
	return f.catalog
}

// Clone builds a fresh instance of a pooled prototype.
func (f *Factory) Clone(prototype string, pos common.Vec3, yaw float64) (ecs.Entity, error) {
	if f == nil || f.world == nil || f.catalog == nil {
		return ecs.Entity{}, fmt.Errorf("entity: factory not initialized")
	}
	switch f.catalog.Kind(prototype) {
	case prefabs.KindEnemy:
		return f.buildEnemy(prototype, pos, yaw)
	case prefabs.KindProjectile:
		return f.buildProjectile(prototype, pos, yaw)
	case prefabs.KindCoin:
		return f.buildCoin(pos)
	case prefabs.KindVFX:
		return f.buildVFX(prototype, pos)
	}
	return ecs.Entity{}, fmt.Errorf("entity: unknown prototype %q", prototype)
}

// Destroy removes an instance from the world outright.
func (f *Factory) Destroy(h ecs.Entity) {
	if f == nil || f.world == nil {
		return
	}
	f.world.DestroyEntity(h)
}

// SetActive parks or revives an instance. Deactivation detaches the planar
// sensor body so parked instances never trigger overlaps; activation resets
// the prototype's volatile state so a reused instance starts fresh.
func (f *Factory) SetActive(h ecs.Entity, active bool) {
	if f == nil || f.world == nil || !f.world.IsAlive(h) {
		return
	}
	if !active {
		var d component.Disabled
		_ = ecs.Add(f.world, h, component.DisabledComponent.Kind(), &d)
		if pw := f.world.PhysicsWorld(); pw != nil {
			pw.RemoveBody(h)
		}
		return
	}
	ecs.Remove(f.world, h, component.DisabledComponent.Kind())
	f.resetVolatile(h)
}

// Place moves an instance to a new position and heading.
func (f *Factory) Place(h ecs.Entity, pos common.Vec3, yaw float64) {
	if f == nil || f.world == nil {
		return
	}
	if t, ok := ecs.Get(f.world, h, component.TransformComponent.Kind()); ok {
		t.Pos = pos
		t.Yaw = yaw
		if pw := f.world.PhysicsWorld(); pw != nil {
			pw.SyncBody(h, t)
		}
	}
}

// resetVolatile restores per-prototype runtime state on reuse: projectile
// lifetime, enemy health and brain, coin TTL, VFX TTL.
func (f *Factory) resetVolatile(h ecs.Entity) {
	pooled, ok := ecs.Get(f.world, h, component.PooledComponent.Kind())
	if !ok {
		return
	}

	switch f.catalog.Kind(pooled.Prototype) {
	case prefabs.KindProjectile:
		if spec, ok := f.catalog.Projectile(pooled.Prototype); ok {
			if p, ok := ecs.Get(f.world, h, component.ProjectileComponent.Kind()); ok {
				p.LifeTicks = spec.LifeTicks
			}
		}
	case prefabs.KindEnemy:
		if spec, ok := f.catalog.Enemy(pooled.Prototype); ok {
			if hp, ok := ecs.Get(f.world, h, component.HealthComponent.Kind()); ok {
				hp.Current = spec.Health
				hp.Max = spec.Health
			}
			if en, ok := ecs.Get(f.world, h, component.EnemyComponent.Kind()); ok {
				en.State = "idle"
				en.AttackTicks = 0
				en.Cooldown = 0
			}
			if st, ok := ecs.Get(f.world, h, component.StatusComponent.Kind()); ok {
				*st = component.Status{}
			}
		}
	case prefabs.KindCoin:
		if t, ok := ecs.Get(f.world, h, component.TTLComponent.Kind()); ok {
			t.Ticks = f.catalog.Coin().TTLTicks
		}
	case prefabs.KindVFX:
		if spec, ok := f.catalog.VFX(pooled.Prototype); ok {
			if t, ok := ecs.Get(f.world, h, component.TTLComponent.Kind()); ok {
				t.Ticks = spec.TTLTicks
			}
		}
	}
}

// World returns the backing ECS world.
func (f *Factory) World() *ecs.World {
	if f == nil {
		return nil
	}
	return f.world
}
