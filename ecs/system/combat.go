package system

import (
	"log"
	"math"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/prefabs"
)

// playerHitIFrames is the invulnerability window after the player takes a
// hit, in ticks.
const playerHitIFrames = 45

// ApplyDamage reduces an entity's health and emits a death event the first
// time it reaches zero.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) {
	if w == nil || amount <= 0 {
		return
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || hp.Current <= 0 {
		return
	}
	hp.Current -= amount
	if hp.Current > 0 {
		return
	}
	hp.Current = 0

	var pos common.Vec3
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos = t.Pos
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Entity: e, Position: pos}})
}

// CombatSystem consumes the tick's overlap and death events: projectile
// impacts, coin pickups, hazard touches, and enemy deaths.
type CombatSystem struct {
	factory *entity.Factory
	pool    *pool.Pool[ecs.Entity]
	player  ecs.Entity
}

func NewCombatSystem(factory *entity.Factory, p *pool.Pool[ecs.Entity], player ecs.Entity) *CombatSystem {
	return &CombatSystem{factory: factory, pool: p, player: player}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	// Deaths caused while handling a batch are pushed back onto the queue,
	// so keep draining until it settles.
	for {
		events := w.Events().Drain()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			switch data := ev.Data.(type) {
			case ecs.ProjectileHitEvent:
				s.handleProjectileHit(w, data)
			case ecs.CoinCollectEvent:
				s.handleCoinCollect(w, data)
			case ecs.HazardTouchEvent:
				s.handleHazardTouch(w, data)
			case ecs.DeathEvent:
				s.handleDeath(w, data)
			}
		}
	}
}

func (s *CombatSystem) handleProjectileHit(w *ecs.World, ev ecs.ProjectileHitEvent) {
	if !active(w, ev.Projectile) || !active(w, ev.Target) {
		return
	}
	proj, ok := ecs.Get(w, ev.Projectile, component.ProjectileComponent.Kind())
	if !ok {
		return
	}

	s.applyEffect(w, ev.Projectile, ev.Target, proj.Effect)
	ApplyDamage(w, ev.Target, proj.Damage)

	if t, ok := ecs.Get(w, ev.Projectile, component.TransformComponent.Kind()); ok {
		s.spawnHitVFX(w, ev.Projectile, t.Pos)
	}
	if s.pool != nil {
		s.pool.Release(ev.Projectile)
	}
}

// applyEffect stamps the projectile's status effect onto the target using the
// prototype's tuning.
func (s *CombatSystem) applyEffect(w *ecs.World, projectile, target ecs.Entity, effect component.EffectKind) {
	if effect == component.EffectNone || s.factory == nil {
		return
	}
	st, ok := ecs.Get(w, target, component.StatusComponent.Kind())
	if !ok {
		return
	}
	spec, ok := s.projectileSpec(w, projectile)
	if !ok {
		return
	}

	switch effect {
	case component.EffectBurn:
		st.BurnTicks = spec.BurnTicks
		st.BurnInterval = spec.BurnInterval
		st.BurnCountdown = spec.BurnInterval
		st.BurnDamage = spec.BurnDamage
	case component.EffectChill:
		st.ChillTicks = spec.ChillTicks
		st.ChillFactor = spec.ChillFactor
	}
}

func (s *CombatSystem) spawnHitVFX(w *ecs.World, projectile ecs.Entity, pos common.Vec3) {
	spec, ok := s.projectileSpec(w, projectile)
	if !ok || spec.HitVFX == "" || s.pool == nil {
		return
	}
	s.pool.Acquire(spec.HitVFX, pos, 0)
}

func (s *CombatSystem) projectileSpec(w *ecs.World, projectile ecs.Entity) (prefabs.ProjectileSpec, bool) {
	if s.factory == nil || s.factory.Catalog() == nil {
		return prefabs.ProjectileSpec{}, false
	}
	pooled, ok := ecs.Get(w, projectile, component.PooledComponent.Kind())
	if !ok {
		return prefabs.ProjectileSpec{}, false
	}
	return s.factory.Catalog().Projectile(pooled.Prototype)
}

func (s *CombatSystem) handleCoinCollect(w *ecs.World, ev ecs.CoinCollectEvent) {
	if !active(w, ev.Coin) {
		return
	}
	value := 1
	if c, ok := ecs.Get(w, ev.Coin, component.CoinComponent.Kind()); ok {
		value = c.Value
	}
	if p, ok := ecs.Get(w, ev.Player, component.PlayerComponent.Kind()); ok {
		p.Coins += value
	}
	if s.factory != nil {
		s.factory.Orphan(ev.Coin)
	}
	if s.pool != nil {
		s.pool.Release(ev.Coin)
	}
}

func (s *CombatSystem) handleHazardTouch(w *ecs.World, ev ecs.HazardTouchEvent) {
	p, ok := ecs.Get(w, ev.Player, component.PlayerComponent.Kind())
	if !ok || p.IFrame > 0 {
		return
	}
	// The overlap space is planar; an airborne runner clears ground hazards.
	if t, ok := ecs.Get(w, ev.Player, component.TransformComponent.Kind()); ok && t.Pos.Y > 0.5 {
		return
	}
	p.IFrame = playerHitIFrames
	ApplyDamage(w, ev.Player, 1)
}

func (s *CombatSystem) handleDeath(w *ecs.World, ev ecs.DeathEvent) {
	if ev.Entity == s.player {
		log.Printf("combat: player down at z=%.1f", ev.Position.Z)
		return
	}
	if !w.IsAlive(ev.Entity) {
		return
	}

	pooled, ok := ecs.Get(w, ev.Entity, component.PooledComponent.Kind())
	if !ok {
		w.DestroyEntity(ev.Entity)
		return
	}
	if s.factory != nil && s.factory.Catalog() != nil {
		if spec, ok := s.factory.Catalog().Enemy(pooled.Prototype); ok {
			s.dropLoot(ev.Position, spec.CoinDrop, spec.DeathVFX)
		}
		s.factory.Orphan(ev.Entity)
	}
	if s.pool != nil {
		s.pool.Release(ev.Entity)
	}
}

// dropLoot scatters the enemy's coin drop in a small ring and plays its
// death effect.
func (s *CombatSystem) dropLoot(pos common.Vec3, coins int, vfx string) {
	if s.pool == nil || s.factory == nil || s.factory.Catalog() == nil {
		return
	}
	if vfx != "" {
		s.pool.Acquire(vfx, pos, 0)
	}
	coinProto := s.factory.Catalog().CoinName()
	for i := 0; i < coins; i++ {
		angle := float64(i) / float64(coins) * 2 * math.Pi
		at := pos.Add(common.Vec3{X: math.Cos(angle), Z: math.Sin(angle)})
		s.pool.Acquire(coinProto, at, 0)
	}
}

// active reports whether an entity is alive and not parked.
func active(w *ecs.World, e ecs.Entity) bool {
	return w.IsAlive(e) && !ecs.Has(w, e, component.DisabledComponent.Kind())
}
