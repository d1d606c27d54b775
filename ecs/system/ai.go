package system

import (
	"math"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// attackDurationTicks is the wind-up time of a melee swing; the hit lands
// when the countdown ends.
const attackDurationTicks = 30

// AISystem drives enemy brains through their scripted state machines and
// resolves attack wind-ups into damage.
type AISystem struct {
	player ecs.Entity

	scriptCache map[ecs.Entity]*aiScriptRuntime
}

func NewAISystem(player ecs.Entity) *AISystem {
	return &AISystem{
		player:      player,
		scriptCache: make(map[ecs.Entity]*aiScriptRuntime),
	}
}

func (s *AISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	playerT, ok := ecs.Get(w, s.player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, en *component.Enemy) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			delete(s.scriptCache, e)
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		if en.Cooldown > 0 {
			en.Cooldown--
		}
		if en.AttackTicks > 0 {
			en.AttackTicks--
			if en.AttackTicks == 0 {
				s.landAttack(w, en, t, playerT)
				en.Cooldown = attackDurationTicks
			}
		}

		ctx := &aiContext{
			world:  w,
			entity: e,
			enemy:  en,
			self:   t,
			player: playerT,
		}
		s.updateFromScript(ctx)
	})

	s.pruneCache(w)
}

// landAttack applies melee damage if the player is still in reach when the
// swing lands.
func (s *AISystem) landAttack(w *ecs.World, en *component.Enemy, self, player *component.Transform) {
	reach := en.AttackRange * 1.5
	if common.PlanarDistSq(self.Pos, player.Pos) > reach*reach {
		return
	}
	if p, ok := ecs.Get(w, s.player, component.PlayerComponent.Kind()); ok {
		if p.IFrame > 0 {
			return
		}
		p.IFrame = playerHitIFrames
	}
	ApplyDamage(w, s.player, en.Damage)
}

// pruneCache drops runtimes for entities that no longer exist. Disabled
// entities are pruned inline during the sweep above.
func (s *AISystem) pruneCache(w *ecs.World) {
	for e := range s.scriptCache {
		if !w.IsAlive(e) {
			delete(s.scriptCache, e)
		}
	}
}

// aiContext is the per-entity view handed to script engine callbacks.
type aiContext struct {
	world  *ecs.World
	entity ecs.Entity
	enemy  *component.Enemy
	self   *component.Transform
	player *component.Transform
}

func (c *aiContext) playerDist() float64 {
	return math.Sqrt(common.PlanarDistSq(c.self.Pos, c.player.Pos))
}

// moveTowardPlayer steps the enemy on the ground plane, scaled by any active
// chill.
func (c *aiContext) moveTowardPlayer(speed float64) {
	if st, ok := ecs.Get(c.world, c.entity, component.StatusComponent.Kind()); ok && st.ChillTicks > 0 {
		speed *= st.ChillFactor
	}
	dx := c.player.Pos.X - c.self.Pos.X
	dz := c.player.Pos.Z - c.self.Pos.Z
	dist := math.Hypot(dx, dz)
	if dist < 1e-6 {
		return
	}
	c.self.Pos.X += dx / dist * speed
	c.self.Pos.Z += dz / dist * speed
	c.self.Yaw = math.Atan2(dx, dz) * 180 / math.Pi
}

// beginAttack starts the wind-up if no swing or cooldown is in flight.
func (c *aiContext) beginAttack() {
	if c.enemy.AttackTicks > 0 || c.enemy.Cooldown > 0 {
		return
	}
	c.enemy.AttackTicks = attackDurationTicks
}

func (c *aiContext) attackDone() bool {
	return c.enemy.AttackTicks == 0 && c.enemy.Cooldown == 0
}
