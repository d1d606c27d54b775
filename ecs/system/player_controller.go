package system

import (
	"math"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/targeting"
)

// InputState is the per-tick input sample fed to the player controller. The
// host fills it before each update.
type InputState struct {
	// Steer is the lateral axis in [-1, 1].
	Steer float64
	Jump  bool
	Fire  bool
}

// PlayerControllerSystem advances the runner: constant forward motion,
// lateral steering clamped to the bridge, jumping, and auto-aimed fire.
type PlayerControllerSystem struct {
	input    *InputState
	pool     *pool.Pool[ecs.Entity]
	factory  *entity.Factory
	registry *targeting.Registry
}

func NewPlayerControllerSystem(input *InputState, p *pool.Pool[ecs.Entity], factory *entity.Factory, registry *targeting.Registry) *PlayerControllerSystem {
	return &PlayerControllerSystem{
		input:    input,
		pool:     p,
		factory:  factory,
		registry: registry,
	}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s == nil || s.input == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && hp.Current <= 0 {
			return
		}

		if p.IFrame > 0 {
			p.IFrame--
		}

		speed := p.RunSpeed
		if st, ok := ecs.Get(w, e, component.StatusComponent.Kind()); ok && st.ChillTicks > 0 {
			speed *= st.ChillFactor
		}
		t.Pos.Z += speed

		steer := common.Clamp(s.input.Steer, -1, 1)
		t.Pos.X = common.Clamp(t.Pos.X+steer*p.SteerSpeed, -p.LaneHalfWidth, p.LaneHalfWidth)

		if s.input.Jump && p.Grounded {
			p.VerticalVel = p.JumpSpeed
			p.Grounded = false
		}
		p.VerticalVel -= common.Gravity
		t.Pos.Y += p.VerticalVel
		if t.Pos.Y <= 0 {
			t.Pos.Y = 0
			p.VerticalVel = 0
			p.Grounded = true
		}

		if p.FireCooldown > 0 {
			p.FireCooldown--
		}
		if s.input.Fire && p.FireCooldown <= 0 {
			s.fire(w, t, p)
		}
	})
}

// fire launches the runner's projectile at the nearest enemy in aim range,
// or straight ahead when nothing is close.
func (s *PlayerControllerSystem) fire(w *ecs.World, t *component.Transform, p *component.Player) {
	if s.pool == nil || s.factory == nil || p.Projectile == "" {
		return
	}

	yaw := 0.0
	if s.registry != nil {
		if tgt, ok := s.registry.NearestWithin(t.Pos, p.AimRange); ok {
			at := tgt.Position()
			yaw = math.Atan2(at.X-t.Pos.X, at.Z-t.Pos.Z) * 180 / math.Pi
		}
	}

	rad := yaw * math.Pi / 180
	muzzle := t.Pos.Add(common.Vec3{X: math.Sin(rad), Z: math.Cos(rad)})
	h, ok := s.pool.Acquire(p.Projectile, muzzle, yaw)
	if !ok {
		return
	}
	s.factory.Launch(h)
	p.FireCooldown = p.FireInterval
}
