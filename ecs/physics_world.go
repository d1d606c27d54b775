package ecs

import (
	"github.com/jakecoffman/cp"

	"github.com/emberworks/pathofember/ecs/component"
)

// Collision layers for the ground-plane trigger space. All shapes are
// sensors; the space is used for overlap detection only, never for solving.
const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeProjectile
	collisionTypeCoin
	collisionTypeHazard
)

// PhysicsWorld owns the Chipmunk space used for planar overlap queries.
// World X maps to space X, world Z maps to space Y; the vertical axis is not
// represented and is gated by the consuming systems instead.
type PhysicsWorld struct {
	space *cp.Space
	queue *EventQueue

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*cp.Body

	handlersReady bool
}

// NewPhysicsWorld creates a trigger-only space feeding the given event queue.
func NewPhysicsWorld(queue *EventQueue) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 1

	pw := &PhysicsWorld{
		space:         space,
		queue:         queue,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*cp.Body),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.space == nil || pw.handlersReady {
		return
	}

	hit := pw.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeEnemy)
	hit.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		pw.queue.Push(Event{Type: EventProjectileHit, Data: ProjectileHitEvent{
			Projectile: pw.shapeToEntity[a],
			Target:     pw.shapeToEntity[b],
		}})
		return true
	}

	coin := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCoin)
	coin.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		pw.queue.Push(Event{Type: EventCoinCollect, Data: CoinCollectEvent{
			Player: pw.shapeToEntity[a],
			Coin:   pw.shapeToEntity[b],
		}})
		return true
	}

	hazard := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazard.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, _ := arb.Shapes()
		pw.queue.Push(Event{Type: EventHazardTouch, Data: HazardTouchEvent{
			Player: pw.shapeToEntity[a],
		}})
		return true
	}

	pw.handlersReady = true
}

// EnsureBody creates a kinematic sensor body for the entity if it does not
// already have one.
func (pw *PhysicsWorld) EnsureBody(e Entity, t *component.Transform, c *component.Collider) {
	if pw == nil || pw.space == nil || !e.Valid() || t == nil || c == nil {
		return
	}
	if _, ok := pw.bodies[e]; ok {
		return
	}

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: t.Pos.X, Y: t.Pos.Z})
	shape := cp.NewCircle(body, c.Radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeFor(c.Layer))

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapeToEntity[shape] = e
}

// SyncBody moves the entity's body to its transform position.
func (pw *PhysicsWorld) SyncBody(e Entity, t *component.Transform) {
	if pw == nil || t == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	body.SetPosition(cp.Vector{X: t.Pos.X, Y: t.Pos.Z})
}

// RemoveBody detaches and frees the entity's body and shape, if any.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	body.EachShape(func(shape *cp.Shape) {
		delete(pw.shapeToEntity, shape)
		pw.space.RemoveShape(shape)
	})
	pw.space.RemoveBody(body)
	delete(pw.bodies, e)
}

// Step advances the space one tick so sensor begin callbacks fire.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func collisionTypeFor(layer component.CollisionLayer) cp.CollisionType {
	switch layer {
	case component.LayerPlayer:
		return collisionTypePlayer
	case component.LayerEnemy:
		return collisionTypeEnemy
	case component.LayerProjectile:
		return collisionTypeProjectile
	case component.LayerCoin:
		return collisionTypeCoin
	case component.LayerHazard:
		return collisionTypeHazard
	}
	return collisionTypeHazard
}
