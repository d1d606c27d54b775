package ecs

import "github.com/emberworks/pathofember/common"

// Event is a generic event payload routed through the world queue.
type Event struct {
	Type string
	Data any
}

const (
	EventProjectileHit = "projectile_hit"
	EventCoinCollect   = "coin_collect"
	EventHazardTouch   = "hazard_touch"
	EventDeath         = "death"
)

// ProjectileHitEvent is emitted when a projectile sensor overlaps a target.
type ProjectileHitEvent struct {
	Projectile Entity
	Target     Entity
}

// CoinCollectEvent is emitted when the player sensor overlaps a coin.
type CoinCollectEvent struct {
	Coin   Entity
	Player Entity
}

// HazardTouchEvent is emitted when the player sensor overlaps a chunk hazard.
type HazardTouchEvent struct {
	Player Entity
}

// DeathEvent is emitted when an entity's health reaches zero.
type DeathEvent struct {
	Entity   Entity
	Position common.Vec3
}

// EventQueue is a simple FIFO queue drained once per tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
