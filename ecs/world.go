package ecs

import "github.com/emberworks/pathofember/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ID]*SparseSet
	events   EventQueue

	physics *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and removes all of its components. Returns
// false for handles that are already dead or stale.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.ID)
	}
	if w.physics != nil {
		w.physics.RemoveBody(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entity handles.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.entities.gen))
	for i, alive := range w.entities.alive {
		if alive {
			out = append(out, Entity{ID: i + 1, Gen: w.entities.gen[i]})
		}
	}
	return out
}

// Handle rebuilds a live entity handle from a raw ID.
func (w *World) Handle(id int) Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.handle(id)
}

func (w *World) store(id component.ID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physics = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physics
}
