package ecs

import "github.com/emberworks/pathofember/ecs/component"

// Add attaches a component value to an entity. The value is stored by
// pointer so systems mutate it in place.
func Add[T any](w *World, e Entity, kind component.Kind[T], value *T) error {
	if w == nil || !kind.Valid() {
		return component.ErrInvalidKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e.ID, value)
	return nil
}

// Get returns the entity's component of this kind, or nil/false.
func Get[T any](w *World, e Entity, kind component.Kind[T]) (*T, bool) {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(kind.ID()).Get(e.ID)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries this component kind.
func Has[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID()).Has(e.ID)
}

// Remove detaches the component kind from the entity.
func Remove[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID()).Remove(e.ID)
}

// ForEach visits every live entity carrying the component kind. The visit
// order snapshot is taken up front, so callbacks may add or destroy entities.
func ForEach[T any](w *World, kind component.Kind[T], fn func(Entity, *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	s := w.store(kind.ID())
	for _, id := range s.IDs() {
		e := w.entities.handle(id)
		if !e.Valid() {
			continue
		}
		v, ok := s.Get(id).(*T)
		if !ok || v == nil {
			continue
		}
		fn(e, v)
	}
}
