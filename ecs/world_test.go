package ecs

import (
	"testing"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs/component"
)

func TestCreateDestroyEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if !e.Valid() || !w.IsAlive(e) {
		t.Fatal("created entity should be alive")
	}
	if !w.DestroyEntity(e) {
		t.Fatal("destroy should succeed")
	}
	if w.IsAlive(e) {
		t.Fatal("destroyed entity should not be alive")
	}
	if w.DestroyEntity(e) {
		t.Fatal("double destroy should fail")
	}
}

func TestStaleHandleDoesNotAliasReusedID(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)

	second := w.CreateEntity()
	if second.ID != first.ID {
		t.Fatalf("expected ID reuse, got %d and %d", first.ID, second.ID)
	}
	if w.IsAlive(first) {
		t.Fatal("stale handle should be dead")
	}
	if !w.IsAlive(second) {
		t.Fatal("new handle should be alive")
	}
}

func TestAddGetRemoveComponent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	tr := component.Transform{Pos: common.Vec3{Z: 7}}
	if err := Add(w, e, component.TransformComponent.Kind(), &tr); err != nil {
		t.Fatal(err)
	}

	got, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok || got.Pos.Z != 7 {
		t.Fatalf("get = %+v ok=%v", got, ok)
	}

	// Mutations through the pointer stick.
	got.Pos.Z = 12
	again, _ := Get(w, e, component.TransformComponent.Kind())
	if again.Pos.Z != 12 {
		t.Fatal("component mutation should persist")
	}

	if !Remove(w, e, component.TransformComponent.Kind()) {
		t.Fatal("remove should succeed")
	}
	if Has(w, e, component.TransformComponent.Kind()) {
		t.Fatal("component should be gone")
	}
}

func TestAddToDeadEntityFails(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	tr := component.Transform{}
	if err := Add(w, e, component.TransformComponent.Kind(), &tr); err == nil {
		t.Fatal("add to dead entity should error")
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	tr := component.Transform{}
	_ = Add(w, e, component.TransformComponent.Kind(), &tr)

	w.DestroyEntity(e)
	if _, ok := Get(w, e, component.TransformComponent.Kind()); ok {
		t.Fatal("components should be dropped with the entity")
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		tr := component.Transform{Pos: common.Vec3{Z: float64(i)}}
		_ = Add(w, e, component.TransformComponent.Kind(), &tr)
	}

	visited := 0
	ForEach(w, component.TransformComponent.Kind(), func(e Entity, _ *component.Transform) {
		visited++
		w.DestroyEntity(e)
	})
	if visited != 4 {
		t.Fatalf("visited = %d, want 4", visited)
	}
	if len(w.Entities()) != 0 {
		t.Fatal("all entities should be destroyed")
	}
}

func TestEventQueueDrainClears(t *testing.T) {
	q := &EventQueue{}
	q.Push(Event{Type: EventCoinCollect})
	q.Push(Event{Type: EventDeath})

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("drained %d, want 2", len(events))
	}
	if q.Drain() != nil {
		t.Fatal("second drain should be empty")
	}
}

func TestSchedulerFlushesUndrainedEvents(t *testing.T) {
	w := NewWorld()
	s := NewScheduler(systemFunc(func(w *World) {
		w.Events().Push(Event{Type: EventHazardTouch})
	}))

	s.Update(w)
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("events should not leak across ticks, got %v", got)
	}
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }
