package pool

import (
	"errors"
	"testing"

	"github.com/emberworks/pathofember/common"
)

type fakeSpawner struct {
	nextID    int
	clones    int
	active    map[int]bool
	destroyed map[int]bool
	placed    map[int]common.Vec3

	failAfter int
	err       error
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{
		active:    make(map[int]bool),
		destroyed: make(map[int]bool),
		placed:    make(map[int]common.Vec3),
		failAfter: -1,
	}
}

func (s *fakeSpawner) Clone(prototype string, pos common.Vec3, yaw float64) (int, error) {
	if s.failAfter >= 0 && s.clones >= s.failAfter {
		if s.err == nil {
			s.err = errors.New("clone budget exhausted")
		}
		return 0, s.err
	}
	s.clones++
	s.nextID++
	s.active[s.nextID] = true
	s.placed[s.nextID] = pos
	return s.nextID, nil
}

func (s *fakeSpawner) Destroy(h int)                             { s.destroyed[h] = true }
func (s *fakeSpawner) SetActive(h int, active bool)              { s.active[h] = active }
func (s *fakeSpawner) Place(h int, pos common.Vec3, yaw float64) { s.placed[h] = pos }

func TestAcquireReusesParkedInstance(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 8)

	a, ok := p.Acquire("ember_shot", common.Vec3{Z: 1}, 0)
	if !ok {
		t.Fatal("acquire failed")
	}
	p.Release(a)
	if s.active[a] {
		t.Fatalf("released instance should be inactive")
	}

	b, ok := p.Acquire("ember_shot", common.Vec3{Z: 9}, 0)
	if !ok {
		t.Fatal("reacquire failed")
	}
	if b != a {
		t.Fatalf("expected reuse of %d, got %d", a, b)
	}
	if s.clones != 1 {
		t.Fatalf("expected 1 clone, got %d", s.clones)
	}
	if got := s.placed[b]; got.Z != 9 {
		t.Fatalf("reused instance not placed, z=%v", got.Z)
	}
	if !s.active[b] {
		t.Fatal("reused instance should be active")
	}
}

func TestReleasePastCapacityDestroys(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 2)

	var handles []int
	for i := 0; i < 3; i++ {
		h, ok := p.Acquire("coin", common.Vec3{}, 0)
		if !ok {
			t.Fatal("acquire failed")
		}
		handles = append(handles, h)
	}
	for _, h := range handles {
		p.Release(h)
	}

	if got := p.ParkedCount("coin"); got != 2 {
		t.Fatalf("parked = %d, want 2", got)
	}
	if !s.destroyed[handles[2]] {
		t.Fatal("overflow instance should be destroyed")
	}
	if p.TrackedCount() != 2 {
		t.Fatalf("tracked = %d, want 2", p.TrackedCount())
	}
}

func TestReleaseForeignInstanceDestroys(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 4)

	p.Release(999)
	if !s.destroyed[999] {
		t.Fatal("foreign instance should be destroyed")
	}
	if p.TrackedCount() != 0 {
		t.Fatal("foreign instance should not be tracked")
	}
}

func TestReleaseParkedIsNoOp(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 4)

	h, _ := p.Acquire("coin", common.Vec3{}, 0)
	p.Release(h)
	p.Release(h)

	if got := p.ParkedCount("coin"); got != 1 {
		t.Fatalf("parked = %d, want 1", got)
	}
	if s.destroyed[h] {
		t.Fatal("double release should not destroy")
	}
}

func TestAcquireEmptyPrototypeFails(t *testing.T) {
	p := New[int](newFakeSpawner(), 4)
	if _, ok := p.Acquire("", common.Vec3{}, 0); ok {
		t.Fatal("empty prototype should fail")
	}
}

func TestAcquireCloneErrorFails(t *testing.T) {
	s := newFakeSpawner()
	s.failAfter = 0
	p := New[int](s, 4)
	if _, ok := p.Acquire("ember_shot", common.Vec3{}, 0); ok {
		t.Fatal("clone error should surface as failed acquire")
	}
}

func TestPrewarmFillsParkedStack(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 2)

	p.Prewarm("frost_shot", 5)
	if got := p.ParkedCount("frost_shot"); got != 5 {
		t.Fatalf("parked = %d, want 5 (capacity should rise to the prewarm size)", got)
	}

	for i := 0; i < 5; i++ {
		if _, ok := p.Acquire("frost_shot", common.Vec3{}, 0); !ok {
			t.Fatal("acquire from warm stack failed")
		}
	}
	if s.clones != 5 {
		t.Fatalf("acquires from a warm stack should not clone, clones = %d", s.clones)
	}
}

func TestClearDestroysEverythingTracked(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 8)

	p.Prewarm("coin", 3)
	out, _ := p.Acquire("coin", common.Vec3{}, 0)

	p.Clear()
	if p.TrackedCount() != 0 {
		t.Fatalf("tracked = %d after clear", p.TrackedCount())
	}
	if p.ParkedCount("coin") != 0 {
		t.Fatal("parked stack should be empty after clear")
	}
	if !s.destroyed[out] {
		t.Fatal("handed-out instance should be destroyed by clear")
	}

	// Idempotent.
	p.Clear()
}

func TestPrewarmTaskRespectsBudget(t *testing.T) {
	s := newFakeSpawner()
	p := New[int](s, 4)

	task := p.PrewarmTask("ember_shot", 23, 5)
	steps := 0
	for !task.Done() {
		task.Step()
		steps++
		if steps > 100 {
			t.Fatal("task never finished")
		}
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5 for 23 instances at 5 per tick", steps)
	}
	if task.Created() != 23 {
		t.Fatalf("created = %d, want 23", task.Created())
	}
	if got := p.ParkedCount("ember_shot"); got != 23 {
		t.Fatalf("parked = %d, want 23", got)
	}
}

func TestPrewarmTaskAbortsOnCloneError(t *testing.T) {
	s := newFakeSpawner()
	s.failAfter = 3
	p := New[int](s, 8)

	task := p.PrewarmTask("ember_shot", 10, 4)
	done := task.Step()
	if !done {
		t.Fatal("errored task should report done")
	}
	if !task.Failed() {
		t.Fatal("task should report failure")
	}
	if task.Created() != 3 {
		t.Fatalf("created = %d, want 3 before the error", task.Created())
	}
	// A finished task stays finished.
	if !task.Step() {
		t.Fatal("finished task Step should keep returning true")
	}
}

func TestPrewarmTaskInvalidPrototype(t *testing.T) {
	p := New[int](newFakeSpawner(), 4)
	task := p.PrewarmTask("", 10, 4)
	if !task.Done() || !task.Failed() {
		t.Fatal("empty prototype task should be done and failed")
	}
}
