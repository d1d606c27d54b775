package loading

import (
	"errors"
	"testing"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/pool"
)

type fakeSpawner struct {
	nextID    int
	destroyed int
	failProto string
}

func (s *fakeSpawner) Clone(prototype string, pos common.Vec3, yaw float64) (int, error) {
	if prototype == s.failProto {
		return 0, errors.New("bad prototype")
	}
	s.nextID++
	return s.nextID, nil
}

func (s *fakeSpawner) Destroy(h int)                             { s.destroyed++ }
func (s *fakeSpawner) SetActive(h int, active bool)              {}
func (s *fakeSpawner) Place(h int, pos common.Vec3, yaw float64) {}

func plan() []Category {
	return []Category{
		{Name: "projectiles", Items: []Item{{Prototype: "ember_shot", Count: 12}, {Prototype: "frost_shot", Count: 6}}},
		{Name: "coins", Items: []Item{{Prototype: "coin", Count: 10}}},
	}
}

func runToDone(t *testing.T, o *Orchestrator[int]) int {
	t.Helper()
	steps := 0
	for !o.Done() {
		o.Step()
		steps++
		if steps > 1000 {
			t.Fatal("orchestrator never finished")
		}
	}
	return steps
}

func TestLoadWarmsEveryCategory(t *testing.T) {
	s := &fakeSpawner{}
	p := pool.New[int](s, 4)

	readyCalls := 0
	var fractions []float64
	o := NewOrchestrator(p, plan(), 4,
		func(f float64) { fractions = append(fractions, f) },
		func() { readyCalls++ },
	)

	runToDone(t, o)

	if readyCalls != 1 {
		t.Fatalf("ready called %d times, want 1", readyCalls)
	}
	if got := p.ParkedCount("ember_shot"); got != 12 {
		t.Fatalf("ember_shot parked = %d, want 12", got)
	}
	if got := p.ParkedCount("frost_shot"); got != 6 {
		t.Fatalf("frost_shot parked = %d, want 6", got)
	}
	if got := p.ParkedCount("coin"); got != 10 {
		t.Fatalf("coin parked = %d, want 10", got)
	}

	if len(fractions) == 0 || fractions[len(fractions)-1] != 1 {
		t.Fatalf("final fraction = %v, want 1", fractions)
	}
	for i := 1; i < len(fractions); i++ {
		if fractions[i] < fractions[i-1] {
			t.Fatalf("progress went backwards: %v", fractions)
		}
	}
}

func TestLoadClearsPoolFirst(t *testing.T) {
	s := &fakeSpawner{}
	p := pool.New[int](s, 8)
	p.Prewarm("stale", 5)
	if p.TrackedCount() != 5 {
		t.Fatal("precondition: stale instances tracked")
	}

	o := NewOrchestrator(p, plan(), 4, nil, nil)
	o.Step()

	if s.destroyed != 5 {
		t.Fatalf("destroyed = %d, want the 5 stale instances gone on the first step", s.destroyed)
	}
	if p.ParkedCount("stale") != 0 {
		t.Fatal("stale stack should be empty")
	}
}

func TestLoadSurvivesBadPrototype(t *testing.T) {
	s := &fakeSpawner{failProto: "frost_shot"}
	p := pool.New[int](s, 4)

	ready := false
	var last float64
	o := NewOrchestrator(p, plan(), 4,
		func(f float64) { last = f },
		func() { ready = true },
	)

	runToDone(t, o)

	if !ready {
		t.Fatal("load should finish despite a bad prototype")
	}
	if last != 1 {
		t.Fatalf("final fraction = %v, want 1", last)
	}
	if got := p.ParkedCount("coin"); got != 10 {
		t.Fatalf("later categories should still warm, coin parked = %d", got)
	}
}

func TestEmptyPlanFinishesImmediately(t *testing.T) {
	p := pool.New[int](&fakeSpawner{}, 4)
	ready := false
	o := NewOrchestrator(p, nil, 4, nil, func() { ready = true })

	if done := o.Step(); !done {
		t.Fatal("empty plan should finish on the first step")
	}
	if !ready {
		t.Fatal("ready should fire for an empty plan")
	}
}

func TestStepAfterDoneIsNoOp(t *testing.T) {
	p := pool.New[int](&fakeSpawner{}, 4)
	ready := 0
	o := NewOrchestrator(p, plan(), 8, nil, func() { ready++ })
	runToDone(t, o)

	o.Step()
	o.Step()
	if ready != 1 {
		t.Fatalf("ready fired %d times, want 1", ready)
	}
}
