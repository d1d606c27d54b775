package system

import (
	"testing"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/prefabs"
)

func newCombatFixture(t *testing.T) (*ecs.World, *entity.Factory, *pool.Pool[ecs.Entity]) {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	w := ecs.NewWorld()
	f := entity.NewFactory(w, catalog)
	p := pool.New[ecs.Entity](f, 16)
	f.SetPool(p)
	return w, f, p
}

// A burn tick that kills must be fully resolved the same tick: the status
// system runs ahead of combat in the schedule, so the death it emits is
// drained before the scheduler flushes the queue.
func TestBurnKillResolvedSameTick(t *testing.T) {
	w, f, p := newCombatFixture(t)

	e, ok := p.Acquire("cinder_sentinel", common.Vec3{Z: 10}, 0)
	if !ok {
		t.Fatal("acquire enemy failed")
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatal("enemy has no health")
	}
	hp.Current = 1
	st, ok := ecs.Get(w, e, component.StatusComponent.Kind())
	if !ok {
		t.Fatal("enemy has no status")
	}
	st.BurnTicks = 1
	st.BurnInterval = 1
	st.BurnCountdown = 1
	st.BurnDamage = 1

	sched := ecs.NewScheduler(
		NewStatusSystem(),
		NewCombatSystem(f, p, ecs.Entity{}),
	)
	for i := 0; i < 5; i++ {
		sched.Update(w)
	}

	if hp.Current != 0 {
		t.Fatalf("hp = %d, want 0", hp.Current)
	}
	if !ecs.Has(w, e, component.DisabledComponent.Kind()) {
		t.Fatal("burn-killed enemy should be parked, not left active")
	}
	if got := p.ParkedCount("cinder_sentinel"); got != 1 {
		t.Fatalf("parked sentinels = %d, want 1", got)
	}

	// Death handling ran, so the kill dropped its loot.
	coins := 0
	ecs.ForEach(w, component.CoinComponent.Kind(), func(c ecs.Entity, _ *component.Coin) {
		if !ecs.Has(w, c, component.DisabledComponent.Kind()) {
			coins++
		}
	})
	if coins != 2 {
		t.Fatalf("dropped coins = %d, want 2", coins)
	}
}

// Deaths emitted by any system scheduled after combat would be flushed unseen
// at end of tick; this pins the queue semantics the schedule relies on.
func TestSchedulerFlushDropsLateDeaths(t *testing.T) {
	w, f, p := newCombatFixture(t)

	e, ok := p.Acquire("ash_stalker", common.Vec3{Z: 5}, 0)
	if !ok {
		t.Fatal("acquire enemy failed")
	}

	sched := ecs.NewScheduler(
		NewCombatSystem(f, p, ecs.Entity{}),
		systemFunc(func(w *ecs.World) { ApplyDamage(w, e, 99) }),
	)
	sched.Update(w)

	if got := p.ParkedCount("ash_stalker"); got != 0 {
		t.Fatalf("late death should not have been handled this tick, parked = %d", got)
	}

	// The next tick cannot recover it either: the queue was flushed and the
	// entity is already at zero health, so no second death fires.
	sched.Update(w)
	if got := p.ParkedCount("ash_stalker"); got != 0 {
		t.Fatalf("flushed death should stay lost, parked = %d", got)
	}
}

type systemFunc func(*ecs.World)

func (fn systemFunc) Update(w *ecs.World) { fn(w) }
