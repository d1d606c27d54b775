package entity

import (
	"testing"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/prefabs"
)

func newChunkFixture(t *testing.T) (*ecs.World, *Factory, *pool.Pool[ecs.Entity]) {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	w := ecs.NewWorld()
	f := NewFactory(w, catalog)
	p := pool.New[ecs.Entity](f, 16)
	f.SetPool(p)
	return w, f, p
}

// A chunk torn down before its setup delay elapses must never populate: no
// pooled content acquired, and no ownership bookkeeping left behind.
func TestDespawnBeforeSetupSkipsPopulation(t *testing.T) {
	w, f, p := newChunkFixture(t)

	chunk, err := f.SpawnChunk("chunk_cinder_watch", 2, common.Vec3{Z: 60})
	if err != nil {
		t.Fatalf("spawn chunk: %v", err)
	}
	ref, ok := ecs.Get(w, chunk, component.ChunkRefComponent.Kind())
	if !ok {
		t.Fatal("chunk has no ref")
	}
	if ref.SetupTicks <= 0 {
		t.Fatalf("setup delay = %d, want > 0", ref.SetupTicks)
	}

	f.DespawnChunk(chunk)

	if got := p.TrackedCount(); got != 0 {
		t.Fatalf("pool tracks %d instances, want 0 for a never-populated chunk", got)
	}
	if len(f.chunkChildren) != 0 {
		t.Fatalf("chunkChildren holds %d entries after despawn", len(f.chunkChildren))
	}
	if len(f.childOwner) != 0 {
		t.Fatalf("childOwner holds %d entries after despawn", len(f.childOwner))
	}
	if got := len(w.Entities()); got != 0 {
		t.Fatalf("%d entities left alive after despawn", got)
	}

	// Populating through the stale ref afterwards must stay inert.
	f.PopulateChunk(chunk, ref)
	if got := p.TrackedCount(); got != 0 {
		t.Fatalf("stale populate acquired %d instances", got)
	}
}

func TestDespawnAfterPopulateReleasesContent(t *testing.T) {
	w, f, p := newChunkFixture(t)

	chunk, err := f.SpawnChunk("chunk_cinder_watch", 2, common.Vec3{Z: 60})
	if err != nil {
		t.Fatalf("spawn chunk: %v", err)
	}
	ref, _ := ecs.Get(w, chunk, component.ChunkRefComponent.Kind())
	f.PopulateChunk(chunk, ref)

	if got := p.TrackedCount(); got != 3 {
		t.Fatalf("populated chunk tracks %d instances, want 3 (two enemies, one coin)", got)
	}
	if !ref.SetupDone {
		t.Fatal("populate should mark setup done")
	}

	f.DespawnChunk(chunk)

	if got := p.ParkedCount("cinder_sentinel"); got != 1 {
		t.Fatalf("parked sentinels = %d, want 1", got)
	}
	if got := p.ParkedCount("ash_stalker"); got != 1 {
		t.Fatalf("parked stalkers = %d, want 1", got)
	}
	if got := p.ParkedCount("coin"); got != 1 {
		t.Fatalf("parked coins = %d, want 1", got)
	}
	if len(f.chunkChildren) != 0 || len(f.childOwner) != 0 {
		t.Fatal("ownership maps should be empty after despawn")
	}
}
