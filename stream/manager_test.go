package stream

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/emberworks/pathofember/common"
)

type fakeChunkSpawner struct {
	next     int
	spawned  map[int]string
	despawns int
	failIdx  map[int]bool
	attempts map[int]int
}

func newFakeChunkSpawner() *fakeChunkSpawner {
	return &fakeChunkSpawner{
		spawned:  make(map[int]string),
		failIdx:  make(map[int]bool),
		attempts: make(map[int]int),
	}
}

func (s *fakeChunkSpawner) SpawnChunk(prototype string, index int, pos common.Vec3) (int, error) {
	s.attempts[index]++
	if s.failIdx[index] {
		return 0, fmt.Errorf("spawn rejected")
	}
	s.next++
	s.spawned[index] = prototype
	return s.next, nil
}

func (s *fakeChunkSpawner) DespawnChunk(h int) {
	s.despawns++
}

func testSequence(t *testing.T, n int) *Sequence {
	t.Helper()
	chunks := make([]string, n)
	for i := range chunks {
		chunks[i] = fmt.Sprintf("chunk_%02d", i)
	}
	seq, err := BuildSequence(SequenceConfig{Groups: []BiomeGroup{{Name: "test", Chunks: chunks}}})
	if err != nil {
		t.Fatal(err)
	}
	return seq
}

func activeSorted[H comparable](m *Manager[H]) []int {
	idx := m.ActiveIndices()
	sort.Ints(idx)
	return idx
}

func TestInitMaterializesWindow(t *testing.T) {
	s := newFakeChunkSpawner()
	m := NewManager[int](testSequence(t, 10), Config{Length: 30, Ahead: 3, Behind: 1}, s)
	m.Init(0)

	if got := activeSorted(m); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("active = %v, want [0 1 2 3]", got)
	}
	if s.spawned[0] != "chunk_00" {
		t.Fatalf("index 0 spawned as %q", s.spawned[0])
	}
}

func TestAdvanceSlidesWindow(t *testing.T) {
	s := newFakeChunkSpawner()
	m := NewManager[int](testSequence(t, 10), Config{Length: 30, Ahead: 3, Behind: 1}, s)
	m.Init(0)

	// Still inside chunk 0: no churn.
	m.Advance(29.9)
	if m.CurrentIndex() != 0 || s.despawns != 0 {
		t.Fatalf("index=%d despawns=%d, want no change", m.CurrentIndex(), s.despawns)
	}

	// Exactly on the boundary floors into chunk 1.
	m.Advance(30)
	if m.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", m.CurrentIndex())
	}
	if got := activeSorted(m); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("active = %v, want [0 1 2 3 4]", got)
	}

	// Jumping several chunks reconciles in one step.
	m.Advance(5 * 30)
	if got := activeSorted(m); !reflect.DeepEqual(got, []int{4, 5, 6, 7, 8}) {
		t.Fatalf("active = %v, want [4 5 6 7 8]", got)
	}
	if s.despawns != 4 {
		t.Fatalf("despawns = %d, want 4 (chunks 0-3)", s.despawns)
	}
}

func TestAdvanceClampsAtEnds(t *testing.T) {
	s := newFakeChunkSpawner()
	m := NewManager[int](testSequence(t, 5), Config{Length: 30, Ahead: 3, Behind: 1}, s)
	m.Init(0)

	m.Advance(-500)
	if m.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want clamp to 0", m.CurrentIndex())
	}

	m.Advance(10_000)
	if m.CurrentIndex() != 4 {
		t.Fatalf("index = %d, want clamp to 4", m.CurrentIndex())
	}
	if got := activeSorted(m); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Fatalf("active = %v, want [3 4]", got)
	}
}

func TestGapWidensPitch(t *testing.T) {
	s := newFakeChunkSpawner()
	m := NewManager[int](testSequence(t, 10), Config{Length: 30, Gap: 10, Ahead: 1, Behind: 0}, s)
	m.Init(0)

	m.Advance(39.9)
	if m.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0 inside the gap", m.CurrentIndex())
	}
	m.Advance(40)
	if m.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1 past the gap", m.CurrentIndex())
	}
	if got := m.ChunkOrigin(2); got.Z != 80 {
		t.Fatalf("origin(2).Z = %v, want 80", got.Z)
	}
}

func TestFailedSpawnIsNotRetried(t *testing.T) {
	s := newFakeChunkSpawner()
	s.failIdx[2] = true
	m := NewManager[int](testSequence(t, 10), Config{Length: 30, Ahead: 3, Behind: 1}, s)
	m.Init(0)

	if _, ok := m.Active(2); ok {
		t.Fatal("failed index should not be active")
	}

	// Leave and re-enter the window around index 2.
	m.Advance(8 * 30)
	m.Advance(30)
	if got := s.attempts[2]; got != 1 {
		t.Fatalf("spawn attempts for failed index = %d, want 1", got)
	}
}

func TestTeardownDespawnsEverything(t *testing.T) {
	s := newFakeChunkSpawner()
	m := NewManager[int](testSequence(t, 10), Config{Length: 30, Ahead: 3, Behind: 1}, s)
	m.Init(0)

	m.Teardown()
	if len(m.ActiveIndices()) != 0 {
		t.Fatal("active chunks should be empty after teardown")
	}
	if s.despawns != 4 {
		t.Fatalf("despawns = %d, want 4", s.despawns)
	}

	// Advancing a torn-down manager is inert.
	m.Advance(300)
	if len(m.ActiveIndices()) != 0 {
		t.Fatal("torn-down manager should not spawn")
	}
}

func TestNilSpawnerStaysInert(t *testing.T) {
	m := NewManager[int](testSequence(t, 4), Config{Length: 30, Ahead: 2, Behind: 1}, nil)
	m.Init(0)
	m.Advance(90)
	if len(m.ActiveIndices()) != 0 {
		t.Fatal("manager without spawner should stay inert")
	}
}
