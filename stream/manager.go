package stream

import (
	"log"
	"math"

	"github.com/emberworks/pathofember/common"
)

// ChunkSpawner is the host-side boundary for materializing chunks. Chunks
// bypass the entity pool on purpose: chunk turnover is slow and despawn must
// run full teardown of nested content.
type ChunkSpawner[H comparable] interface {
	SpawnChunk(prototype string, index int, pos common.Vec3) (H, error)
	DespawnChunk(h H)
}

// Config is the chunk placement and windowing configuration.
type Config struct {
	// Length and Gap define chunk pitch along the travel axis: chunk i sits
	// at origin + i*(Length+Gap).
	Length float64
	Gap    float64

	// Ahead and Behind bound the active window around the player's chunk.
	Ahead  int
	Behind int
}

// Manager keeps exactly the window [idx-Behind, idx+Ahead] (clamped to the
// sequence) materialized, spawning entered indices and despawning exited
// ones whenever the player's chunk index changes.
type Manager[H comparable] struct {
	seq     *Sequence
	cfg     Config
	spawner ChunkSpawner[H]

	originZ      float64
	currentIndex int
	active       map[int]H
	failed       map[int]bool
	initialized  bool
}

// NewManager creates an uninitialized manager. Call Init once to fix the
// origin and load the initial window.
func NewManager[H comparable](seq *Sequence, cfg Config, spawner ChunkSpawner[H]) *Manager[H] {
	return &Manager[H]{
		seq:     seq,
		cfg:     cfg,
		spawner: spawner,
		active:  make(map[int]H),
		failed:  make(map[int]bool),
	}
}

// Init fixes the streaming origin and materializes the window around index 0.
// With an empty sequence the manager logs once and stays inert.
func (m *Manager[H]) Init(originZ float64) {
	if m == nil || m.initialized {
		return
	}
	if m.seq.Len() == 0 {
		log.Printf("stream: empty chunk sequence, streaming disabled")
		return
	}
	if m.spawner == nil {
		log.Printf("stream: no chunk spawner, streaming disabled")
		return
	}
	m.originZ = originZ
	m.currentIndex = 0
	m.initialized = true
	m.applyWindow()
}

// Advance recomputes the player's chunk index from its Z position and, when
// it changed, reconciles the active window. Floor division puts a player
// exactly on a boundary into the chunk ahead.
func (m *Manager[H]) Advance(playerZ float64) {
	if m == nil || !m.initialized {
		return
	}
	pitch := m.cfg.Length + m.cfg.Gap
	if pitch <= 0 {
		return
	}
	idx := int(math.Floor((playerZ - m.originZ) / pitch))
	idx = common.ClampInt(idx, 0, m.seq.Len()-1)
	if idx == m.currentIndex {
		return
	}
	m.currentIndex = idx
	m.applyWindow()
}

// applyWindow despawns indices that left the window, then spawns entered
// ones. The two phases are order-independent (chunk placements are disjoint)
// but unloading first keeps peak instance count flat.
func (m *Manager[H]) applyWindow() {
	lo, hi := m.windowBounds()

	for idx, h := range m.active {
		if idx >= lo && idx <= hi {
			continue
		}
		m.spawner.DespawnChunk(h)
		delete(m.active, idx)
	}

	for idx := lo; idx <= hi; idx++ {
		if _, ok := m.active[idx]; ok {
			continue
		}
		if m.failed[idx] {
			continue
		}
		prototype := m.seq.At(idx)
		if prototype == "" {
			log.Printf("stream: no prototype at index %d, skipping", idx)
			m.failed[idx] = true
			continue
		}
		h, err := m.spawner.SpawnChunk(prototype, idx, m.ChunkOrigin(idx))
		if err != nil {
			log.Printf("stream: spawn chunk %s at index %d: %v", prototype, idx, err)
			m.failed[idx] = true
			continue
		}
		m.active[idx] = h
	}
}

func (m *Manager[H]) windowBounds() (int, int) {
	lo := common.ClampInt(m.currentIndex-m.cfg.Behind, 0, m.seq.Len()-1)
	hi := common.ClampInt(m.currentIndex+m.cfg.Ahead, 0, m.seq.Len()-1)
	return lo, hi
}

// ChunkOrigin returns the deterministic placement of chunk index i.
func (m *Manager[H]) ChunkOrigin(i int) common.Vec3 {
	if m == nil {
		return common.Vec3{}
	}
	return common.Vec3{Z: m.originZ + float64(i)*(m.cfg.Length+m.cfg.Gap)}
}

// CurrentIndex returns the player's current chunk index.
func (m *Manager[H]) CurrentIndex() int {
	if m == nil {
		return 0
	}
	return m.currentIndex
}

// ActiveIndices returns the currently materialized chunk indices, unordered.
func (m *Manager[H]) ActiveIndices() []int {
	if m == nil || len(m.active) == 0 {
		return nil
	}
	out := make([]int, 0, len(m.active))
	for idx := range m.active {
		out = append(out, idx)
	}
	return out
}

// Active returns the live instance for a chunk index.
func (m *Manager[H]) Active(idx int) (H, bool) {
	var zero H
	if m == nil {
		return zero, false
	}
	h, ok := m.active[idx]
	return h, ok
}

// Teardown despawns every active chunk and returns the manager to the
// uninitialized state.
func (m *Manager[H]) Teardown() {
	if m == nil {
		return
	}
	if m.spawner != nil {
		for idx, h := range m.active {
			m.spawner.DespawnChunk(h)
			delete(m.active, idx)
		}
	}
	m.active = make(map[int]H)
	m.failed = make(map[int]bool)
	m.initialized = false
}
