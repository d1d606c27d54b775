// Package pool implements the per-prototype instance cache that pooled
// gameplay entities (projectiles, coins, VFX, enemies) are acquired from and
// released to, so steady-state play never pays spawn/destroy cost.
package pool

import (
	"log"

	"github.com/emberworks/pathofember/common"
)

// Spawner is the host-side clone/destroy/activate boundary the pool drives.
// H is the opaque instance handle type.
type Spawner[H comparable] interface {
	Clone(prototype string, pos common.Vec3, yaw float64) (H, error)
	Destroy(h H)
	SetActive(h H, active bool)
	Place(h H, pos common.Vec3, yaw float64)
}

// overflowWarnEvery rate-limits the capacity-overflow warning; a steady
// stream of these is a retuning signal, not a bug.
const overflowWarnEvery = 25

// Pool keeps one stack of parked (inactive) instances per prototype, bounded
// by a per-prototype capacity. Instances the pool has ever cloned are tracked
// in an instance→prototype map; anything not in that map is foreign and is
// destroyed on release instead of retained.
type Pool[H comparable] struct {
	spawner    Spawner[H]
	defaultCap int

	parked   map[string][]H
	owner    map[H]string
	isParked map[H]bool
	caps     map[string]int
	overflow map[string]int
}

// New creates a pool. defaultCapacity bounds every prototype's parked stack
// unless overridden with SetCapacity.
func New[H comparable](spawner Spawner[H], defaultCapacity int) *Pool[H] {
	if defaultCapacity <= 0 {
		log.Printf("pool: missing capacity default, using 1")
		defaultCapacity = 1
	}
	return &Pool[H]{
		spawner:    spawner,
		defaultCap: defaultCapacity,
		parked:     make(map[string][]H),
		owner:      make(map[H]string),
		isParked:   make(map[H]bool),
		caps:       make(map[string]int),
		overflow:   make(map[string]int),
	}
}

// SetCapacity overrides the parked-stack bound for one prototype. Capacity is
// never lowered below the configured default, so prewarm sizes stay legal.
func (p *Pool[H]) SetCapacity(prototype string, capacity int) {
	if p == nil || prototype == "" {
		return
	}
	if capacity < p.defaultCap {
		capacity = p.defaultCap
	}
	p.caps[prototype] = capacity
}

func (p *Pool[H]) capacity(prototype string) int {
	if c, ok := p.caps[prototype]; ok {
		return c
	}
	return p.defaultCap
}

// Acquire hands out an instance of the prototype at the given position,
// reusing a parked instance when one exists. An empty prototype is a caller
// error: logged, zero handle, ok=false. Never panics.
func (p *Pool[H]) Acquire(prototype string, pos common.Vec3, yaw float64) (H, bool) {
	var zero H
	if p == nil || p.spawner == nil {
		return zero, false
	}
	if prototype == "" {
		log.Printf("pool: acquire with empty prototype")
		return zero, false
	}

	stack := p.parked[prototype]
	if n := len(stack); n > 0 {
		h := stack[n-1]
		p.parked[prototype] = stack[:n-1]
		delete(p.isParked, h)
		p.spawner.Place(h, pos, yaw)
		p.spawner.SetActive(h, true)
		return h, true
	}

	h, err := p.spawner.Clone(prototype, pos, yaw)
	if err != nil {
		log.Printf("pool: clone %s: %v", prototype, err)
		return zero, false
	}
	p.owner[h] = prototype
	p.spawner.SetActive(h, true)
	return h, true
}

// Release parks an instance back into its prototype's stack. Foreign
// instances (never cloned by this pool) are destroyed outright. Releasing an
// already-parked instance is a no-op. Past capacity the instance is destroyed
// instead of retained.
func (p *Pool[H]) Release(h H) {
	if p == nil || p.spawner == nil {
		return
	}
	prototype, ok := p.owner[h]
	if !ok {
		log.Printf("pool: release of foreign instance, destroying")
		p.spawner.Destroy(h)
		return
	}
	if p.isParked[h] {
		return
	}

	if len(p.parked[prototype]) >= p.capacity(prototype) {
		delete(p.owner, h)
		p.spawner.Destroy(h)
		p.overflow[prototype]++
		if p.overflow[prototype]%overflowWarnEvery == 1 {
			log.Printf("pool: %s released past capacity %d times, consider retuning", prototype, p.overflow[prototype])
		}
		return
	}

	p.spawner.SetActive(h, false)
	p.parked[prototype] = append(p.parked[prototype], h)
	p.isParked[h] = true
}

// Prewarm synchronously fills the prototype's stack with count instances.
// Instances are cloned and immediately released, so gameplay never sees a
// half-initialized instance.
func (p *Pool[H]) Prewarm(prototype string, count int) {
	if p == nil || p.spawner == nil || prototype == "" || count <= 0 {
		return
	}
	if p.capacity(prototype) < count {
		p.SetCapacity(prototype, count)
	}
	for i := 0; i < count; i++ {
		h, err := p.spawner.Clone(prototype, common.Vec3{}, 0)
		if err != nil {
			log.Printf("pool: prewarm %s: %v", prototype, err)
			return
		}
		p.owner[h] = prototype
		p.Release(h)
	}
}

// Clear destroys every tracked instance, parked or handed out, and drops all
// bookkeeping. Safe to call repeatedly; used at level teardown so reloads
// never leak or double-track instances.
func (p *Pool[H]) Clear() {
	if p == nil {
		return
	}
	if p.spawner != nil {
		for h := range p.owner {
			p.spawner.Destroy(h)
		}
	}
	p.parked = make(map[string][]H)
	p.owner = make(map[H]string)
	p.isParked = make(map[H]bool)
	p.overflow = make(map[string]int)
}

// ParkedCount returns the number of inactive instances held for a prototype.
func (p *Pool[H]) ParkedCount(prototype string) int {
	if p == nil {
		return 0
	}
	return len(p.parked[prototype])
}

// TrackedCount returns the total number of instances the pool owns, active
// and parked.
func (p *Pool[H]) TrackedCount() int {
	if p == nil {
		return 0
	}
	return len(p.owner)
}
