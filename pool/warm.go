package pool

import (
	"log"

	"github.com/emberworks/pathofember/common"
)

// PrewarmTask is a resumable prewarm: the driver calls Step once per tick and
// the task creates at most its per-tick budget of instances before yielding.
// A task runs to completion once; it is not restartable.
type PrewarmTask[H comparable] struct {
	pool      *Pool[H]
	prototype string
	remaining int
	perTick   int
	created   int
	failed    bool
}

// PrewarmTask prepares an asynchronous prewarm of count instances with the
// given per-tick creation budget.
func (p *Pool[H]) PrewarmTask(prototype string, count, perTick int) *PrewarmTask[H] {
	if perTick <= 0 {
		perTick = 1
	}
	t := &PrewarmTask[H]{
		pool:      p,
		prototype: prototype,
		remaining: count,
		perTick:   perTick,
	}
	if p == nil || prototype == "" || count <= 0 {
		t.remaining = 0
		t.failed = p == nil || prototype == ""
		if t.failed {
			log.Printf("pool: prewarm task with invalid prototype")
		}
		return t
	}
	if p.capacity(prototype) < count {
		p.SetCapacity(prototype, count)
	}
	return t
}

// Step creates up to one batch of instances and reports whether the task has
// finished. A finished task's Step keeps returning true and does nothing.
func (t *PrewarmTask[H]) Step() bool {
	if t == nil || t.Done() {
		return true
	}
	if t.pool == nil || t.pool.spawner == nil {
		t.remaining = 0
		t.failed = true
		return true
	}

	batch := t.perTick
	if batch > t.remaining {
		batch = t.remaining
	}
	for i := 0; i < batch; i++ {
		h, err := t.pool.spawner.Clone(t.prototype, common.Vec3{}, 0)
		if err != nil {
			log.Printf("pool: prewarm %s: %v", t.prototype, err)
			t.failed = true
			t.remaining = 0
			return true
		}
		t.pool.owner[h] = t.prototype
		t.pool.Release(h)
		t.created++
	}
	t.remaining -= batch
	return t.Done()
}

// Done reports whether the task has created its full count or aborted.
func (t *PrewarmTask[H]) Done() bool {
	return t == nil || t.remaining <= 0
}

// Created returns how many instances the task has parked so far.
func (t *PrewarmTask[H]) Created() int {
	if t == nil {
		return 0
	}
	return t.created
}

// Failed reports whether the task aborted on a clone error.
func (t *PrewarmTask[H]) Failed() bool {
	return t != nil && t.failed
}
