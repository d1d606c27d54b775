// Package loading sequences pool teardown and prewarming across entity
// categories during the loading screen, reporting progress to a UI sink and
// signalling readiness exactly once.
package loading

import (
	"log"

	"github.com/emberworks/pathofember/pool"
)

// Item is one prototype's prewarm request within a category.
type Item struct {
	Prototype string
	Count     int
}

// Category groups prewarm items so progress reads in meaningful steps
// (projectiles, VFX, coins, enemies).
type Category struct {
	Name  string
	Items []Item
}

// ProgressFunc receives the completed fraction in [0,1] after each batch.
type ProgressFunc func(fraction float64)

// ReadyFunc is called once, after every category has been warmed.
type ReadyFunc func()

// Orchestrator drives one load: Clear the pool, then run each category's
// prewarm tasks strictly in sequence, one batch per tick. Prewarms of the
// same prototype never overlap because only one task is live at a time.
type Orchestrator[H comparable] struct {
	pool       *pool.Pool[H]
	categories []Category
	perTick    int
	progress   ProgressFunc
	ready      ReadyFunc

	total     int
	processed int

	catIdx  int
	itemIdx int
	task    *pool.PrewarmTask[H]
	cleared bool
	done    bool
}

// NewOrchestrator prepares a load over the given categories. perTick is the
// instance creation budget per update tick.
func NewOrchestrator[H comparable](p *pool.Pool[H], categories []Category, perTick int, progress ProgressFunc, ready ReadyFunc) *Orchestrator[H] {
	total := 0
	for _, c := range categories {
		for _, it := range c.Items {
			if it.Prototype == "" || it.Count <= 0 {
				continue
			}
			total += it.Count
		}
	}
	return &Orchestrator[H]{
		pool:       p,
		categories: categories,
		perTick:    perTick,
		progress:   progress,
		ready:      ready,
		total:      total,
	}
}

// Step advances the load by one tick and reports whether loading finished.
// The first step clears the pool; later steps advance at most one prewarm
// batch so a large warm never stalls the frame loop.
func (o *Orchestrator[H]) Step() bool {
	if o == nil || o.done {
		return true
	}

	if !o.cleared {
		o.pool.Clear()
		o.cleared = true
		if o.total == 0 {
			o.finish()
			return true
		}
		o.report()
		return false
	}

	item, ok := o.currentItem()
	if !ok {
		o.finish()
		return true
	}

	if o.task == nil {
		o.task = o.pool.PrewarmTask(item.Prototype, item.Count, o.perTick)
	}

	before := o.task.Created()
	finished := o.task.Step()
	o.processed += o.task.Created() - before
	if o.task.Failed() {
		// A bad prototype degrades to a shorter warm; the run continues.
		o.processed += item.Count - o.task.Created()
	}
	o.report()

	if finished {
		o.task = nil
		o.itemIdx++
	}
	if _, ok := o.currentItem(); !ok {
		o.finish()
		return true
	}
	return false
}

// currentItem resolves the next valid item, walking category and item
// indices past empties.
func (o *Orchestrator[H]) currentItem() (Item, bool) {
	for o.catIdx < len(o.categories) {
		cat := o.categories[o.catIdx]
		for o.itemIdx < len(cat.Items) {
			it := cat.Items[o.itemIdx]
			if it.Prototype != "" && it.Count > 0 {
				return it, true
			}
			o.itemIdx++
		}
		o.catIdx++
		o.itemIdx = 0
	}
	return Item{}, false
}

func (o *Orchestrator[H]) report() {
	if o.progress == nil {
		return
	}
	if o.total <= 0 {
		o.progress(1)
		return
	}
	f := float64(o.processed) / float64(o.total)
	if f > 1 {
		f = 1
	}
	o.progress(f)
}

func (o *Orchestrator[H]) finish() {
	if o.done {
		return
	}
	o.done = true
	o.report()
	log.Printf("loading: warmed %d/%d instances", o.processed, o.total)
	if o.ready != nil {
		o.ready()
	}
}

// Done reports whether the load has completed.
func (o *Orchestrator[H]) Done() bool {
	return o == nil || o.done
}
