// Package targeting keeps a flat registry of live combat entities and
// answers nearest-neighbor queries without allocating, so aim-assist and AI
// can target without a full-scene scan.
package targeting

import "github.com/emberworks/pathofember/common"

// Target is a live combat entity's position handle. Alive turning false is
// how the registry notices entities destroyed without an Unregister call.
type Target interface {
	Alive() bool
	Position() common.Vec3
}

// Registry is a flat slice of targets. Queries are O(n) linear scans, which
// is intentional: entity counts and query rates are both small, and a scan
// over a flat slice beats allocating a scene query every call.
type Registry struct {
	entries []Target
}

// Register adds a target. Registering the same target twice is a no-op.
func (r *Registry) Register(t Target) {
	if r == nil || t == nil {
		return
	}
	for _, existing := range r.entries {
		if existing == t {
			return
		}
	}
	r.entries = append(r.entries, t)
}

// Unregister removes a target if present.
func (r *Registry) Unregister(t Target) {
	if r == nil || t == nil {
		return
	}
	for i, existing := range r.entries {
		if existing == t {
			r.removeAt(i)
			return
		}
	}
}

// Nearest returns the registered target closest to p on the ground plane.
func (r *Registry) Nearest(p common.Vec3) (Target, bool) {
	return r.scan(p, -1)
}

// NearestWithin is Nearest with an inclusive maximum planar range.
func (r *Registry) NearestWithin(p common.Vec3, maxRange float64) (Target, bool) {
	if maxRange < 0 {
		return nil, false
	}
	return r.scan(p, maxRange*maxRange)
}

// scan walks the slice from the tail, purging dead entries in place as it
// encounters them, and keeps the best planar squared distance seen.
// maxSq < 0 means unbounded.
func (r *Registry) scan(p common.Vec3, maxSq float64) (Target, bool) {
	if r == nil {
		return nil, false
	}
	var best Target
	bestSq := 0.0
	for i := len(r.entries) - 1; i >= 0; i-- {
		t := r.entries[i]
		if t == nil || !t.Alive() {
			r.removeAt(i)
			continue
		}
		dSq := common.PlanarDistSq(p, t.Position())
		if maxSq >= 0 && dSq > maxSq {
			continue
		}
		if best == nil || dSq < bestSq {
			best = t
			bestSq = dSq
		}
	}
	return best, best != nil
}

// removeAt swap-removes index i without allocating.
func (r *Registry) removeAt(i int) {
	last := len(r.entries) - 1
	r.entries[i] = r.entries[last]
	r.entries[last] = nil
	r.entries = r.entries[:last]
}

// Len returns the number of registered entries, including any not yet purged.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
