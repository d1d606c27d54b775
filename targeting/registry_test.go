package targeting

import (
	"testing"

	"github.com/emberworks/pathofember/common"
)

type fakeTarget struct {
	pos   common.Vec3
	alive bool
}

func (t *fakeTarget) Alive() bool           { return t.alive }
func (t *fakeTarget) Position() common.Vec3 { return t.pos }

func TestNearestIgnoresHeight(t *testing.T) {
	r := &Registry{}
	near := &fakeTarget{pos: common.Vec3{X: 1, Y: 100, Z: 1}, alive: true}
	far := &fakeTarget{pos: common.Vec3{X: 5, Y: 0, Z: 5}, alive: true}
	r.Register(far)
	r.Register(near)

	got, ok := r.Nearest(common.Vec3{})
	if !ok || got != near {
		t.Fatalf("nearest = %v ok=%v, want the planar-closest target", got, ok)
	}
}

func TestNearestWithinRange(t *testing.T) {
	r := &Registry{}
	a := &fakeTarget{pos: common.Vec3{Z: 3}, alive: true}
	b := &fakeTarget{pos: common.Vec3{Z: 10}, alive: true}
	r.Register(a)
	r.Register(b)

	if got, ok := r.NearestWithin(common.Vec3{}, 5); !ok || got != a {
		t.Fatalf("got %v ok=%v, want a", got, ok)
	}
	// Inclusive bound.
	if _, ok := r.NearestWithin(common.Vec3{}, 3); !ok {
		t.Fatal("range bound should be inclusive")
	}
	if _, ok := r.NearestWithin(common.Vec3{}, 2); ok {
		t.Fatal("nothing within 2")
	}
	if _, ok := r.NearestWithin(common.Vec3{}, -1); ok {
		t.Fatal("negative range should match nothing")
	}
}

func TestRegisterDuplicateIsNoOp(t *testing.T) {
	r := &Registry{}
	a := &fakeTarget{alive: true}
	r.Register(a)
	r.Register(a)
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestDeadEntriesPurgedDuringScan(t *testing.T) {
	r := &Registry{}
	dead := &fakeTarget{pos: common.Vec3{Z: 1}, alive: false}
	live := &fakeTarget{pos: common.Vec3{Z: 4}, alive: true}
	r.Register(dead)
	r.Register(live)

	got, ok := r.Nearest(common.Vec3{})
	if !ok || got != live {
		t.Fatal("dead target should never be returned")
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d after scan, want dead entry purged", r.Len())
	}
}

func TestUnregister(t *testing.T) {
	r := &Registry{}
	a := &fakeTarget{alive: true}
	b := &fakeTarget{pos: common.Vec3{Z: 2}, alive: true}
	r.Register(a)
	r.Register(b)

	r.Unregister(a)
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
	if got, ok := r.Nearest(common.Vec3{}); !ok || got != b {
		t.Fatal("remaining target should be b")
	}
	// Unregistering again is harmless.
	r.Unregister(a)
}

func TestEmptyRegistry(t *testing.T) {
	r := &Registry{}
	if _, ok := r.Nearest(common.Vec3{}); ok {
		t.Fatal("empty registry should report no target")
	}
}
