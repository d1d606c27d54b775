package ecs

import "strconv"

// Entity is a generational handle. A destroyed entity's ID is recycled with a
// bumped generation, so stale handles fail IsAlive checks instead of aliasing
// the new occupant.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + ":" + strconv.Itoa(e.Gen)
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	nextID int
	gen    []int
	alive  []bool
	free   []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for id > len(s.gen) {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id-1] = true
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.ID - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.alive[e.ID-1] && s.gen[e.ID-1] == e.Gen
}

// handle rebuilds a full Entity from a raw id, or an invalid handle if the id
// is not alive.
func (s *entityStore) handle(id int) Entity {
	if s == nil || id <= 0 || id > len(s.gen) || !s.alive[id-1] {
		return Entity{}
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}
