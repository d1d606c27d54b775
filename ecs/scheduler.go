package ecs

// Scheduler runs systems in a fixed order, once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs all systems against the world, then flushes any events left
// undrained so stale events never leak into the next tick.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		if system != nil {
			system.Update(w)
		}
	}
	w.events.flush()
}

func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	return append([]System(nil), s.systems...)
}
