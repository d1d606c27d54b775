package system

import (
	"log"

	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/stream"
)

// StreamSystem slides the chunk window along the travel axis as the runner
// advances.
type StreamSystem struct {
	manager *stream.Manager[ecs.Entity]
	player  ecs.Entity
	warned  bool
}

func NewStreamSystem(m *stream.Manager[ecs.Entity], player ecs.Entity) *StreamSystem {
	return &StreamSystem{manager: m, player: player}
}

func (s *StreamSystem) Update(w *ecs.World) {
	if s == nil || s.manager == nil || w == nil {
		return
	}
	t, ok := ecs.Get(w, s.player, component.TransformComponent.Kind())
	if !ok {
		if !s.warned {
			log.Printf("stream: no player transform, window frozen")
			s.warned = true
		}
		return
	}
	s.warned = false
	s.manager.Advance(t.Pos.Z)
}
