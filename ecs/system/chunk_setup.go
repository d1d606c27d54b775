package system

import (
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
)

// ChunkSetupSystem finishes deferred chunk population once a chunk's setup
// delay elapses. A chunk despawned before its delay runs out never populates.
type ChunkSetupSystem struct {
	factory *entity.Factory
}

func NewChunkSetupSystem(factory *entity.Factory) *ChunkSetupSystem {
	return &ChunkSetupSystem{factory: factory}
}

func (s *ChunkSetupSystem) Update(w *ecs.World) {
	if s == nil || s.factory == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ChunkRefComponent.Kind(), func(e ecs.Entity, ref *component.ChunkRef) {
		if ref.SetupDone {
			return
		}
		ref.SetupTicks--
		if ref.SetupTicks <= 0 {
			s.factory.PopulateChunk(e, ref)
		}
	})
}
