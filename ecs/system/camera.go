package system

import (
	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// CameraSystem eases the follow camera toward its target along the travel
// axis, leading the runner by LookAhead.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		target := w.Handle(cam.TargetID)
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		t.Pos.Z = common.Lerp(t.Pos.Z, tt.Pos.Z+cam.LookAhead, cam.Smoothness)
		t.Pos.X = common.Lerp(t.Pos.X, tt.Pos.X*0.5, cam.Smoothness)
	})
}
