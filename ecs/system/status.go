package system

import (
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
)

// StatusSystem ticks down burn and chill timers and applies burn damage on
// its interval.
type StatusSystem struct{}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.StatusComponent.Kind(), func(e ecs.Entity, st *component.Status) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		if st.BurnTicks > 0 {
			st.BurnTicks--
			st.BurnCountdown--
			if st.BurnCountdown <= 0 {
				st.BurnCountdown = st.BurnInterval
				ApplyDamage(w, e, st.BurnDamage)
			}
		}
		if st.ChillTicks > 0 {
			st.ChillTicks--
		}
	})
}
