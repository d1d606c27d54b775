package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/emberworks/pathofember/ecs/system"
)

// Input samples the keyboard once per tick into the controller's input
// state. The runner auto-fires; steering and jumping are the player's job.
type Input struct {
	state *system.InputState
}

func NewInput(state *system.InputState) *Input {
	return &Input{state: state}
}

func (i *Input) Update() {
	if i == nil || i.state == nil {
		return
	}

	steer := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		steer -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		steer += 1
	}

	i.state.Steer = steer
	i.state.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	i.state.Fire = true
}

// PauseToggled reports an Escape press this tick.
func (i *Input) PauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// RestartRequested reports an R press this tick.
func (i *Input) RestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
