package main

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// NewPauseUI builds the pause menu: run stats plus Resume and Restart.
// Restart rebuilds the session the same way the game-over flow does, going
// back through pool warmup. The stats line is refreshed each paused tick.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, uiAccentColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	stats := widget.NewText(
		widget.TextOpts.Text("", face, uiTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	g.pauseStats = stats

	resume := uiButton("Resume", face, func() { g.paused = false })
	restart := uiButton("Restart Run", face, func() { g.buildWorld() })

	root := uiCenteredPanel(imageui.NewNineSliceColor(uiPanelColor), title, stats, resume, restart)
	return &ebitenui.UI{Container: root}
}
