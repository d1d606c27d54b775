package main

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// NewLoadingUI builds the loading screen: a title and a progress bar fed by
// the pool warmer. The bar widget is kept on the Game so the orchestrator's
// progress callback can drive it.
func NewLoadingUI(g *Game) *ebitenui.UI {
	face := uiFace()
	trackImg := imageui.NewNineSliceColor(uiPanelColor)
	fillImg := imageui.NewNineSliceColor(uiAccentColor)

	title := widget.NewText(
		widget.TextOpts.Text("Path of Ember", face, uiTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 18),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: trackImg},
			&widget.ProgressBarImage{Idle: fillImg},
		),
		widget.ProgressBarOpts.Values(0, 100, 0),
	)
	g.loadingBar = bar

	root := uiCenteredPanel(nil, title, bar)
	return &ebitenui.UI{Container: root}
}
