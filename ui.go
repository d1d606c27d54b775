package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Ember palette shared by the loading and pause screens.
var (
	uiPanelColor  = color.NRGBA{R: 0x26, G: 0x20, B: 0x1c, A: 0xe6}
	uiAccentColor = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x2a, A: 0xff}
	uiTextColor   = color.NRGBA{R: 0xf2, G: 0xe9, B: 0xdc, A: 0xff}
	uiButtonColor = color.NRGBA{R: 0x3a, G: 0x2c, B: 0x1e, A: 0xff}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func uiButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	idle := imageui.NewNineSliceColor(uiButtonColor)
	pressed := imageui.NewNineSliceColor(uiAccentColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Pressed: pressed}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: uiTextColor}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 24, Right: 24}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { onClick() }),
	)
}

// uiCenteredPanel wraps a vertical panel in an anchor layout so it floats at
// screen center.
func uiCenteredPanel(background *imageui.NineSlice, children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(background),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root
}
