// Package floorcanvas provides the interactive canvas for the multi-floor
// designer: it draws the active floor's tables from state snapshots and maps
// pointer gestures to store commands.
package floorcanvas

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tableplan/internal/planner"
	"tableplan/pkg/geometry"
)

// baseWidth is the canvas width table footprints are authored against; the
// drawing scale is the current width over this value.
const baseWidth = 800

var backgroundColor = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xF7, A: 0xFF}

// FloorCanvas renders the active floor and forwards gestures to the store.
type FloorCanvas struct {
	widget.BaseWidget

	state      *planner.State
	background *fynecanvas.Rectangle
	content    *fyne.Container
}

// New creates a canvas bound to the given store. The canvas re-derives its
// drawable objects from a fresh snapshot on every state change; it never
// holds live entity references.
func New(state *planner.State) *FloorCanvas {
	fc := &FloorCanvas{
		state:      state,
		background: fynecanvas.NewRectangle(backgroundColor),
	}
	fc.content = container.NewWithoutLayout(fc.background)
	fc.ExtendBaseWidget(fc)

	state.On(planner.EventLayoutChanged, func(interface{}) { fc.rebuild() })
	state.On(planner.EventFloorsChanged, func(interface{}) { fc.rebuild() })
	state.On(planner.EventSelectionChanged, func(interface{}) { fc.rebuild() })

	fc.rebuild()
	return fc
}

// CreateRenderer implements fyne.Widget.
func (fc *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fc.content)
}

// Tapped deselects when the pointer lands on empty canvas. Table widgets
// consume their own taps.
func (fc *FloorCanvas) Tapped(*fyne.PointEvent) {
	if fc.state.SelectedID() != "" {
		fc.state.SelectTable("")
	}
}

// Resize keeps the store's canvas size in sync so percent coordinates map
// to the current viewport.
func (fc *FloorCanvas) Resize(size fyne.Size) {
	fc.BaseWidget.Resize(size)
	fc.background.Resize(size)
	current := fc.state.Canvas()
	if current.Width != float64(size.Width) || current.Height != float64(size.Height) {
		fc.state.SetCanvas(geometry.NewSize(float64(size.Width), float64(size.Height)))
	}
}

// rebuild replaces the canvas contents from a fresh state snapshot.
func (fc *FloorCanvas) rebuild() {
	f := fc.state.ActiveFloor()
	objects := []fyne.CanvasObject{fc.background}

	if f != nil {
		canvasSize := fc.state.Canvas()
		scale := 1.0
		if canvasSize.Width > 0 {
			scale = canvasSize.Width / baseWidth
		}
		highlighted := planner.HighlightTarget(fc.state.SelectedID(), f.Tables)
		for _, t := range f.Tables {
			tw := newTableWidget(fc, *t, canvasSize, scale, t == highlighted)
			objects = append(objects, tw)
		}
	}

	fc.content.Objects = objects
	fc.content.Refresh()
}
