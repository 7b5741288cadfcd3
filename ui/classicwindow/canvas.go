package classicwindow

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tableplan/internal/editor"
	"tableplan/internal/table"
)

var (
	backgroundColor = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xF7, A: 0xFF}
	tableFill       = color.NRGBA{R: 0xEC, G: 0xEF, B: 0xF1, A: 0xFF}
	tableStroke     = color.NRGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF}
	selectionStroke = color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF}
	labelShade      = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
)

// editorCanvas draws the fixed-coordinate tables and maps gestures to the
// store. Tables are rebuilt from a snapshot on every change.
type editorCanvas struct {
	widget.BaseWidget

	state      *editor.State
	background *fynecanvas.Rectangle
	content    *fyne.Container
}

func newEditorCanvas(state *editor.State) *editorCanvas {
	ec := &editorCanvas{
		state:      state,
		background: fynecanvas.NewRectangle(backgroundColor),
	}
	ec.content = container.NewWithoutLayout(ec.background)
	ec.ExtendBaseWidget(ec)

	state.On(editor.EventTablesChanged, func(interface{}) { ec.rebuild() })
	state.On(editor.EventSelectionChanged, func(interface{}) { ec.rebuild() })

	ec.rebuild()
	return ec
}

// CreateRenderer implements fyne.Widget.
func (ec *editorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ec.content)
}

// Tapped deselects when the pointer lands on empty canvas.
func (ec *editorCanvas) Tapped(*fyne.PointEvent) {
	if ec.state.SelectedID() != "" {
		ec.state.SelectTable("")
	}
}

func (ec *editorCanvas) Resize(size fyne.Size) {
	ec.BaseWidget.Resize(size)
	ec.background.Resize(size)
}

func (ec *editorCanvas) rebuild() {
	selected := ec.state.SelectedID()
	objects := []fyne.CanvasObject{ec.background}
	for _, t := range ec.state.Tables() {
		objects = append(objects, newFixedTableWidget(ec, t, t.ID == selected))
	}
	ec.content.Objects = objects
	ec.content.Refresh()
}

// fixedTableWidget draws one fixed-coordinate table. A rejected move puts
// the widget back where the drag started.
type fixedTableWidget struct {
	widget.BaseWidget

	parent   *editorCanvas
	model    table.Table
	selected bool

	dragStart fyne.Position
	dragging  bool
}

func newFixedTableWidget(parent *editorCanvas, model table.Table, selected bool) *fixedTableWidget {
	tw := &fixedTableWidget{
		parent:   parent,
		model:    model,
		selected: selected,
	}
	tw.ExtendBaseWidget(tw)
	tw.Resize(fyne.NewSize(float32(model.Width), float32(model.Height)))
	tw.Move(fyne.NewPos(float32(model.X), float32(model.Y)))
	return tw
}

// CreateRenderer implements fyne.Widget.
func (tw *fixedTableWidget) CreateRenderer() fyne.WidgetRenderer {
	rect := fynecanvas.NewRectangle(tableFill)
	rect.StrokeColor = tableStroke
	rect.StrokeWidth = 1
	if tw.selected {
		rect.StrokeColor = selectionStroke
		rect.StrokeWidth = 3
	}
	rect.Resize(fyne.NewSize(float32(tw.model.Width), float32(tw.model.Height)))

	label := fynecanvas.NewText(tw.model.Number, labelShade)
	label.TextSize = 12
	label.Alignment = fyne.TextAlignCenter
	size := label.MinSize()
	label.Resize(size)
	label.Move(fyne.NewPos(
		float32(tw.model.Width)/2-size.Width/2,
		float32(tw.model.Height)/2-size.Height/2,
	))

	return widget.NewSimpleRenderer(container.NewWithoutLayout(rect, label))
}

// Tapped toggles selection of this table.
func (tw *fixedTableWidget) Tapped(*fyne.PointEvent) {
	tw.parent.state.SelectTable(tw.model.ID)
}

// Dragged moves the widget visually; the store decides at DragEnd.
func (tw *fixedTableWidget) Dragged(ev *fyne.DragEvent) {
	if !tw.dragging {
		tw.dragging = true
		tw.dragStart = tw.Position()
	}
	tw.Move(tw.Position().Add(fyne.NewPos(ev.Dragged.DX, ev.Dragged.DY)))
}

// DragEnd commits the move, or reverts the widget to the pre-drag position
// when the store rejects it for overlapping another table.
func (tw *fixedTableWidget) DragEnd() {
	if !tw.dragging {
		return
	}
	tw.dragging = false

	pos := tw.Position()
	err := tw.parent.state.MoveTable(tw.model.ID, float64(pos.X), float64(pos.Y))
	if errors.Is(err, editor.ErrOverlap) {
		tw.Move(tw.dragStart)
	}
}
