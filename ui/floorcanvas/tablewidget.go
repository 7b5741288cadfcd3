package floorcanvas

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tableplan/internal/floor"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

var (
	tableFill       = color.NRGBA{R: 0xEC, G: 0xEF, B: 0xF1, A: 0xFF}
	tableStroke     = color.NRGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF}
	selectionStroke = color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF}
	seatFill        = color.NRGBA{R: 0x78, G: 0x90, B: 0x9C, A: 0xFF}
	labelShade      = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
)

const seatMarkerDiameter = 8

// tableWidget draws one table with its seat markers and label, and maps
// tap/drag gestures to store commands. It works on a snapshot copy of the
// entity; every state change produces fresh widgets.
type tableWidget struct {
	widget.BaseWidget

	parent   *FloorCanvas
	model    floor.Table
	scale    float64
	selected bool

	// widget size including the seat ring around the footprint
	extent    fyne.Size
	footprint geometry.Size
}

func newTableWidget(parent *FloorCanvas, model floor.Table, canvasSize geometry.Size, scale float64, selected bool) *tableWidget {
	tw := &tableWidget{
		parent:   parent,
		model:    model,
		scale:    scale,
		selected: selected,
	}
	tw.ExtendBaseWidget(tw)

	d := table.Dimensions(model.Shape, model.Size)
	tw.footprint = geometry.NewSize(d.Width*scale, d.Height*scale)

	// Leave room for the seat ring on all sides.
	pad := float32((10 + seatMarkerDiameter) * scale)
	tw.extent = fyne.NewSize(float32(tw.footprint.Width)+2*pad, float32(tw.footprint.Height)+2*pad)

	center := model.Center(canvasSize)
	tw.Resize(tw.extent)
	tw.Move(fyne.NewPos(
		float32(center.X)-tw.extent.Width/2,
		float32(center.Y)-tw.extent.Height/2,
	))
	return tw
}

// CreateRenderer implements fyne.Widget.
func (tw *tableWidget) CreateRenderer() fyne.WidgetRenderer {
	stroke := tableStroke
	strokeWidth := float32(1)
	if tw.selected {
		stroke = selectionStroke
		strokeWidth = 3
	}

	cx := tw.extent.Width / 2
	cy := tw.extent.Height / 2

	var shape fyne.CanvasObject
	switch tw.model.Shape {
	case table.ShapeRound:
		circle := fynecanvas.NewCircle(tableFill)
		circle.StrokeColor = stroke
		circle.StrokeWidth = strokeWidth
		shape = circle
	default:
		rect := fynecanvas.NewRectangle(tableFill)
		rect.StrokeColor = stroke
		rect.StrokeWidth = strokeWidth
		shape = rect
	}
	shape.Resize(fyne.NewSize(float32(tw.footprint.Width), float32(tw.footprint.Height)))
	shape.Move(fyne.NewPos(cx-float32(tw.footprint.Width)/2, cy-float32(tw.footprint.Height)/2))

	objects := []fyne.CanvasObject{shape}

	for _, seat := range table.SeatPositions(tw.model.Shape, tw.model.Size, tw.model.Seats, tw.scale) {
		marker := fynecanvas.NewCircle(seatFill)
		marker.Resize(fyne.NewSize(seatMarkerDiameter, seatMarkerDiameter))
		marker.Move(fyne.NewPos(
			cx+float32(seat.X)-seatMarkerDiameter/2,
			cy+float32(seat.Y)-seatMarkerDiameter/2,
		))
		objects = append(objects, marker)
	}

	if tw.model.Name != "" {
		label := fynecanvas.NewText(tw.model.Name, labelShade)
		label.TextSize = 12
		label.Alignment = fyne.TextAlignCenter
		size := label.MinSize()
		label.Resize(size)
		label.Move(fyne.NewPos(cx-size.Width/2, cy-size.Height/2))
		objects = append(objects, label)
	}

	return widget.NewSimpleRenderer(container.NewWithoutLayout(objects...))
}

// Tapped toggles selection of this table.
func (tw *tableWidget) Tapped(*fyne.PointEvent) {
	tw.parent.state.SelectTable(tw.model.ID)
}

// Dragged moves the widget visually; the store is not touched until DragEnd.
func (tw *tableWidget) Dragged(ev *fyne.DragEvent) {
	tw.Move(tw.Position().Add(fyne.NewPos(ev.Dragged.DX, ev.Dragged.DY)))
}

// DragEnd commits the new center position. The percentage variant always
// accepts moves, so there is nothing to revert here.
func (tw *tableWidget) DragEnd() {
	pos := tw.Position()
	centerX := float64(pos.X + tw.extent.Width/2)
	centerY := float64(pos.Y + tw.extent.Height/2)
	_ = tw.parent.state.MoveTable(tw.model.ID, centerX, centerY)
}
