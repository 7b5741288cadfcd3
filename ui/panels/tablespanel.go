package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tableplan/internal/planner"
	"tableplan/internal/table"
	"tableplan/ui/floorcanvas"
)

var (
	shapeChoices = []string{string(table.ShapeRound), string(table.ShapeRectangle), string(table.ShapeSquare)}
	sizeChoices  = []string{string(table.SizeSmall), string(table.SizeMedium), string(table.SizeLarge)}
)

// TablesPanel holds the add-table form and the selected-table property
// sheet. The property sheet re-reads the selection snapshot on every
// selection change.
type TablesPanel struct {
	state       *planner.State
	reportError func(error)

	box *fyne.Container

	// property sheet controls, enabled only with a selection
	nameEntry   *widget.Entry
	seatsSelect *widget.Select
	shapeSelect *widget.Select
	sizeSelect  *widget.Select
	rotateLeft  *widget.Button
	rotateRight *widget.Button
	removeBtn   *widget.Button

	// guards against widget callbacks firing while the sheet is being
	// programmatically refreshed
	refreshing bool
}

// NewTablesPanel creates the tables panel.
func NewTablesPanel(state *planner.State, reportError func(error)) *TablesPanel {
	tp := &TablesPanel{
		state:       state,
		reportError: reportError,
	}

	addForm := tp.buildAddForm()
	sheet := tp.buildPropertySheet()

	tp.box = container.NewVBox(
		widget.NewLabelWithStyle("Add Table", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		addForm,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Selected Table", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sheet,
	)

	state.On(planner.EventSelectionChanged, func(interface{}) { tp.refreshSheet() })
	state.On(planner.EventFloorsChanged, func(interface{}) { tp.refreshSheet() })
	tp.refreshSheet()
	return tp
}

// Container returns the panel container.
func (tp *TablesPanel) Container() fyne.CanvasObject {
	return tp.box
}

func (tp *TablesPanel) buildAddForm() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Name (optional)")

	shapeSelect := widget.NewSelect(shapeChoices, nil)
	shapeSelect.SetSelected(string(table.ShapeRound))

	sizeSelect := widget.NewSelect(sizeChoices, nil)
	sizeSelect.SetSelected(string(table.SizeMedium))

	seatsSelect := widget.NewSelect(seatChoiceStrings(), nil)
	seatsSelect.SetSelected("4")

	addBtn := widget.NewButton("Add", func() {
		seats, _ := strconv.Atoi(seatsSelect.Selected)
		_, err := tp.state.AddTable(
			nameEntry.Text,
			table.Shape(shapeSelect.Selected),
			table.Size(sizeSelect.Selected),
			seats,
		)
		if err != nil {
			tp.reportError(err)
			return
		}
		nameEntry.SetText("")
	})

	return container.NewVBox(nameEntry, shapeSelect, sizeSelect, seatsSelect, addBtn)
}

func (tp *TablesPanel) buildPropertySheet() fyne.CanvasObject {
	tp.nameEntry = widget.NewEntry()
	tp.nameEntry.OnChanged = func(name string) {
		if !tp.refreshing {
			tp.state.RenameTable(name)
		}
	}

	tp.seatsSelect = widget.NewSelect(seatChoiceStrings(), func(s string) {
		if tp.refreshing {
			return
		}
		if seats, err := strconv.Atoi(s); err == nil {
			tp.state.SetSeats(seats)
		}
	})

	tp.shapeSelect = widget.NewSelect(shapeChoices, func(s string) {
		if !tp.refreshing {
			tp.state.SetShape(table.Shape(s))
		}
	})

	tp.sizeSelect = widget.NewSelect(sizeChoices, func(s string) {
		if !tp.refreshing {
			tp.state.SetSize(table.Size(s))
		}
	})

	tp.rotateLeft = widget.NewButton("Rotate -45", func() { tp.rotateBy(-45) })
	tp.rotateRight = widget.NewButton("Rotate +45", func() { tp.rotateBy(45) })

	tp.removeBtn = widget.NewButton("Remove Table", func() {
		if id := tp.state.SelectedID(); id != "" {
			if err := tp.state.RemoveTable(id); err != nil {
				tp.reportError(err)
			}
		}
	})

	return container.NewVBox(
		tp.nameEntry,
		tp.shapeSelect,
		tp.sizeSelect,
		tp.seatsSelect,
		container.NewGridWithColumns(2, tp.rotateLeft, tp.rotateRight),
		tp.removeBtn,
	)
}

// rotateBy snaps the selected table's rotation to the next 45 degree step.
func (tp *TablesPanel) rotateBy(delta float64) {
	selected := tp.state.Selected()
	if selected == nil {
		return
	}
	angle := floorcanvas.SnapAngle(selected.Rotation + delta)
	if err := tp.state.RotateTable(selected.ID, angle); err != nil {
		tp.reportError(err)
	}
}

// refreshSheet loads the current selection into the sheet, or disables it.
func (tp *TablesPanel) refreshSheet() {
	tp.refreshing = true
	defer func() { tp.refreshing = false }()

	selected := tp.state.Selected()
	if selected == nil {
		tp.nameEntry.SetText("")
		tp.nameEntry.Disable()
		tp.seatsSelect.Disable()
		tp.shapeSelect.Disable()
		tp.sizeSelect.Disable()
		tp.rotateLeft.Disable()
		tp.rotateRight.Disable()
		tp.removeBtn.Disable()
		return
	}

	tp.nameEntry.Enable()
	tp.seatsSelect.Enable()
	tp.shapeSelect.Enable()
	tp.sizeSelect.Enable()
	tp.rotateLeft.Enable()
	tp.rotateRight.Enable()
	tp.removeBtn.Enable()

	tp.nameEntry.SetText(selected.Name)
	tp.seatsSelect.SetSelected(strconv.Itoa(selected.Seats))
	tp.shapeSelect.SetSelected(string(selected.Shape))
	tp.sizeSelect.SetSelected(string(selected.Size))
}

func seatChoiceStrings() []string {
	choices := make([]string, 0, planner.MaxSeats)
	for i := planner.MinSeats; i <= planner.MaxSeats; i++ {
		choices = append(choices, strconv.Itoa(i))
	}
	return choices
}
