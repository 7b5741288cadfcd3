// Package classicwindow provides the fixed-coordinate editor window: tables
// at absolute pixel positions, collision-checked placement and movement.
package classicwindow

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"tableplan/internal/blob"
	"tableplan/internal/editor"
	"tableplan/internal/table"
)

const layoutKey = "classic"

// Window is the fixed-coordinate editor window.
type Window struct {
	fyne.Window
	state *editor.State
	store blob.Store
	log   *logrus.Logger

	canvas    *editorCanvas
	statusBar *widget.Label
}

// New creates the editor window.
func New(fyneApp fyne.App, state *editor.State, store blob.Store, log *logrus.Logger) *Window {
	w := &Window{
		Window:    fyneApp.NewWindow("Table Plan — Classic Editor"),
		state:     state,
		store:     store,
		log:       log,
		statusBar: widget.NewLabel("Ready"),
	}

	w.canvas = newEditorCanvas(state)

	split := container.NewHSplit(w.canvas, w.buildSidePanel())
	split.SetOffset(0.75)
	w.SetContent(container.NewBorder(nil, w.statusBar, nil, nil, split))
	w.Resize(fyne.NewSize(1100, 700))

	if err := state.Load(store, layoutKey); err != nil {
		log.WithError(err).Warn("could not load saved tables")
	}

	state.On(editor.EventTablesChanged, func(interface{}) { w.updateStatus() })
	w.updateStatus()
	return w
}

func (w *Window) buildSidePanel() fyne.CanvasObject {
	numberEntry := widget.NewEntry()
	numberEntry.SetPlaceHolder("Table number")

	seatChoices := make([]string, len(table.SeatChoices))
	for i, s := range table.SeatChoices {
		seatChoices[i] = strconv.Itoa(s)
	}
	seatsSelect := widget.NewSelect(seatChoices, nil)
	seatsSelect.SetSelected("4")

	addBtn := widget.NewButton("Add Table", func() {
		seats, _ := strconv.Atoi(seatsSelect.Selected)
		if _, err := w.state.AddTable(numberEntry.Text, seats); err != nil {
			w.reportError(err)
			return
		}
		numberEntry.SetText("")
	})

	removeBtn := widget.NewButton("Remove Selected", func() {
		if id := w.state.SelectedID(); id != "" {
			if err := w.state.RemoveTable(id); err != nil {
				w.reportError(err)
			}
		}
	})

	rotateBtn := widget.NewButton("Rotate +45", func() {
		selected := w.state.Selected()
		if selected == nil {
			return
		}
		if err := w.state.RotateTable(selected.ID, selected.Rotation+45); err != nil {
			w.reportError(err)
		}
	})

	saveBtn := widget.NewButton("Save", func() {
		if err := w.state.Save(w.store, layoutKey); err != nil {
			w.reportError(err)
			return
		}
		w.statusBar.SetText("Saved")
	})

	return container.NewVBox(
		widget.NewLabelWithStyle("Add Table", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		numberEntry,
		seatsSelect,
		addBtn,
		widget.NewSeparator(),
		rotateBtn,
		removeBtn,
		saveBtn,
	)
}

func (w *Window) reportError(err error) {
	w.log.WithError(err).Warn("command rejected")
	dialog.ShowError(err, w)
}

func (w *Window) updateStatus() {
	w.statusBar.SetText(fmt.Sprintf("%d table(s)", len(w.state.Tables())))
}
