package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tableplan/internal/floor"
	"tableplan/internal/planner"
)

// FloorsPanel lists the layout's floors and offers add/rename/remove.
type FloorsPanel struct {
	state       *planner.State
	reportError func(error)

	floors []*floor.Floor
	list   *widget.List
	box    *fyne.Container
}

// NewFloorsPanel creates the floors panel.
func NewFloorsPanel(state *planner.State, reportError func(error)) *FloorsPanel {
	fp := &FloorsPanel{
		state:       state,
		reportError: reportError,
	}

	fp.list = widget.NewList(
		func() int { return len(fp.floors) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i < len(fp.floors) {
				obj.(*widget.Label).SetText(fp.floors[i].Name)
			}
		},
	)
	fp.list.OnSelected = func(i widget.ListItemID) {
		// Select is also called from refresh; only switch on real changes,
		// otherwise the change event would re-enter refresh forever.
		if i < len(fp.floors) && fp.floors[i].ID != state.ActiveFloorID() {
			if err := state.SwitchFloor(fp.floors[i].ID); err != nil {
				reportError(err)
			}
		}
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Floor name")

	addBtn := widget.NewButton("Add Floor", func() {
		if _, err := state.AddFloor(nameEntry.Text); err != nil {
			reportError(err)
			return
		}
		nameEntry.SetText("")
	})

	renameBtn := widget.NewButton("Rename Active", func() {
		if err := state.RenameFloor(state.ActiveFloorID(), nameEntry.Text); err != nil {
			reportError(err)
			return
		}
		nameEntry.SetText("")
	})

	removeBtn := widget.NewButton("Remove Active", func() {
		if err := state.RemoveFloor(state.ActiveFloorID()); err != nil {
			reportError(err)
		}
	})

	fp.box = container.NewBorder(
		container.NewVBox(nameEntry, addBtn, renameBtn, removeBtn),
		nil, nil, nil,
		fp.list,
	)

	state.On(planner.EventFloorsChanged, func(interface{}) { fp.refresh() })
	fp.refresh()
	return fp
}

// Container returns the panel container.
func (fp *FloorsPanel) Container() fyne.CanvasObject {
	return fp.box
}

func (fp *FloorsPanel) refresh() {
	fp.floors = fp.state.Floors()
	active := fp.state.ActiveFloorID()
	fp.list.Refresh()
	for i, f := range fp.floors {
		if f.ID == active {
			fp.list.Select(i)
			break
		}
	}
}
