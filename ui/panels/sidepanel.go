// Package panels provides the side panel UI: floor management, the
// add-table form, and the selected-table property sheet.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tableplan/internal/planner"
)

// SidePanel groups the designer's control panels into tabs.
type SidePanel struct {
	container *container.AppTabs

	tablesPanel *TablesPanel
	floorsPanel *FloorsPanel
}

// NewSidePanel creates the side panel bound to a planner store.
func NewSidePanel(state *planner.State, reportError func(error)) *SidePanel {
	sp := &SidePanel{
		tablesPanel: NewTablesPanel(state, reportError),
		floorsPanel: NewFloorsPanel(state, reportError),
	}

	sp.container = container.NewAppTabs(
		container.NewTabItem("Tables", sp.tablesPanel.Container()),
		container.NewTabItem("Floors", sp.floorsPanel.Container()),
	)
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}
