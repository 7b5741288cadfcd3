// Package mainwindow provides the main application window for the
// multi-floor designer.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"tableplan/internal/blob"
	"tableplan/internal/export"
	"tableplan/internal/planner"
	"tableplan/internal/version"
	"tableplan/ui/floorcanvas"
	"tableplan/ui/panels"
	"tableplan/ui/prefs"
)

const (
	prefKeyLastLayout = "lastLayout"
	prefKeyWinWidth   = "windowWidth"
	prefKeyWinHeight  = "windowHeight"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *planner.State
	store blob.Store
	prefs *prefs.Prefs
	log   *logrus.Logger

	canvas    *floorcanvas.FloorCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	layoutKey string
}

// New creates the main window.
func New(fyneApp fyne.App, state *planner.State, store blob.Store, p *prefs.Prefs, log *logrus.Logger) *MainWindow {
	w := &MainWindow{
		Window:    fyneApp.NewWindow("Table Plan"),
		app:       fyneApp,
		state:     state,
		store:     store,
		prefs:     p,
		log:       log,
		statusBar: widget.NewLabel("Ready"),
		layoutKey: p.String(prefKeyLastLayout, "default"),
	}

	w.canvas = floorcanvas.New(state)
	w.sidePanel = panels.NewSidePanel(state, w.reportError)

	split := container.NewHSplit(w.canvas, w.sidePanel.Container())
	split.SetOffset(0.75)

	w.SetContent(container.NewBorder(nil, w.statusBar, nil, nil, split))
	w.SetMainMenu(w.buildMenu())

	w.Resize(fyne.NewSize(
		float32(p.Float(prefKeyWinWidth, 1100)),
		float32(p.Float(prefKeyWinHeight, 700)),
	))
	w.SetCloseIntercept(func() {
		w.savePreferences()
		w.Close()
	})

	state.On(planner.EventFloorsChanged, func(interface{}) { w.updateStatus() })
	state.On(planner.EventLayoutChanged, func(interface{}) { w.updateStatus() })

	if err := state.Load(store, w.layoutKey); err != nil {
		log.WithError(err).Warn("could not load last layout")
	}
	w.updateStatus()
	return w
}

func (w *MainWindow) buildMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout...", w.newLayout),
		fyne.NewMenuItem("Open Layout...", w.openLayout),
		fyne.NewMenuItem("Save", w.saveLayout),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", w.exportPNG),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("Table Plan",
				fmt.Sprintf("Table Plan %s", version.Version), w)
		}),
	)
	return fyne.NewMainMenu(fileMenu, helpMenu)
}

func (w *MainWindow) newLayout() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Layout name")
	dialog.ShowForm("New Layout", "Create", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if !ok || entry.Text == "" {
				return
			}
			w.layoutKey = entry.Text
			// Loading an absent key resets the state to a single
			// default floor.
			if err := w.state.Load(w.store, w.layoutKey); err != nil {
				w.reportError(err)
				return
			}
			w.setStatus(fmt.Sprintf("Created layout %q", w.layoutKey))
		}, w)
}

func (w *MainWindow) openLayout() {
	keys, err := w.store.Keys()
	if err != nil {
		w.reportError(err)
		return
	}
	if len(keys) == 0 {
		dialog.ShowInformation("Open Layout", "No saved layouts found.", w)
		return
	}

	sel := widget.NewSelect(keys, nil)
	sel.SetSelected(keys[0])
	dialog.ShowForm("Open Layout", "Open", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Layout", sel)},
		func(ok bool) {
			if !ok || sel.Selected == "" {
				return
			}
			w.layoutKey = sel.Selected
			if err := w.state.Load(w.store, w.layoutKey); err != nil {
				w.reportError(err)
				return
			}
			w.setStatus(fmt.Sprintf("Opened layout %q", w.layoutKey))
		}, w)
}

func (w *MainWindow) saveLayout() {
	if err := w.state.Save(w.store, w.layoutKey); err != nil {
		w.reportError(err)
		return
	}
	w.prefs.SetString(prefKeyLastLayout, w.layoutKey)
	w.log.WithField("layout", w.layoutKey).Info("layout saved")
	w.setStatus(fmt.Sprintf("Saved layout %q", w.layoutKey))
}

func (w *MainWindow) exportPNG() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			w.reportError(err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		snapshot := w.state.Snapshot()
		active := w.state.ActiveFloorID()
		target := snapshot.Floors[0]
		for _, f := range snapshot.Floors {
			if f.ID == active {
				target = f
				break
			}
		}

		img := export.RenderFloor(snapshot, target, w.state.Canvas())
		if err := export.WritePNG(writer, img); err != nil {
			w.reportError(err)
			return
		}
		w.setStatus(fmt.Sprintf("Exported floor %q", target.Name))
	}, w)
}

// reportError surfaces a rejected command without changing any state.
func (w *MainWindow) reportError(err error) {
	w.log.WithError(err).Warn("command rejected")
	dialog.ShowError(err, w)
}

func (w *MainWindow) updateStatus() {
	f := w.state.ActiveFloor()
	if f == nil {
		return
	}
	w.setStatus(fmt.Sprintf("%s — %s: %d table(s)", w.layoutKey, f.Name, len(f.Tables)))
}

func (w *MainWindow) setStatus(msg string) {
	w.statusBar.SetText(msg)
}

func (w *MainWindow) savePreferences() {
	size := w.Canvas().Size()
	w.prefs.SetFloat(prefKeyWinWidth, float64(size.Width))
	w.prefs.SetFloat(prefKeyWinHeight, float64(size.Height))
	w.prefs.SetString(prefKeyLastLayout, w.layoutKey)
	if err := w.prefs.Save(); err != nil {
		w.log.WithError(err).Warn("could not save preferences")
	}
}
