package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableplan/internal/blob"
	"tableplan/internal/floor"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

func newTestState() *State {
	return NewState("test-layout", geometry.NewSize(800, 600))
}

func TestNewStateHasDefaultFloor(t *testing.T) {
	s := newTestState()

	floors := s.Floors()
	require.Len(t, floors, 1)
	assert.Equal(t, floor.DefaultFloorName, floors[0].Name)
	assert.Equal(t, floors[0].ID, s.ActiveFloorID())
}

func TestRemoveLastFloorRejected(t *testing.T) {
	s := newTestState()

	err := s.RemoveFloor(s.ActiveFloorID())
	assert.ErrorIs(t, err, ErrLastFloor)
	assert.Len(t, s.Floors(), 1, "rejected removal must not change floors")
}

func TestRemoveActiveFloorSwitchesToFirst(t *testing.T) {
	s := newTestState()
	first := s.ActiveFloorID()

	second, err := s.AddFloor("Terrace")
	require.NoError(t, err)
	assert.Equal(t, second.ID, s.ActiveFloorID(), "new floor becomes active")

	// Put a table on the active floor, then remove the floor under it.
	tbl, err := s.AddTable("window", table.ShapeRound, table.SizeMedium, 4)
	require.NoError(t, err)
	s.SelectTable(tbl.ID)

	require.NoError(t, s.RemoveFloor(second.ID))
	assert.Equal(t, first, s.ActiveFloorID())
	assert.Equal(t, "", s.SelectedID(), "selection cleared with its floor")
	assert.Len(t, s.Floors(), 1, "floor removal cascades to its tables")
}

func TestAddFloorValidation(t *testing.T) {
	s := newTestState()
	_, err := s.AddFloor("   ")
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestAddTableDefaults(t *testing.T) {
	s := newTestState()

	tbl, err := s.AddTable("", "hexagon", "huge", 99)
	require.NoError(t, err)

	// Unknown enums and out-of-range seats are normalized.
	assert.Equal(t, table.ShapeRound, tbl.Shape)
	assert.Equal(t, table.SizeMedium, tbl.Size)
	assert.Equal(t, MaxSeats, tbl.Seats)

	// New tables land at the canvas center.
	assert.Equal(t, 50.0, tbl.XPercent)
	assert.Equal(t, 50.0, tbl.YPercent)
}

func TestMoveTableConvertsToPercent(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("corner", table.ShapeSquare, table.SizeSmall, 2)
	require.NoError(t, err)

	require.NoError(t, s.MoveTable(tbl.ID, 200, 150))

	got := s.ActiveFloor().FindTable(tbl.ID)
	require.NotNil(t, got)
	assert.InDelta(t, 25.0, got.XPercent, 1e-9)
	assert.InDelta(t, 25.0, got.YPercent, 1e-9)

	// Pixel position follows the canvas size, percentages do not.
	s.SetCanvas(geometry.NewSize(1600, 1200))
	center := s.ActiveFloor().FindTable(tbl.ID).Center(s.Canvas())
	assert.InDelta(t, 400.0, center.X, 1e-9)
	assert.InDelta(t, 300.0, center.Y, 1e-9)
}

func TestMoveNeverRejects(t *testing.T) {
	s := newTestState()
	a, err := s.AddTable("a", table.ShapeRound, table.SizeMedium, 4)
	require.NoError(t, err)
	b, err := s.AddTable("b", table.ShapeRound, table.SizeMedium, 4)
	require.NoError(t, err)

	// Both tables on the same spot: this variant has no overlap check.
	require.NoError(t, s.MoveTable(a.ID, 400, 300))
	require.NoError(t, s.MoveTable(b.ID, 400, 300))
}

func TestSelectionToggleAndFieldEdits(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("", table.ShapeRound, table.SizeMedium, 4)
	require.NoError(t, err)

	// Field edits without a selection are no-ops.
	s.RenameTable("head table")
	s.SetSeats(6)
	s.SetShape(table.ShapeSquare)
	s.SetSize(table.SizeLarge)
	got := s.ActiveFloor().FindTable(tbl.ID)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, 4, got.Seats)

	s.SelectTable(tbl.ID)
	s.RenameTable("head table")
	s.SetSeats(6)
	s.SetShape(table.ShapeSquare)
	s.SetSize(table.SizeLarge)

	got = s.Selected()
	require.NotNil(t, got)
	assert.Equal(t, "head table", got.Name)
	assert.Equal(t, 6, got.Seats)
	assert.Equal(t, table.ShapeSquare, got.Shape)
	assert.Equal(t, table.SizeLarge, got.Size)

	// Toggling the selected table deselects it.
	s.SelectTable(tbl.ID)
	assert.Nil(t, s.Selected())
}

func TestRemoveTableClearsSelection(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("", table.ShapeRound, table.SizeMedium, 2)
	require.NoError(t, err)

	s.SelectTable(tbl.ID)
	require.NoError(t, s.RemoveTable(tbl.ID))
	assert.Equal(t, "", s.SelectedID())
	assert.Empty(t, s.ActiveFloor().Tables)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestState()
	_, err := s.AddFloor("Terrace")
	require.NoError(t, err)
	_, err = s.AddTable("outside", table.ShapeRectangle, table.SizeLarge, 8)
	require.NoError(t, err)

	store := blob.NewMemStore()
	require.NoError(t, s.Save(store, "summer"))

	restored := NewState("summer", geometry.NewSize(1024, 768))
	require.NoError(t, restored.Load(store, "summer"))

	floors := restored.Floors()
	require.Len(t, floors, 2)
	assert.Equal(t, "Terrace", floors[1].Name)
	require.Len(t, floors[1].Tables, 1)
	assert.Equal(t, table.ShapeRectangle, floors[1].Tables[0].Shape)

	// Dimensions were stamped at save time with the saving canvas.
	// The restored state keeps its own canvas for conversions.
	assert.Equal(t, 1024.0, restored.Canvas().Width)
}

func TestLoadMissingFloorsFallsBackToDefault(t *testing.T) {
	store := blob.NewMemStore()
	// A blob without the floors field is treated as absent.
	require.NoError(t, store.Save("broken", []byte(`{"name":"broken"}`)))

	s := newTestState()
	require.NoError(t, s.Load(store, "broken"))

	floors := s.Floors()
	require.Len(t, floors, 1)
	assert.Equal(t, floor.DefaultFloorName, floors[0].Name)
	assert.Empty(t, floors[0].Tables)
}

func TestLoadMalformedBlobFallsBackToDefault(t *testing.T) {
	store := blob.NewMemStore()
	require.NoError(t, store.Save("garbage", []byte("][ not json")))

	s := newTestState()
	require.NoError(t, s.Load(store, "garbage"))
	require.Len(t, s.Floors(), 1)
	assert.Equal(t, floor.DefaultFloorName, s.Floors()[0].Name)
}

func TestHighlightTarget(t *testing.T) {
	a := &floor.Table{ID: "a"}
	b := &floor.Table{ID: "b"}
	tables := []*floor.Table{a, b}

	assert.Nil(t, HighlightTarget("", tables))
	assert.Nil(t, HighlightTarget("gone", tables))
	assert.Equal(t, b, HighlightTarget("b", tables))
}

func TestRotationStoredFreeForm(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("", table.ShapeRound, table.SizeMedium, 4)
	require.NoError(t, err)

	require.NoError(t, s.RotateTable(tbl.ID, 222.5))
	got := s.ActiveFloor().FindTable(tbl.ID)
	assert.True(t, math.Abs(got.Rotation-222.5) < 1e-12)
}
