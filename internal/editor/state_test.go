package editor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableplan/internal/blob"
	"tableplan/internal/placement"
	"tableplan/pkg/geometry"
)

func newTestState() *State {
	return NewState(geometry.NewSize(800, 600), rand.New(rand.NewSource(1)))
}

func TestAddTableOnEmptyCanvas(t *testing.T) {
	s := newTestState()

	tbl, err := s.AddTable("T1", 4)
	require.NoError(t, err)

	// Seats=4 gives the 80x80 footprint.
	assert.Equal(t, 80.0, tbl.Width)
	assert.Equal(t, 80.0, tbl.Height)

	// First table keeps the default position; no sampling happens.
	assert.Equal(t, float64(placement.Margin), tbl.X)
	assert.Equal(t, float64(placement.Margin), tbl.Y)
	assert.Len(t, s.Tables(), 1)
}

func TestAddTableValidation(t *testing.T) {
	s := newTestState()

	_, err := s.AddTable("  ", 4)
	assert.ErrorIs(t, err, ErrMissingLabel)

	_, err = s.AddTable("T1", 4)
	require.NoError(t, err)

	_, err = s.AddTable("T1", 6)
	assert.ErrorIs(t, err, ErrDuplicateLabel)
	assert.Len(t, s.Tables(), 1, "rejected add must not change the collection")
}

func TestAddTableAvoidsOverlap(t *testing.T) {
	s := newTestState()

	a, err := s.AddTable("T1", 4)
	require.NoError(t, err)
	b, err := s.AddTable("T2", 4)
	require.NoError(t, err)

	ra := geometry.NewRect(a.X, a.Y, a.Width, a.Height)
	rb := geometry.NewRect(b.X, b.Y, b.Width, b.Height)
	assert.False(t, placement.Overlaps(ra, rb, placement.DefaultBuffer))
}

func TestMoveTableRejectsCollision(t *testing.T) {
	s := newTestState()

	a, err := s.AddTable("T1", 4)
	require.NoError(t, err)
	b, err := s.AddTable("T2", 4)
	require.NoError(t, err)

	origX, origY := b.X, b.Y

	// Relocating B onto A's bounding box is rejected and B stays put.
	err = s.MoveTable(b.ID, a.X, a.Y)
	assert.ErrorIs(t, err, ErrOverlap)

	for _, tbl := range s.Tables() {
		if tbl.ID == b.ID {
			assert.Equal(t, origX, tbl.X)
			assert.Equal(t, origY, tbl.Y)
		}
	}

	// A clear position commits.
	require.NoError(t, s.MoveTable(b.ID, a.X+200, a.Y+200))
}

func TestMoveTableUnknownID(t *testing.T) {
	s := newTestState()
	assert.ErrorIs(t, s.MoveTable("nope", 10, 10), ErrNotFound)
}

func TestSelectTableToggles(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("T1", 2)
	require.NoError(t, err)

	s.SelectTable(tbl.ID)
	assert.Equal(t, tbl.ID, s.SelectedID())

	// Selecting the selected table deselects it.
	s.SelectTable(tbl.ID)
	assert.Equal(t, "", s.SelectedID())
}

func TestRemoveTableClearsSelection(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("T1", 2)
	require.NoError(t, err)

	s.SelectTable(tbl.ID)
	require.NoError(t, s.RemoveTable(tbl.ID))

	assert.Empty(t, s.Tables())
	assert.Equal(t, "", s.SelectedID())
}

func TestRotateTableStoresFreeValue(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("T1", 2)
	require.NoError(t, err)

	// The store accepts any value; snapping is the UI's job.
	require.NoError(t, s.RotateTable(tbl.ID, 47))
	assert.Equal(t, 47.0, s.Tables()[0].Rotation)
}

func TestRenameAndSetSeatsOperateOnSelection(t *testing.T) {
	s := newTestState()
	tbl, err := s.AddTable("T1", 2)
	require.NoError(t, err)
	_, err = s.AddTable("T2", 2)
	require.NoError(t, err)

	// No selection: both commands are no-ops.
	require.NoError(t, s.RenameTable("T9"))
	s.SetSeats(8)
	assert.Equal(t, "T1", s.Tables()[0].Number)
	assert.Equal(t, 2, s.Tables()[0].Seats)

	s.SelectTable(tbl.ID)
	assert.ErrorIs(t, s.RenameTable("T2"), ErrDuplicateLabel)
	require.NoError(t, s.RenameTable("T9"))
	s.SetSeats(8)

	got := s.Tables()[0]
	assert.Equal(t, "T9", got.Number)
	assert.Equal(t, 8, got.Seats)
	assert.Equal(t, 160.0, got.Width)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestState()
	_, err := s.AddTable("T1", 4)
	require.NoError(t, err)
	_, err = s.AddTable("T2", 6)
	require.NoError(t, err)

	store := blob.NewMemStore()
	require.NoError(t, s.Save(store, "main-room"))

	restored := newTestState()
	require.NoError(t, restored.Load(store, "main-room"))

	tables := restored.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "T1", tables[0].Number)
	assert.Equal(t, 6, tables[1].Seats)
}

func TestLoadMalformedBlobFallsBackToEmpty(t *testing.T) {
	store := blob.NewMemStore()
	require.NoError(t, store.Save("broken", []byte("{not json")))

	s := newTestState()
	_, err := s.AddTable("T1", 4)
	require.NoError(t, err)

	require.NoError(t, s.Load(store, "broken"))
	assert.Empty(t, s.Tables())
	assert.Equal(t, "", s.SelectedID())
}

func TestEventsFire(t *testing.T) {
	s := newTestState()

	var tableEvents, selectionEvents int
	s.On(EventTablesChanged, func(interface{}) { tableEvents++ })
	s.On(EventSelectionChanged, func(interface{}) { selectionEvents++ })

	tbl, err := s.AddTable("T1", 4)
	require.NoError(t, err)
	s.SelectTable(tbl.ID)

	assert.Equal(t, 1, tableEvents)
	assert.Equal(t, 1, selectionEvents)
}
