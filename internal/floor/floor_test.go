package floor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

func TestTableCenterRoundTrip(t *testing.T) {
	canvas := geometry.NewSize(800, 600)

	tbl := NewTable("window", table.ShapeRound, table.SizeMedium, 4)
	tbl.SetCenter(geometry.Point2D{X: 200, Y: 150}, canvas)

	assert.InDelta(t, 25, tbl.XPercent, 1e-9)
	assert.InDelta(t, 25, tbl.YPercent, 1e-9)

	c := tbl.Center(canvas)
	assert.InDelta(t, 200, c.X, 1e-9)
	assert.InDelta(t, 150, c.Y, 1e-9)

	// Same percentages resolve to new pixels on a resized canvas.
	c = tbl.Center(geometry.NewSize(1600, 1200))
	assert.InDelta(t, 400, c.X, 1e-9)
	assert.InDelta(t, 300, c.Y, 1e-9)
}

func TestFloorFindAndRemove(t *testing.T) {
	f := NewFloor("Terrace")
	a := NewTable("a", table.ShapeRound, table.SizeSmall, 2)
	b := NewTable("b", table.ShapeSquare, table.SizeLarge, 8)
	f.Tables = append(f.Tables, a, b)

	assert.Equal(t, a, f.FindTable(a.ID))
	assert.Nil(t, f.FindTable("missing"))

	assert.True(t, f.RemoveTable(a.ID))
	assert.False(t, f.RemoveTable(a.ID))
	require.Len(t, f.Tables, 1)
	assert.Equal(t, b.ID, f.Tables[0].ID)
}

func TestNewLayoutHasDefaultFloor(t *testing.T) {
	l := NewLayout("Bistro", geometry.NewSize(800, 600))

	require.Len(t, l.Floors, 1)
	assert.Equal(t, DefaultFloorName, l.Floors[0].Name)
	assert.Equal(t, 1, l.Version)
	assert.InDelta(t, 800.0/600.0, l.Dimensions.AspectRatio, 1e-9)

	assert.Equal(t, l.Floors[0], l.FindFloor(l.Floors[0].ID))
	assert.Nil(t, l.FindFloor("missing"))
}

func TestLayoutJSONShape(t *testing.T) {
	l := NewLayout("Bistro", geometry.NewSize(800, 600))
	tbl := NewTable("bar", table.ShapeRectangle, table.SizeMedium, 6)
	l.Floors[0].Tables = append(l.Floors[0].Tables, tbl)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got Layout
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Floors, 1)
	require.Len(t, got.Floors[0].Tables, 1)
	assert.Equal(t, tbl.ID, got.Floors[0].Tables[0].ID)
	assert.Equal(t, table.ShapeRectangle, got.Floors[0].Tables[0].Shape)
}
