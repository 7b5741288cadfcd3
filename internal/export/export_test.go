package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableplan/internal/floor"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

func testLayout() (*floor.Layout, *floor.Floor) {
	canvas := geometry.NewSize(800, 600)
	l := floor.NewLayout("test", canvas)
	f := l.Floors[0]

	t1 := floor.NewTable("", table.ShapeRound, table.SizeMedium, 4)
	t1.XPercent, t1.YPercent = 25, 25
	t2 := floor.NewTable("booth", table.ShapeRectangle, table.SizeLarge, 6)
	t2.XPercent, t2.YPercent = 70, 60
	t2.Rotation = 45
	f.Tables = append(f.Tables, t1, t2)
	return l, f
}

func TestRenderFloorDrawsTables(t *testing.T) {
	l, f := testLayout()
	canvas := geometry.NewSize(800, 600)

	img := RenderFloor(l, f, canvas)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 600, img.Bounds().Dy())

	// The round table's outline must appear at its ring: the pixel directly
	// right of center at the table radius is not background.
	cx, cy := 200, 150 // 25% of 800, 25% of 600
	ring := img.RGBAAt(cx+35, cy)
	assert.NotEqual(t, backgroundColor, ring, "expected outline pixel on the table ring")

	// Center of the round table stays background (outline only).
	assert.Equal(t, backgroundColor, img.RGBAAt(cx, cy))
}

func TestRenderFloorScalesWithCanvas(t *testing.T) {
	l, f := testLayout()

	// Same layout at double size: outline follows the scaled radius.
	img := RenderFloor(l, f, geometry.NewSize(1600, 1200))
	cx, cy := 400, 300
	ring := img.RGBAAt(cx+70, cy)
	assert.NotEqual(t, backgroundColor, ring)
}

func TestWritePNG(t *testing.T) {
	l, f := testLayout()
	img := RenderFloor(l, f, geometry.NewSize(400, 300))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, decoded.Bounds().Dx())
}
