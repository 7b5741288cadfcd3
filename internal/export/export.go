// Package export renders a floor of a layout to a raster image for sharing
// outside the editor. Rendering here is deliberately simple software
// rasterization: outlines, seat markers, and labels.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tableplan/internal/floor"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

var (
	backgroundColor = color.RGBA{250, 250, 247, 255}
	tableColor      = color.RGBA{66, 66, 66, 255}
	seatColor       = color.RGBA{120, 144, 156, 255}
	labelColor      = color.RGBA{33, 33, 33, 255}
)

const seatMarkerRadius = 4

// RenderFloor draws one floor of a layout onto a fresh canvas of the given
// size. Percent coordinates are resolved against that size; shape footprints
// are scaled relative to the dimensions recorded at save time.
func RenderFloor(l *floor.Layout, f *floor.Floor, canvas geometry.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(canvas.Width), int(canvas.Height)))
	fill(img, backgroundColor)

	scale := 1.0
	if l.Dimensions.Width > 0 {
		scale = canvas.Width / l.Dimensions.Width
	}

	for _, t := range f.Tables {
		drawTable(img, t, canvas, scale)
	}
	return img
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// SavePNG renders a floor and writes it to a file.
func SavePNG(path string, l *floor.Layout, f *floor.Floor, canvas geometry.Size) error {
	img := RenderFloor(l, f, canvas)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WritePNG(out, img)
}

func drawTable(img *image.RGBA, t *floor.Table, canvas geometry.Size, scale float64) {
	center := t.Center(canvas)
	rotation := geometry.RotationAround(t.Rotation*math.Pi/180, center)

	switch t.Shape {
	case table.ShapeRound:
		radius := table.Radius(t.Shape, t.Size) * scale
		drawCircleOutline(img, center, radius, tableColor)
	default:
		d := table.Dimensions(t.Shape, t.Size)
		w := d.Width * scale / 2
		h := d.Height * scale / 2
		corners := []geometry.Point2D{
			{X: center.X - w, Y: center.Y - h},
			{X: center.X + w, Y: center.Y - h},
			{X: center.X + w, Y: center.Y + h},
			{X: center.X - w, Y: center.Y + h},
		}
		for i := range corners {
			corners[i] = rotation.Apply(corners[i])
		}
		for i := range corners {
			next := corners[(i+1)%len(corners)]
			drawLine(img, corners[i], next, tableColor)
		}
	}

	for _, seat := range table.SeatPositions(t.Shape, t.Size, t.Seats, scale) {
		p := rotation.Apply(center.Add(seat))
		drawFilledCircle(img, p, seatMarkerRadius, seatColor)
	}

	if t.Name != "" {
		drawLabel(img, t.Name, center)
	}
}

func fill(img *image.RGBA, col color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawLine draws a one-pixel line using Bresenham's algorithm.
func drawLine(img *image.RGBA, from, to geometry.Point2D, col color.RGBA) {
	x1, y1 := int(math.Round(from.X)), int(math.Round(from.Y))
	x2, y2 := int(math.Round(to.X)), int(math.Round(to.Y))
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func drawCircleOutline(img *image.RGBA, center geometry.Point2D, radius float64, col color.RGBA) {
	bounds := img.Bounds()
	r2 := radius * radius
	inner := (radius - 2) * (radius - 2)

	minX, maxX := int(center.X-radius-1), int(center.X+radius+1)
	minY, maxY := int(center.Y-radius-1), int(center.Y+radius+1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !image.Pt(x, y).In(bounds) {
				continue
			}
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			dist2 := dx*dx + dy*dy
			if dist2 <= r2 && dist2 >= inner {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func drawFilledCircle(img *image.RGBA, center geometry.Point2D, radius float64, col color.RGBA) {
	bounds := img.Bounds()
	r2 := radius * radius

	minX, maxX := int(center.X-radius-1), int(center.X+radius+1)
	minY, maxY := int(center.Y-radius-1), int(center.Y+radius+1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !image.Pt(x, y).In(bounds) {
				continue
			}
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLabel draws text centered on the given point with the fixed 7x13 face.
func drawLabel(img *image.RGBA, text string, center geometry.Point2D) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot: fixed.P(
			int(center.X)-width/2,
			int(center.Y)+face.Metrics().Ascent.Ceil()/2,
		),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
