package table

import (
	"tableplan/pkg/geometry"
)

// SeatChoices are the seat counts offered by the fixed-coordinate editor.
var SeatChoices = []int{2, 4, 6, 8, 10, 12}

// Table is a fixed-coordinate table: absolute pixel position, footprint
// derived from the seat count.
type Table struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Seats    int     `json:"seats"`
}

// Bounds returns the unrotated axis-aligned bounding box. Rotation is
// deliberately ignored here: collision checks use the unrotated footprint.
func (t *Table) Bounds() geometry.Rect {
	return geometry.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// SetSeats updates the seat count and recomputes the footprint.
func (t *Table) SetSeats(seats int) {
	t.Seats = seats
	size := FootprintForSeats(seats)
	t.Width = size.Width
	t.Height = size.Height
}
