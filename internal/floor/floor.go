// Package floor provides the multi-floor, percentage-coordinate layout
// entities: tables positioned as fractions of the canvas, named floors, and
// the persisted Layout document.
package floor

import (
	"time"

	"github.com/google/uuid"

	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

// DefaultFloorName is used for the floor created when no layout exists.
const DefaultFloorName = "Floor 1"

// Table is a percentage-coordinate table. Position is stored as a fraction
// of the canvas dimensions so layouts stay proportionally valid when the
// rendering canvas is resized. There is no overlap enforcement for this
// variant.
type Table struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	XPercent float64     `json:"xPercent"`
	YPercent float64     `json:"yPercent"`
	Seats    int         `json:"seats"`
	Shape    table.Shape `json:"shape"`
	Size     table.Size  `json:"size"`
	Rotation float64     `json:"rotation"`
}

// NewTable creates a table with a fresh ID and sane defaults.
func NewTable(name string, shape table.Shape, size table.Size, seats int) *Table {
	return &Table{
		ID:    uuid.NewString(),
		Name:  name,
		Shape: shape,
		Size:  size,
		Seats: seats,
	}
}

// Center returns the table center in pixels for the given canvas size.
func (t *Table) Center(canvas geometry.Size) geometry.Point2D {
	return geometry.Point2D{
		X: geometry.FromPercent(t.XPercent, canvas.Width),
		Y: geometry.FromPercent(t.YPercent, canvas.Height),
	}
}

// SetCenter stores a pixel position as canvas percentages.
func (t *Table) SetCenter(p geometry.Point2D, canvas geometry.Size) {
	t.XPercent = geometry.ToPercent(p.X, canvas.Width)
	t.YPercent = geometry.ToPercent(p.Y, canvas.Height)
}

// Floor is a named, independent collection of tables.
type Floor struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Tables []*Table `json:"tables"`
}

// NewFloor creates an empty floor with a fresh ID.
func NewFloor(name string) *Floor {
	return &Floor{
		ID:     uuid.NewString(),
		Name:   name,
		Tables: make([]*Table, 0),
	}
}

// FindTable returns the table with the given ID, or nil.
func (f *Floor) FindTable(id string) *Table {
	for _, t := range f.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTable deletes the table with the given ID. Returns true if found.
func (f *Floor) RemoveTable(id string) bool {
	for i, t := range f.Tables {
		if t.ID == id {
			f.Tables = append(f.Tables[:i], f.Tables[i+1:]...)
			return true
		}
	}
	return false
}

// Dimensions records the canvas size at the time a layout was saved.
type Dimensions struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
}

// NewDimensions derives Dimensions from a canvas size.
func NewDimensions(canvas geometry.Size) Dimensions {
	d := Dimensions{Width: canvas.Width, Height: canvas.Height}
	if canvas.Height > 0 {
		d.AspectRatio = canvas.Width / canvas.Height
	}
	return d
}

// Layout is the persisted unit: all floors plus the canvas dimensions at
// save time.
type Layout struct {
	Version    int        `json:"version"`
	Name       string     `json:"name"`
	Created    time.Time  `json:"created,omitempty"`
	Modified   time.Time  `json:"modified,omitempty"`
	Floors     []*Floor   `json:"floors"`
	Dimensions Dimensions `json:"dimensions"`
}

// NewLayout creates a layout with a single default floor.
func NewLayout(name string, canvas geometry.Size) *Layout {
	now := time.Now()
	return &Layout{
		Version:    1,
		Name:       name,
		Created:    now,
		Modified:   now,
		Floors:     []*Floor{NewFloor(DefaultFloorName)},
		Dimensions: NewDimensions(canvas),
	}
}

// FindFloor returns the floor with the given ID, or nil.
func (l *Layout) FindFloor(id string) *Floor {
	for _, f := range l.Floors {
		if f.ID == id {
			return f
		}
	}
	return nil
}
