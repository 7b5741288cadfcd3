// Package table provides table entities, shape/size enumerations, and
// seat-marker geometry for the floor-plan editors.
package table

import (
	"tableplan/pkg/geometry"
)

// Shape identifies the visual footprint of a table.
type Shape string

const (
	ShapeRound     Shape = "round"
	ShapeRectangle Shape = "rectangle"
	ShapeSquare    Shape = "square"
)

// Size selects one of three fixed footprints per shape.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Valid reports whether the shape is one of the known values.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRound, ShapeRectangle, ShapeSquare:
		return true
	}
	return false
}

// Valid reports whether the size is one of the known values.
func (z Size) Valid() bool {
	switch z {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// roundRadii maps size to the radius of a round table.
var roundRadii = map[Size]float64{
	SizeSmall:  25,
	SizeMedium: 35,
	SizeLarge:  45,
}

// rectDims maps size to width x height of a rectangular table.
var rectDims = map[Size]geometry.Size{
	SizeSmall:  {Width: 60, Height: 35},
	SizeMedium: {Width: 80, Height: 45},
	SizeLarge:  {Width: 100, Height: 55},
}

// squareSides maps size to the side length of a square table.
var squareSides = map[Size]float64{
	SizeSmall:  40,
	SizeMedium: 55,
	SizeLarge:  70,
}

// Radius returns the radius for a round table of the given size.
// For non-round shapes it returns half the larger footprint dimension.
func Radius(shape Shape, size Size) float64 {
	if shape == ShapeRound {
		return roundRadii[size]
	}
	d := Dimensions(shape, size)
	if d.Width > d.Height {
		return d.Width / 2
	}
	return d.Height / 2
}

// Dimensions returns the unrotated footprint of a shape/size pair.
func Dimensions(shape Shape, size Size) geometry.Size {
	switch shape {
	case ShapeRound:
		r := roundRadii[size]
		return geometry.Size{Width: 2 * r, Height: 2 * r}
	case ShapeRectangle:
		return rectDims[size]
	case ShapeSquare:
		side := squareSides[size]
		return geometry.Size{Width: side, Height: side}
	}
	return geometry.Size{}
}

// FootprintForSeats returns the fixed-coordinate table footprint derived
// from its seat count.
func FootprintForSeats(seats int) geometry.Size {
	switch {
	case seats <= 2:
		return geometry.Size{Width: 60, Height: 60}
	case seats <= 4:
		return geometry.Size{Width: 80, Height: 80}
	case seats <= 6:
		return geometry.Size{Width: 120, Height: 80}
	case seats <= 8:
		return geometry.Size{Width: 160, Height: 80}
	default:
		return geometry.Size{Width: 200, Height: 80}
	}
}
