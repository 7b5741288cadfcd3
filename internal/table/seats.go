package table

import (
	"gonum.org/v1/gonum/floats"

	"tableplan/pkg/geometry"
)

// seatRingOffset is the distance between a table's edge and its seat markers,
// before scaling.
const seatRingOffset = 10

// SeatPositions returns seat-marker positions relative to the table center
// for the given shape, size, and seat count. The scale factor stretches the
// footprint and the seat offset together, so markers keep their relative
// distance when the canvas is resized. Markers are decoration only; they play
// no part in collision checks.
func SeatPositions(shape Shape, size Size, seats int, scale float64) []geometry.Point2D {
	if seats <= 0 {
		return nil
	}

	switch shape {
	case ShapeRound:
		radius := (roundRadii[size] + seatRingOffset) * scale
		return geometry.GenerateCirclePoints(0, 0, radius, seats)
	case ShapeRectangle:
		d := rectDims[size]
		return edgeSeatPositions(d.Width*scale, d.Height*scale, seats, seatRingOffset*scale)
	case ShapeSquare:
		side := squareSides[size] * scale
		return squareSeatPositions(side, seats, seatRingOffset*scale)
	}
	return nil
}

// edgeSeatPositions places the first ceil(n/2) seats alternating across the
// two long (horizontal) edges and the remaining floor(n/2) alternating across
// the two short (vertical) edges.
func edgeSeatPositions(width, height float64, seats int, offset float64) []geometry.Point2D {
	longCount := (seats + 1) / 2
	shortCount := seats / 2

	topCount := (longCount + 1) / 2
	bottomCount := longCount / 2
	rightCount := (shortCount + 1) / 2
	leftCount := shortCount / 2

	points := make([]geometry.Point2D, 0, seats)
	for _, x := range interiorSpan(-width/2, width/2, topCount) {
		points = append(points, geometry.Point2D{X: x, Y: -height/2 - offset})
	}
	for _, x := range interiorSpan(-width/2, width/2, bottomCount) {
		points = append(points, geometry.Point2D{X: x, Y: height/2 + offset})
	}
	for _, y := range interiorSpan(-height/2, height/2, rightCount) {
		points = append(points, geometry.Point2D{X: width/2 + offset, Y: y})
	}
	for _, y := range interiorSpan(-height/2, height/2, leftCount) {
		points = append(points, geometry.Point2D{X: -width/2 - offset, Y: y})
	}
	return points
}

// squareSeatPositions divides seats into four groups of ceil(n/4), one group
// per side in top, right, bottom, left order, stopping once n are placed.
func squareSeatPositions(side float64, seats int, offset float64) []geometry.Point2D {
	perSide := (seats + 3) / 4

	points := make([]geometry.Point2D, 0, seats)
	remaining := seats
	for sideIdx := 0; sideIdx < 4 && remaining > 0; sideIdx++ {
		count := perSide
		if count > remaining {
			count = remaining
		}
		for _, c := range interiorSpan(-side/2, side/2, count) {
			var p geometry.Point2D
			switch sideIdx {
			case 0:
				p = geometry.Point2D{X: c, Y: -side/2 - offset}
			case 1:
				p = geometry.Point2D{X: side/2 + offset, Y: c}
			case 2:
				p = geometry.Point2D{X: c, Y: side/2 + offset}
			case 3:
				p = geometry.Point2D{X: -side/2 - offset, Y: c}
			}
			points = append(points, p)
		}
		remaining -= count
	}
	return points
}

// interiorSpan returns count points evenly spaced strictly inside [lo, hi]:
// the interior of a Span over count+2 points, so seats never sit on corners.
func interiorSpan(lo, hi float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	span := floats.Span(make([]float64, count+2), lo, hi)
	return span[1 : count+1]
}
