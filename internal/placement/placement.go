// Package placement provides the collision and placement engine: buffered
// bounding-box overlap tests, drag-move validation, and best-effort random
// placement with rejection sampling.
package placement

import (
	"math/rand"

	"tableplan/pkg/geometry"
)

const (
	// DefaultBuffer is the minimum clearance between table bounding boxes.
	DefaultBuffer = 1

	// DefaultMaxAttempts bounds the rejection-sampling loop.
	DefaultMaxAttempts = 50

	// Margin keeps randomly placed tables away from the canvas edges.
	Margin = 50
)

// Overlaps reports whether the buffered bounding boxes of a and b intersect.
// Rotation is ignored: both boxes are the unrotated footprints. That is a
// known simplification of this editor, not an oversight.
func Overlaps(a, b geometry.Rect, buffer float64) bool {
	return a.Overlaps(b, buffer)
}

// OverlapsAny reports whether r overlaps any rectangle in others.
func OverlapsAny(r geometry.Rect, others []geometry.Rect, buffer float64) bool {
	for _, o := range others {
		if r.Overlaps(o, buffer) {
			return true
		}
	}
	return false
}

// CanMove reports whether a table may be committed at its proposed bounds,
// i.e. the move collides with none of the other tables.
func CanMove(proposed geometry.Rect, others []geometry.Rect, buffer float64) bool {
	return !OverlapsAny(proposed, others, buffer)
}

// Placer searches for non-overlapping positions on a canvas. The random
// source is injected so placement can be made deterministic in tests.
type Placer struct {
	Canvas      geometry.Size
	Buffer      float64
	MaxAttempts int
	rng         *rand.Rand
}

// NewPlacer creates a placer with the default buffer and attempt bound.
func NewPlacer(canvas geometry.Size, rng *rand.Rand) *Placer {
	return &Placer{
		Canvas:      canvas,
		Buffer:      DefaultBuffer,
		MaxAttempts: DefaultMaxAttempts,
		rng:         rng,
	}
}

// FindFreePosition returns a position for a table with candidate's footprint.
// With no existing tables the candidate keeps its position as-is. Otherwise
// up to MaxAttempts positions are drawn uniformly from the margined canvas
// area; the first collision-free draw wins. If every attempt collides, the
// last draw is returned anyway: placement is best effort and never fails,
// the overlap simply persists.
func (p *Placer) FindFreePosition(candidate geometry.Rect, existing []geometry.Rect) geometry.Point2D {
	if len(existing) == 0 {
		return geometry.Point2D{X: candidate.X, Y: candidate.Y}
	}

	var pos geometry.Point2D
	for i := 0; i < p.MaxAttempts; i++ {
		pos = p.randomPosition(candidate.Width, candidate.Height)
		trial := geometry.Rect{X: pos.X, Y: pos.Y, Width: candidate.Width, Height: candidate.Height}
		if !OverlapsAny(trial, existing, p.Buffer) {
			return pos
		}
	}
	return pos
}

// randomPosition draws uniformly from [Margin, W-w-Margin) x [Margin, H-h-Margin).
func (p *Placer) randomPosition(w, h float64) geometry.Point2D {
	return geometry.Point2D{
		X: uniform(p.rng, Margin, p.Canvas.Width-w-Margin),
		Y: uniform(p.rng, Margin, p.Canvas.Height-h-Margin),
	}
}

// uniform draws from [lo, hi), falling back to lo when the range is empty
// (table wider than the margined canvas).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
