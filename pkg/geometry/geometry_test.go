package geometry

import (
	"math"
	"testing"
)

func TestRectOverlapsSymmetric(t *testing.T) {
	cases := []struct {
		name   string
		a, b   Rect
		buffer float64
		want   bool
	}{
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(50, 50, 10, 10), 1, false},
		{"intersecting", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), 1, true},
		{"touching edges zero buffer", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), 0, true},
		{"within buffer", NewRect(0, 0, 10, 10), NewRect(10.5, 0, 10, 10), 1, true},
		{"outside buffer", NewRect(0, 0, 10, 10), NewRect(12, 0, 10, 10), 1, false},
		{"vertical separation", NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 10), 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b, tc.buffer); got != tc.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a, tc.buffer); got != tc.want {
				t.Errorf("Overlaps(b, a) = %v, want %v (not symmetric)", got, tc.want)
			}
		})
	}
}

func TestRectOverlapsSelf(t *testing.T) {
	r := NewRect(3, 4, 20, 15)
	if !r.Overlaps(r, 0) {
		t.Error("a rectangle must overlap itself")
	}
}

func TestPercentRoundTrip(t *testing.T) {
	pixels := []float64{0, 1, 37.5, 400, 799.99}
	dims := []float64{100, 640, 800, 1920.5}

	for _, d := range dims {
		for _, p := range pixels {
			got := FromPercent(ToPercent(p, d), d)
			if math.Abs(got-p) > 1e-9 {
				t.Errorf("round trip for pixel %v dim %v: got %v", p, d, got)
			}
		}
	}
}

func TestGenerateCirclePoints(t *testing.T) {
	points := GenerateCirclePoints(100, 100, 50, 4)
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	center := NewPoint2D(100, 100)
	for i, p := range points {
		if d := p.Distance(center); math.Abs(d-50) > 1e-9 {
			t.Errorf("point %d at distance %v, want 50", i, d)
		}
	}

	// First point sits at angle 0, i.e. directly right of center.
	if math.Abs(points[0].X-150) > 1e-9 || math.Abs(points[0].Y-100) > 1e-9 {
		t.Errorf("point 0 = %+v, want (150, 100)", points[0])
	}
}

func TestRotationAround(t *testing.T) {
	center := NewPoint2D(10, 10)
	tr := RotationAround(math.Pi/2, center)

	got := tr.Apply(NewPoint2D(20, 10))
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-20) > 1e-9 {
		t.Errorf("rotated point = %+v, want (10, 20)", got)
	}

	// The center itself is a fixed point.
	fixed := tr.Apply(center)
	if math.Abs(fixed.X-10) > 1e-9 || math.Abs(fixed.Y-10) > 1e-9 {
		t.Errorf("center moved to %+v", fixed)
	}
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Point2D{{1, 2}, {5, -3}, {-2, 7}})
	want := Rect{X: -2, Y: -3, Width: 7, Height: 10}
	if box != want {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}

	if empty := BoundingBox(nil); empty != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero rect", empty)
	}
}
