package floorcanvas

import "testing"

func TestSnapAngle(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{22.4, 0},
		{22.5, 45},
		{47, 45},
		{90, 90},
		{133, 135},
		{359, 0},
		{-45, 315},
		{-10, 0},
		{405, 45},
	}

	for _, tc := range cases {
		if got := SnapAngle(tc.in); got != tc.want {
			t.Errorf("SnapAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
