package floorcanvas

import "math"

// SnapAngle rounds a rotation to the nearest 45 degree step, normalized to
// [0, 360). The store accepts free values; snapping happens here, before a
// RotateTable call.
func SnapAngle(degrees float64) float64 {
	snapped := math.Round(degrees/45) * 45
	snapped = math.Mod(snapped, 360)
	if snapped < 0 {
		snapped += 360
	}
	return snapped
}
