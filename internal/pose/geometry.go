package pose

import "math"

// Angle returns the angle at vertex b formed by points a, b and c,
// in degrees, using full 3D coordinates. Returns 0 when either of the
// two vectors is degenerate.
func Angle(a, b, c Landmark) float64 {
	v1x, v1y, v1z := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	v2x, v2y, v2z := c.X-b.X, c.Y-b.Y, c.Z-b.Z

	mag1 := math.Sqrt(v1x*v1x + v1y*v1y + v1z*v1z)
	mag2 := math.Sqrt(v2x*v2x + v2y*v2y + v2z*v2z)
	if mag1 == 0 || mag2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y + v1z*v2z) / (mag1 * mag2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// Angle2D returns the angle at vertex b formed by points a, b and c,
// in degrees, projected on the image plane. The result is reflected
// into the [0, 180] range.
func Angle2D(a, b, c Landmark) float64 {
	angle := math.Abs(math.Atan2(c.Y-b.Y, c.X-b.X)-math.Atan2(a.Y-b.Y, a.X-b.X)) * 180 / math.Pi
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}
