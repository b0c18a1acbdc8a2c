package langs

import (
	"fmt"
	"math"
)

// degreesToRadians converts an angle in degrees to radians.
func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// polarToCartesian converts a (radius, angle) pair around a center point to
// x/y coordinates. Angles are in degrees, 0 at 3 o'clock, increasing
// clockwise in SVG's y-down coordinate system.
func polarToCartesian(cx, cy, radius, angleDeg float64) (x, y float64) {
	rad := degreesToRadians(angleDeg)
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

// circumference returns the circumference of a circle with the given radius.
func circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// arcPath builds an SVG arc command between two angles on a circle.
// The large-arc flag is set when the angular span exceeds 180 degrees, so the
// longer way around is drawn instead of the chord-minimizing arc.
func arcPath(cx, cy, radius, startAngle, endAngle float64) string {
	sx, sy := polarToCartesian(cx, cy, radius, startAngle)
	ex, ey := polarToCartesian(cx, cy, radius, endAngle)

	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f",
		sx, sy, radius, radius, largeArc, ex, ey)
}

// wedgePath builds a closed pie-wedge path: center, line to the arc start,
// arc to the end, close.
func wedgePath(cx, cy, radius, startAngle, endAngle float64) string {
	sx, sy := polarToCartesian(cx, cy, radius, startAngle)
	ex, ey := polarToCartesian(cx, cy, radius, endAngle)

	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, sx, sy, radius, radius, largeArc, ex, ey)
}
