package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// angleTo returns the bearing from a to b.
func angleTo(a, b r2.Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// fromAngle returns a vector of length mag at angle.
func fromAngle(angle, mag float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// distanceSq returns the squared distance between two points.
func distanceSq(a, b r2.Vec) float64 {
	d := r2.Sub(a, b)
	return d.X*d.X + d.Y*d.Y
}

// ClampToWorld pulls a circle back inside the world disc by radial projection.
func ClampToWorld(pos r2.Vec, radius, worldRadius float64) r2.Vec {
	limit := worldRadius - radius
	d := r2.Norm(pos)
	if d <= limit || d == 0 {
		return pos
	}
	return r2.Scale(limit/d, pos)
}

// pushAway moves pos by dist along the bearing from origin.
func pushAway(pos, origin r2.Vec, dist float64) r2.Vec {
	return r2.Add(pos, fromAngle(angleTo(origin, pos), dist))
}
