package game

import (
	"math"

	"github.com/froggyhop/froggyhop/internal/world"
)

// EaseInOutQuad maps t in [0,1] onto a quadratic ease-in-out curve.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// HopLift is the height above RestHeight at hop progress t.
func HopLift(t float64) float64 {
	return math.Sin(t*math.Pi) * ArcHeight
}

// HopPosition returns where the frog is at progress t of a hop from start to
// target. Horizontal motion is eased; the vertical arc depends on t alone and
// ignores the target height, which is only reached when the hop completes.
func HopPosition(start, target world.Vec3, t float64) world.Vec3 {
	e := EaseInOutQuad(t)
	return world.Vec3{
		X: start.X + (target.X-start.X)*e,
		Y: RestHeight + HopLift(t),
		Z: start.Z + (target.Z-start.Z)*e,
	}
}
