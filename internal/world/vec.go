package world

import "math"

// Vec3 is a point in pond space. Y is up; the water plane is Y=0.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Horizontal returns the length of v projected onto the water plane.
func (v Vec3) Horizontal() float64 {
	return math.Hypot(v.X, v.Z)
}

// AtHeight returns v with Y replaced.
func (v Vec3) AtHeight(y float64) Vec3 {
	return Vec3{v.X, y, v.Z}
}
