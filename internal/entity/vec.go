package entity

import "math"

// Vec3 is a point in arena coordinates. X runs left/right, Z runs
// toward/away from the camera and Y is height, which is 0 for anything
// standing on the floor.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// PlanarDist returns the distance between v and o on the floor plane,
// ignoring height.
func (v Vec3) PlanarDist(o Vec3) float64 {
	dx := o.X - v.X
	dz := o.Z - v.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Toward returns the point reached by moving from v toward target by at most
// step on the floor plane. It never overshoots.
func (v Vec3) Toward(target Vec3, step float64) Vec3 {
	dist := v.PlanarDist(target)
	if dist == 0 || step >= dist {
		return Vec3{target.X, v.Y, target.Z}
	}
	k := step / dist
	return Vec3{v.X + (target.X-v.X)*k, v.Y, v.Z + (target.Z-v.Z)*k}
}
