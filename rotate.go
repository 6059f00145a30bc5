package geom

// RotateToAxis rotates v by the negated angle of axis, mapping the
// axis direction onto the positive x axis. The axis is normalized
// first; its x component then serves as the cosine and its negated y
// component as the sine of the rotation. A zero axis produces a NaN
// vector (same contract as [Vec2.Normalize]).
func RotateToAxis(v, axis Vec2) Vec2 {
	a := axis.Normalize()
	cos := a.X
	sin := -a.Y
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect mirrors v across the line through the origin in direction
// axis. It rotates v into the axis-aligned frame, negates the y
// component there, and rotates back using the y-negated axis. A zero
// axis produces a NaN vector.
func Reflect(v, axis Vec2) Vec2 {
	m := RotateToAxis(v, axis)
	m.Y = -m.Y
	return RotateToAxis(m, Vec2{X: axis.X, Y: -axis.Y})
}
