package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrDegenerateVector is returned when a zero-length vector is passed
// where a direction is required.
var ErrDegenerateVector = errors.New("degenerate zero-length vector")

// ErrParallelLines is returned by [Line.Intersect] when the two lines
// are parallel (or anti-parallel) and have no unique crossing point.
var ErrParallelLines = errors.New("lines are parallel")

// Line is an infinite line through Origin in direction Dir.
// Dir has unit length; construct lines with [LineThrough] to maintain
// that invariant. Two Line values describe the same line if one
// contains the other's origin and their directions are collinear.
type Line struct {
	Origin Point
	Dir    Vec2
}

// LineThrough returns the infinite line through origin in direction
// dir. The direction is normalized; a zero direction results in
// [ErrDegenerateVector].
func LineThrough(origin Point, dir Vec2) (Line, error) {
	if dir.Hypot() == 0 {
		return Line{}, fmt.Errorf("line through %v: %w", origin, ErrDegenerateVector)
	}
	return Line{
		Origin: origin,
		Dir:    dir.Normalize(),
	}, nil
}

func (l Line) String() string {
	return fmt.Sprintf("line(%v, %v)", l.Origin, l.Dir)
}

// Contains reports whether pt lies on the line. The origin itself is
// trivially contained, as the zero vector is collinear with every
// direction.
func (l Line) Contains(pt Point) bool {
	return l.Origin.Sub(pt).IsCollinear(l.Dir)
}

// Eval returns the point at parameter t along the line, origin + t·dir.
func (l Line) Eval(t float64) Point {
	return l.Origin.Translate(l.Dir.Mul(t))
}

// Intersect computes the unique point lying on both lines.
//
// It solves the two-line parametric system in direction-cosine form:
// with c the cosine of the angle between the directions, the parameter
// along l follows from projecting the origin difference onto both
// directions. When |c| ≈ 1 the lines are parallel and the 1−c²
// denominator vanishes; that case is reported as [ErrParallelLines]
// before any division takes place.
func (l Line) Intersect(o Line) (Point, error) {
	v0 := l.Dir
	v1 := o.Dir

	c := v1.Dot(v0)
	if scalar.EqualWithinAbs(math.Abs(c), 1, epsilon) {
		return Point{}, ErrParallelLines
	}

	delta := o.Origin.Sub(l.Origin)
	d0 := delta.Dot(v0)
	d1 := delta.Dot(v1)
	t0 := (d0 - d1*c) / (1 - c*c)
	return l.Eval(t0), nil
}

// Segment is the bounded straight segment between two points.
type Segment struct {
	Start Point
	End   Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the midpoint of the segment.
func (s Segment) Midpoint() Point {
	return s.Start.Midpoint(s.End)
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Tangent returns the unit vector from Start towards End. Coincident
// endpoints result in [ErrDegenerateVector].
func (s Segment) Tangent() (Vec2, error) {
	chord := s.End.Sub(s.Start)
	if chord.Hypot() == 0 {
		return Vec2{}, fmt.Errorf("tangent of zero-length segment at %v: %w", s.Start, ErrDegenerateVector)
	}
	return chord.Normalize(), nil
}
