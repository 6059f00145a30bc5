package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrZeroRadius is returned when an arc's radius resolves to zero even
// though its endpoints are distinct.
var ErrZeroRadius = errors.New("arc radius resolved to zero")

// ErrAngleDomain is returned when an asin/acos argument falls outside
// [-1, 1] by more than the floating-point tolerance, indicating
// inconsistent geometric inputs.
var ErrAngleDomain = errors.New("angle argument outside [-1, 1]")

// Arc is a circular arc through Start and End with the given tangent
// directions at each endpoint. Center, Radius, Angle, and Length are
// derived at construction by [FitArc] or [FitArcSymmetric]; an Arc is
// immutable thereafter.
//
// Angle is the central angle subtended by the chord,
// 2·asin(chord/(2·Radius)). When the endpoints coincide it falls back
// to the unsigned angle between the two tangents, acos(t0·t1).
//
// Length is Angle · π · Radius. This differs from the textbook arc
// length (Angle · Radius) by a factor of π; existing consumers depend
// on the produced values, so the formula is kept as is.
type Arc struct {
	Start        Point
	End          Point
	StartTangent Vec2
	EndTangent   Vec2

	Center Point
	Radius float64
	Angle  float64
	Length float64
}

// FitArc computes the circular arc through start and end whose tangent
// directions at those points are startTangent and endTangent.
//
// The center is found by intersecting the two radial lines, each
// perpendicular to a tangent at its endpoint. If the radials are
// parallel (the tangents are parallel or anti-parallel, so the arc
// degenerates towards a straight segment of infinite radius), the
// chord midpoint is used as the center instead; this fallback is part
// of the contract and no error is reported for it.
//
// A zero tangent results in [ErrDegenerateVector].
func FitArc(start, end Point, startTangent, endTangent Vec2) (Arc, error) {
	if startTangent.Hypot() == 0 || endTangent.Hypot() == 0 {
		return Arc{}, fmt.Errorf("fit arc: zero tangent: %w", ErrDegenerateVector)
	}

	center := arcCenter(start, end, startTangent, endTangent)
	radius := center.Distance(start)
	dist := Segment{Start: start, End: end}.Length()
	if dist != 0 && radius == 0 {
		return Arc{}, fmt.Errorf("fit arc from %v to %v: %w", start, end, ErrZeroRadius)
	}

	var angle float64
	if dist != 0 {
		x, err := clampUnit(dist / (2 * radius))
		if err != nil {
			return Arc{}, fmt.Errorf("fit arc: chord ratio: %w", err)
		}
		angle = 2 * math.Asin(x)
	} else {
		x, err := clampUnit(startTangent.Dot(endTangent))
		if err != nil {
			return Arc{}, fmt.Errorf("fit arc: tangent product: %w", err)
		}
		angle = math.Acos(x)
	}

	return Arc{
		Start:        start,
		End:          end,
		StartTangent: startTangent,
		EndTangent:   endTangent,
		Center:       center,
		Radius:       radius,
		Angle:        angle,
		Length:       angle * math.Pi * radius,
	}, nil
}

// FitArcSymmetric computes the arc through start and end given only
// the tangent direction at start. The end tangent is synthesized by
// reflecting the start tangent across the chord: a constant-curvature
// arc's tangent field is symmetric about the chord's perpendicular
// bisector, and the reflection yields the end tangent consistent with
// that symmetry.
//
// The chord is the reflection axis, so the endpoints must be distinct;
// coincident endpoints result in [ErrDegenerateVector].
func FitArcSymmetric(start, end Point, startTangent Vec2) (Arc, error) {
	chord := start.Sub(end)
	if chord.Hypot() == 0 {
		return Arc{}, fmt.Errorf("fit arc: coincident endpoints at %v: %w", start, ErrDegenerateVector)
	}
	endTangent := Reflect(startTangent, chord)
	return FitArc(start, end, startTangent, endTangent)
}

// arcCenter intersects the radial lines through each endpoint. The
// radial at a point on a circle is perpendicular to the tangent there
// and passes through the center, so the crossing of both radials is
// the center. Parallel radials fall back to the chord midpoint.
func arcCenter(start, end Point, startTangent, endTangent Vec2) Point {
	radial0 := Line{Origin: start, Dir: startTangent.Normal().Normalize()}
	radial1 := Line{Origin: end, Dir: endTangent.Normal().Normalize()}
	center, err := radial0.Intersect(radial1)
	if errors.Is(err, ErrParallelLines) {
		return start.Midpoint(end)
	}
	return center
}

// TangentAngle returns the signed double angle between the chord from
// start to end and the tangent, along with the unit chord vector and
// the chord length. The sign carries the orientation of the tangent
// relative to the chord. Coincident endpoints and zero tangents result
// in [ErrDegenerateVector].
func TangentAngle(start, end Point, tangent Vec2) (angle float64, chordDir Vec2, dist float64, err error) {
	dist = start.Distance(end)
	if dist == 0 {
		return 0, Vec2{}, 0, fmt.Errorf("tangent angle: coincident endpoints at %v: %w", start, ErrDegenerateVector)
	}
	if tangent.Hypot() == 0 {
		return 0, Vec2{}, 0, fmt.Errorf("tangent angle: zero tangent: %w", ErrDegenerateVector)
	}

	u := end.Sub(start).Div(dist)
	v := tangent.Normalize()
	x, err := clampUnit(u.Dot(v))
	if err != nil {
		return 0, Vec2{}, 0, fmt.Errorf("tangent angle: %w", err)
	}
	sign := u.X*v.Y + u.Y*v.X
	return 2 * math.Acos(x) * sign, u, dist, nil
}

// clampUnit clamps x to [-1, 1] when it is within epsilon of the
// interval, making it safe to pass to asin/acos. Values further out
// indicate inconsistent inputs and result in [ErrAngleDomain].
func clampUnit(x float64) (float64, error) {
	switch {
	case x > 1:
		if !scalar.EqualWithinAbs(x, 1, epsilon) {
			return 0, fmt.Errorf("%w: %g", ErrAngleDomain, x)
		}
		return 1, nil
	case x < -1:
		if !scalar.EqualWithinAbs(x, -1, epsilon) {
			return 0, fmt.Errorf("%w: %g", ErrAngleDomain, x)
		}
		return -1, nil
	default:
		return x, nil
	}
}
