// Package geom provides a small 2D geometry kernel: point and vector
// algebra, infinite lines with intersection, and circular arcs fitted
// to endpoint tangents.
//
// It is intended as a building block for curve and path generators
// (CAD layers, toolpath planners) that need to derive the unique
// circular arc passing through two points with prescribed tangent
// directions.
//
// # Points and vectors
//
// [Point] and [Vec2] share the same representation but are distinct
// types: points denote positions, vectors denote displacements and
// directions. [Point.Sub] produces the vector between two points, and
// [Point.Translate] moves a point by a vector. Approximate comparisons
// ([Point.NearEqual], [Vec2.IsOrthogonal], [Vec2.IsCollinear]) use an
// absolute tolerance of 1e-9; geometric inputs are expected to be of
// roughly unit scale.
//
// # Lines
//
// [Line] is an infinite line through an origin point with a unit
// direction, unlike a [Segment], which is bounded by its two
// endpoints. [Line.Intersect] locates the unique crossing point of two
// lines and reports [ErrParallelLines] when no such point exists.
//
// # Arc fitting
//
// [FitArc] computes the arc consistent with two endpoints and their
// tangents by intersecting the radial lines perpendicular to each
// tangent. [FitArcSymmetric] accepts a single start tangent and
// synthesizes the end tangent by reflecting it across the chord. See
// the [Arc] documentation for the exact angle and length conventions.
//
// All types are immutable values and all functions are pure; the
// package is safe for concurrent use without synchronization.
package geom
