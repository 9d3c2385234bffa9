package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Determinant of the 2x2 matrix [a b; c d]
func Determinant(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// EndpointFromLengthAngle returns the end of a segment of the given length
// leaving origin at angle degrees, measured counter-clockwise from +x.
func EndpointFromLengthAngle(origin Point, length, degrees float64) Point {
	sin, cos := math.Sincos(mgl64.DegToRad(degrees))
	return Point{
		X: origin.X + length*cos,
		Y: origin.Y + length*sin,
	}
}

// PointInTriangle reports whether p lies strictly inside triangle abc.
// Points on an edge or a vertex are outside. The result does not depend on
// the winding order of the vertices.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := side(p, a, b)
	d2 := side(p, b, c)
	d3 := side(p, c, a)

	allNegative := d1 < 0.0 && d2 < 0.0 && d3 < 0.0
	allPositive := d1 > 0.0 && d2 > 0.0 && d3 > 0.0
	return allNegative || allPositive
}

// side is the cross product (p-b)x(a-b); its sign tells which side of the
// line through a and b the point p is on.
func side(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// PerpendicularOffsets returns the absolute x and y distances between p and
// the point of segment s1-s2 closest to it. The projection parameter is
// clamped to the segment, so points beyond an end measure against that end.
func PerpendicularOffsets(p, s1, s2 Point) (dx, dy float64) {
	d := s2.Sub(s1)
	t := 0.0
	if l2 := d.Dot(d); l2 != 0 {
		t = mgl64.Clamp(p.Sub(s1).Dot(d)/l2, 0, 1)
	}
	closest := s1.Add(d.Scale(t))
	return math.Abs(p.X - closest.X), math.Abs(p.Y - closest.Y)
}

// PerpendicularDistance is the magnitude of PerpendicularOffsets.
func PerpendicularDistance(p, s1, s2 Point) float64 {
	dx, dy := PerpendicularOffsets(p, s1, s2)
	return math.Sqrt(dx*dx + dy*dy)
}

// PointOnHeadingSegment projects q onto the segment start-end whose heading
// is degrees. Both are rotated so the segment lies horizontal, the vertical
// through q is crossed with the segment's line, and the crossing is rotated
// back. ok is false when the crossing falls outside the segment.
func PointOnHeadingSegment(start, end Point, degrees float64, q Point) (Point, bool) {
	rad := mgl64.DegToRad(degrees)
	toLocal := mgl64.Rotate2D(-rad)

	a := toLocal.Mul2x1(start.vec())
	b := toLocal.Mul2x1(end.vec())
	r := toLocal.Mul2x1(q.vec())

	minX, maxX := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	if b.X() == a.X() || r.X() < minX || r.X() > maxX {
		return Point{}, false
	}

	// the segment is horizontal when degrees matches its heading; interpolate
	// anyway so a slightly off heading still lands on the segment
	y := a.Y() + (r.X()-a.X())*(b.Y()-a.Y())/(b.X()-a.X())
	crossing := mgl64.Vec2{r.X(), y}

	return fromVec(mgl64.Rotate2D(rad).Mul2x1(crossing)), true
}

// HeadingOf returns the heading of s in degrees, counter-clockwise from +x.
func HeadingOf(s Segment) float64 {
	d := s.Direction()
	return mgl64.RadToDeg(math.Atan2(d.Y, d.X))
}

// PointInPolygon tests if p is inside the closed polygon using the even-odd
// crossing rule. Points on the boundary may go either way.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := range polygon {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
