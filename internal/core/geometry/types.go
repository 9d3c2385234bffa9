// Package geometry holds the numeric primitives the scanner and projector are
// built on: segment intersection, containment and distance queries.
// Every function is pure and safe for concurrent use.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Point represents a position in map coordinates
type Point struct {
	X, Y float64
}

// Segment represents a wall or an edge of a map polygon
type Segment struct {
	From, To Point
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dot returns the dot product of p and q taken as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func fromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Direction returns the vector from s.From to s.To.
func (s Segment) Direction() Point {
	return s.To.Sub(s.From)
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.From, s.To)
}

// At returns the point at parameter t along the segment (0 = From, 1 = To).
func (s Segment) At(t float64) Point {
	return s.From.Add(s.Direction().Scale(t))
}
