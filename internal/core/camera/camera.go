// Package camera holds the viewer's pose and the movement intents that
// change it between frames.
package camera

import (
	"chosenoffset.com/raycaster/internal/core/geometry"
)

// Pose is the camera position and heading. Heading is in degrees,
// counter-clockwise from the +x axis.
type Pose struct {
	Position geometry.Point
	Heading  float64
}

// Kind identifies a movement intent.
type Kind int

const (
	MoveForward Kind = iota
	MoveBackward
	StrafeLeft
	StrafeRight
	Rotate
	Quit
)

// Intent is a single discrete request from the input collaborator.
// Delta is only meaningful for Rotate.
type Intent struct {
	Kind  Kind
	Delta float64
}

// RotateBy builds a Rotate intent.
func RotateBy(delta float64) Intent {
	return Intent{Kind: Rotate, Delta: delta}
}

// headingOffset is the direction of travel of a move intent relative to
// the camera heading.
func headingOffset(k Kind) (float64, bool) {
	switch k {
	case MoveForward:
		return 0, true
	case MoveBackward:
		return -180, true
	case StrafeLeft:
		return 90, true
	case StrafeRight:
		return -90, true
	default:
		return 0, false
	}
}

// Apply returns the pose after one intent. Moves travel speed units;
// Rotate turns by half its delta, clockwise for positive deltas.
func (p Pose) Apply(in Intent, speed float64) Pose {
	if in.Kind == Rotate {
		p.Heading -= in.Delta / 2
		return p
	}
	if offset, ok := headingOffset(in.Kind); ok {
		p.Position = geometry.EndpointFromLengthAngle(p.Position, speed, p.Heading+offset)
	}
	return p
}

// Step is Apply, except a move whose path crosses any of walls under k is
// refused and the pose is returned unchanged.
func (p Pose) Step(in Intent, speed float64, walls []geometry.Segment, k geometry.Intersector) Pose {
	next := p.Apply(in, speed)
	if next.Position == p.Position {
		return next
	}
	path := geometry.Segment{From: p.Position, To: next.Position}
	for _, wall := range walls {
		if _, hit := k.Intersect(path, wall); hit {
			return p
		}
	}
	return next
}

// Ray returns the segment cast from the camera at heading+offset degrees.
func (p Pose) Ray(offset, length float64) geometry.Segment {
	return geometry.Segment{
		From: p.Position,
		To:   geometry.EndpointFromLengthAngle(p.Position, length, p.Heading+offset),
	}
}

// Cone returns the endpoints of the two boundary rays of a view cone that
// is width wide at length in front of the camera. left is counter-clockwise
// of the heading.
func (p Pose) Cone(width, length float64) (left, right geometry.Point) {
	ahead := geometry.EndpointFromLengthAngle(p.Position, length, p.Heading)
	left = geometry.EndpointFromLengthAngle(ahead, width/2, p.Heading+90)
	right = geometry.EndpointFromLengthAngle(ahead, width/2, p.Heading-90)
	return left, right
}

// ConeHalfAngle returns the half-angle, in degrees, of the cone built by Cone.
func ConeHalfAngle(width, length float64) float64 {
	return geometry.HeadingOf(geometry.Segment{To: geometry.Point{X: length, Y: width / 2}})
}
