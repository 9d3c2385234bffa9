package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

const tolerance = 1e-9

func TestApplyMoves(t *testing.T) {
	start := Pose{Position: geometry.Point{X: -50, Y: -50}, Heading: 0}

	tests := []struct {
		name string
		in   Intent
		want geometry.Point
	}{
		{"forward", Intent{Kind: MoveForward}, geometry.Point{X: -40, Y: -50}},
		{"backward", Intent{Kind: MoveBackward}, geometry.Point{X: -60, Y: -50}},
		{"strafe left", Intent{Kind: StrafeLeft}, geometry.Point{X: -50, Y: -40}},
		{"strafe right", Intent{Kind: StrafeRight}, geometry.Point{X: -50, Y: -60}},
		{"quit does not move", Intent{Kind: Quit}, geometry.Point{X: -50, Y: -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := start.Apply(tt.in, 10)
			assert.InDelta(t, tt.want.X, got.Position.X, tolerance)
			assert.InDelta(t, tt.want.Y, got.Position.Y, tolerance)
			assert.Equal(t, start.Heading, got.Heading)
		})
	}
}

func TestApplyRotate(t *testing.T) {
	p := Pose{Heading: 30}
	assert.Equal(t, 25.0, p.Apply(RotateBy(10), 10).Heading)
	assert.Equal(t, 35.0, p.Apply(RotateBy(-10), 10).Heading)
	assert.Equal(t, p.Position, p.Apply(RotateBy(10), 10).Position)
}

func TestStepRefusesWalls(t *testing.T) {
	walls := []geometry.Segment{{From: geometry.Point{X: 5, Y: -10}, To: geometry.Point{X: 5, Y: 10}}}
	p := Pose{}

	var k geometry.Intersector

	blocked := p.Step(Intent{Kind: MoveForward}, 10, walls, k)
	assert.Equal(t, p, blocked)

	free := p.Step(Intent{Kind: MoveBackward}, 10, walls, k)
	assert.InDelta(t, -10.0, free.Position.X, tolerance)

	turned := p.Step(RotateBy(20), 10, walls, k)
	assert.Equal(t, -10.0, turned.Heading)
}

func TestStepUsesIntersectorPolicy(t *testing.T) {
	// a wall lying along the path
	walls := []geometry.Segment{{From: geometry.Point{X: 5, Y: 0}, To: geometry.Point{X: 8, Y: 0}}}
	p := Pose{}

	passed := p.Step(Intent{Kind: MoveForward}, 10, walls, geometry.Intersector{Policy: geometry.PolicyCramer})
	assert.InDelta(t, 10.0, passed.Position.X, tolerance)

	blocked := p.Step(Intent{Kind: MoveForward}, 10, walls, geometry.Intersector{Policy: geometry.PolicyOrientation})
	assert.Equal(t, p, blocked)
}

func TestRay(t *testing.T) {
	p := Pose{Position: geometry.Point{X: 1, Y: 1}, Heading: 90}
	ray := p.Ray(-90, 5)
	assert.Equal(t, p.Position, ray.From)
	assert.InDelta(t, 6.0, ray.To.X, tolerance)
	assert.InDelta(t, 1.0, ray.To.Y, tolerance)
}

func TestCone(t *testing.T) {
	p := Pose{Heading: 0}
	left, right := p.Cone(100, 50)
	assert.InDelta(t, 50.0, left.X, tolerance)
	assert.InDelta(t, 50.0, left.Y, tolerance)
	assert.InDelta(t, 50.0, right.X, tolerance)
	assert.InDelta(t, -50.0, right.Y, tolerance)

	assert.InDelta(t, 45.0, ConeHalfAngle(100, 50), tolerance)
}
