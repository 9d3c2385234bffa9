package maploader

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
)

var defaultWalls = [][4]float64{
	// Outer boundary
	{-400, -400, -400, 400},
	{-400, 400, 400, 400},
	{400, 400, 400, -400},
	{400, -400, -400, -400},

	// Inner ring
	{-300, -300, -300, 300},
	{-300, 300, -200, 300},
	{-200, 300, -200, 200},
	{-200, 200, -100, 200},
	{-100, 200, -100, 300},
	{-100, 300, 100, 300},
	{100, 300, 100, 200},
	{100, 200, 200, 200},
	{200, 200, 200, 300},
	{200, 300, 300, 300},
	{300, 300, 300, -300},
	{300, -300, -300, -300},

	// Central block
	{-200, -200, -200, 100},
	{-200, 100, -100, 100},
	{-100, 100, -100, 0},
	{-100, 0, 0, 0},
	{0, 0, 0, 100},
	{0, 100, 100, 100},
	{100, 100, 100, -100},
	{100, -100, 200, -100},
	{200, -100, 200, -200},
	{200, -200, -200, -200},

	// Southern pockets
	{100, -200, 100, -300},
	{100, -300, 0, -300},
	{0, -300, 0, -100},
	{0, -100, -100, -100},
	{-100, -100, -100, -200},
	{-100, -200, -200, -200},
	{-200, -200, -200, -300},
	{-200, -300, -300, -300},
}

// Default returns the built-in maze used when no map file is given
func Default() *Map {
	walls := make([]geometry.Segment, len(defaultWalls))
	for i, w := range defaultWalls {
		walls[i] = geometry.Segment{
			From: geometry.Point{X: w[0], Y: w[1]},
			To:   geometry.Point{X: w[2], Y: w[3]},
		}
	}
	spawn := camera.Pose{Position: geometry.Point{X: -50, Y: -50}}
	return NewWallMap("maze", walls, spawn)
}

// DefaultLoop returns a built-in octagonal room for portal rendering
func DefaultLoop() *Map {
	const (
		sides  = 8
		radius = 250.0
	)
	points := make([]geometry.Point, sides)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / sides
		points[i] = geometry.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return NewLoopMap("octagon", points, camera.Pose{})
}
