// Package render defines the drawing, input and engine contracts the frame
// driver talks to. Backends live in sub-packages so the core never imports
// a graphics library.
package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrTerminate is returned from Game.Update to end the game loop cleanly.
var ErrTerminate = errors.New("game terminated")

// Point is a position in screen pixels, origin top-left, y down.
type Point struct {
	X float64
	Y float64
}

// Line is a projected line primitive.
type Line struct {
	From  Point
	To    Point
	Color color.Color
}

// Dot is a projected point primitive.
type Dot struct {
	At    Point
	Color color.Color
}

// Surface is a screen the core draws primitives onto.
type Surface interface {
	// DrawLine draws a one pixel wide line from p1 to p2.
	DrawLine(p1, p2 Point, clr color.Color)

	// DrawPoint draws a small square marker centred on p.
	DrawPoint(p Point, clr color.Color)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)

	// Size returns the width and height of the surface.
	Size() (width, height int)
}

// Draw forwards lines and dots to s in order, lines first.
func Draw(s Surface, lines []Line, dots []Dot) {
	for _, l := range lines {
		s.DrawLine(l.From, l.To, l.Color)
	}
	for _, d := range dots {
		s.DrawPoint(d.At, d.Color)
	}
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the driver polls
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyM // overlay toggle
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Surface)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
