package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/raycaster/internal/render"
)

// dotSize is the side of the square drawn by DrawPoint, in pixels.
const dotSize = 3

// EbitenSurface wraps an ebiten.Image to implement the render.Surface interface.
type EbitenSurface struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Surface.
func WrapEbitenImage(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img}
}

// DrawLine draws a one pixel wide line.
func (s *EbitenSurface) DrawLine(p1, p2 render.Point, clr color.Color) {
	vector.StrokeLine(s.img, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, clr, false)
}

// DrawPoint draws a filled square centred on p.
func (s *EbitenSurface) DrawPoint(p render.Point, clr color.Color) {
	half := float32(dotSize) / 2
	vector.FillRect(s.img, float32(p.X)-half, float32(p.Y)-half, dotSize, dotSize, clr, false)
}

// Fill fills the entire image with the given color.
func (s *EbitenSurface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

// Size returns the width and height of the image.
func (s *EbitenSurface) Size() (width, height int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// GetEbitenImage returns the underlying ebiten.Image.
func (s *EbitenSurface) GetEbitenImage() *ebiten.Image {
	return s.img
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// CursorPosition returns the current cursor position.
func (m *EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyM:
		return ebiten.KeyM, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the number of updates per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game. A render.ErrTerminate
// from Update ends the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	// mouse motion turns the camera, so keep the cursor in the window
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	err := ebiten.RunGame(&gameAdapter{game: game})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if err == render.ErrTerminate {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenSurface{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
