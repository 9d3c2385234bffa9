package game

import (
	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/render"
)

var moveKeys = []struct {
	key  render.Key
	kind camera.Kind
}{
	{render.KeyW, camera.MoveForward},
	{render.KeyS, camera.MoveBackward},
	{render.KeyA, camera.StrafeLeft},
	{render.KeyD, camera.StrafeRight},
}

// pollIntents reads the input manager once. Quit, when present, comes
// first so no move is applied on the closing tick.
func (g *Game) pollIntents() []camera.Intent {
	input := g.InputMgr
	if input.IsKeyPressed(render.KeyEscape) {
		return []camera.Intent{{Kind: camera.Quit}}
	}

	var intents []camera.Intent
	for _, mk := range moveKeys {
		if input.IsKeyPressed(mk.key) {
			intents = append(intents, camera.Intent{Kind: mk.kind})
		}
	}

	// Rotate halves its delta, so a full key turn is twice the speed
	turn := 2 * g.Config.CameraRotationSpeed
	if input.IsKeyPressed(render.KeyLeft) {
		intents = append(intents, camera.RotateBy(-turn))
	}
	if input.IsKeyPressed(render.KeyRight) {
		intents = append(intents, camera.RotateBy(turn))
	}

	x, _ := input.CursorPosition()
	if g.cursorKnown && x != g.cursorX {
		intents = append(intents, camera.RotateBy(float64(x-g.cursorX)))
	}
	g.cursorX, g.cursorKnown = x, true

	return intents
}
