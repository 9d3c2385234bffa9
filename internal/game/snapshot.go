package game

import (
	"chosenoffset.com/raycaster/internal/render/raster"
)

// Snapshot renders the current frame off-screen and writes it to path as
// a PNG.
func (g *Game) Snapshot(path string) error {
	s := raster.New(g.Config.ScreenWidth, g.Config.ScreenHeight)
	g.Draw(s)
	return s.WritePNG(path)
}
