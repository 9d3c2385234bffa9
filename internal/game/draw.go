package game

import (
	"image/color"
	"log"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/scan"
	"chosenoffset.com/raycaster/internal/render"
)

var (
	backgroundColor = color.RGBA{A: 255}
	mapColor        = color.RGBA{G: 255, A: 255}
	cameraColor     = color.RGBA{R: 255, A: 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Surface) {
	screen.Fill(backgroundColor)

	result, err := g.Scanner.Scan(g.Pose, g.mode)
	if err != nil {
		// report each distinct failure once rather than every frame
		if msg := err.Error(); msg != g.lastErr {
			log.Printf("scan failed: %v", err)
			g.lastErr = msg
		}
		return
	}

	if g.showMap {
		g.drawOverlay(screen, result)
	}

	frame := g.Projector.Project(result)
	render.Draw(screen, frame.Lines, frame.Dots)
}

// toScreen maps world coordinates onto the screen with the world origin at
// the centre and y up.
func (g *Game) toScreen(p geometry.Point) render.Point {
	return render.Point{
		X: float64(g.Config.ScreenWidth)/2 + p.X,
		Y: float64(g.Config.ScreenHeight)/2 - p.Y,
	}
}

func (g *Game) drawOverlay(screen render.Surface, result scan.Result) {
	for _, w := range g.Map.Walls() {
		screen.DrawLine(g.toScreen(w.From), g.toScreen(w.To), mapColor)
	}

	eye := g.toScreen(g.Pose.Position)
	screen.DrawPoint(eye, cameraColor)

	switch r := result.(type) {
	case *scan.ColumnScan:
		length := r.Mode.FieldViewLength
		left := geometry.EndpointFromLengthAngle(r.Pose.Position, length, r.Pose.Heading+r.Mode.FieldViewAngle)
		right := geometry.EndpointFromLengthAngle(r.Pose.Position, length, r.Pose.Heading-r.Mode.FieldViewAngle)
		screen.DrawLine(eye, g.toScreen(left), cameraColor)
		screen.DrawLine(g.toScreen(right), eye, cameraColor)
		g.drawRays(screen, r.Pose, r.Samples)

	case *scan.PortalScan:
		screen.DrawLine(eye, g.toScreen(r.Left), cameraColor)
		screen.DrawLine(g.toScreen(r.Right), eye, cameraColor)
		for _, chain := range r.Chains {
			for i := 1; i < len(chain); i++ {
				screen.DrawLine(g.toScreen(chain[i-1]), g.toScreen(chain[i]), cameraColor)
			}
		}
	}
}

// drawRays draws each ray up to the distance it reported.
func (g *Game) drawRays(screen render.Surface, pose camera.Pose, samples []scan.Sample) {
	eye := g.toScreen(pose.Position)
	for _, s := range samples {
		end := pose.Ray(s.Offset, s.Distance).To
		screen.DrawLine(eye, g.toScreen(end), mapColor)
	}
}
