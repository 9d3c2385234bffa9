// Package game drives one raycaster session: it turns input into camera
// intents, scans the map from the current pose and draws the result.
package game

import (
	"log"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/project"
	"chosenoffset.com/raycaster/internal/core/scan"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Game holds all session state. Pose is only changed by Update.
type Game struct {
	Config    *config.Config
	Map       *maploader.Map
	Pose      camera.Pose
	Scanner   *scan.Scanner
	Projector project.Projector
	InputMgr  render.InputManager

	mode    scan.Mode
	showMap bool

	// Mouse tracking
	cursorX     int
	cursorKnown bool

	lastErr string

	// Debug
	FrameCount int
}

// New creates a game on m starting at the map's spawn pose. input may be
// nil for headless rendering.
func New(cfg *config.Config, m *maploader.Map, input render.InputManager) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	if _, ok := mode.(scan.PortalCast); ok && !m.HasLoop() {
		return nil, errors.Wrapf(scan.ErrModeMismatch, "map %q has no loop for portal mode", m.Name())
	}

	if m.HasLoop() && !m.Contains(m.Spawn().Position) {
		log.Printf("Warning: spawn of map %q is outside its loop", m.Name())
	}

	k, err := cfg.Intersector()
	if err != nil {
		return nil, err
	}

	p, err := cfg.Projector()
	if err != nil {
		return nil, err
	}

	return &Game{
		Config:    cfg,
		Map:       m,
		Pose:      m.Spawn(),
		Scanner:   scan.New(m, scan.WithIntersector(k), scan.WithWorkers(cfg.Workers)),
		Projector: p,
		InputMgr:  input,
		mode:      mode,
		showMap:   cfg.Display2DMap,
	}, nil
}

// Mode returns the render mode in use
func (g *Game) Mode() scan.Mode {
	return g.mode
}

// ShowMap reports whether the 2D overlay is drawn
func (g *Game) ShowMap() bool {
	return g.showMap
}

// Update applies this tick's input to the camera.
func (g *Game) Update() error {
	g.FrameCount++
	if g.InputMgr == nil {
		return nil
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.showMap = !g.showMap
	}

	for _, in := range g.pollIntents() {
		if in.Kind == camera.Quit {
			return render.ErrTerminate
		}
		g.Pose = g.move(in)
	}
	return nil
}

func (g *Game) move(in camera.Intent) camera.Pose {
	if g.Config.Collide {
		return g.Pose.Step(in, g.Config.CameraSpeed, g.Map.Walls(), g.Scanner.Intersector())
	}
	return g.Pose.Apply(in, g.Config.CameraSpeed)
}

// Layout returns the configured screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.ScreenWidth, g.Config.ScreenHeight
}
