// Package config holds the tunable parameters of a raycaster session.
// Values come from DefaultConfig, optionally overlaid by a JSON file and
// then by command-line flags.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/project"
	"chosenoffset.com/raycaster/internal/core/scan"
)

// Render mode names
const (
	ModeWall   = "wall"
	ModePortal = "portal"
)

// Config holds all session parameters
type Config struct {
	// Screen
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	TPS          int    `json:"tps"`  // frames per second
	Tint         string `json:"tint"` // wall colour, RRGGBB

	// Wall casting
	FieldViewLength   float64 `json:"field_view_length"`
	FieldViewAngle    float64 `json:"field_view_angle"` // half-angle, degrees
	ScanningStepAngle float64 `json:"scanning_step_angle"`
	MaxWallHeight     float64 `json:"max_wall_height"`
	GapFill           string  `json:"gap_fill"` // clamp_to_max or reuse_previous

	// Portal casting
	ViewWidth  float64 `json:"view_width"`
	ViewLength float64 `json:"view_length"`
	ViewHeight float64 `json:"view_height"`

	// Camera
	CameraSpeed         float64 `json:"camera_speed"`
	CameraRotationSpeed float64 `json:"camera_rotation_speed"` // degrees per arrow key tick
	Collide             bool    `json:"collide"`               // refuse moves through walls

	// Scanner
	RenderMode   string  `json:"render_mode"`  // wall or portal
	Intersection string  `json:"intersection"` // cramer or orientation
	Epsilon      float64 `json:"epsilon"`      // 0 keeps exact determinant checks
	Workers      int     `json:"workers"`

	Display2DMap bool `json:"display_2d_map"`
}

// DefaultConfig returns the classic maze settings
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TPS:          30,
		Tint:         "0000ff",

		FieldViewLength:   300,
		FieldViewAngle:    30,
		ScanningStepAngle: 0.5,
		MaxWallHeight:     300,
		GapFill:           scan.ClampToMax.String(),

		ViewWidth:  600,
		ViewLength: 400,
		ViewHeight: 400,

		CameraSpeed:         10,
		CameraRotationSpeed: 5,
		Collide:             false,

		RenderMode:   ModeWall,
		Intersection: geometry.PolicyCramer.String(),
		Epsilon:      0,
		Workers:      1,

		Display2DMap: true,
	}
}

// LoadConfig loads a config from a JSON file over the defaults. A missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

// Validate checks every value the session depends on
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Epsilon < 0 {
		return errors.Errorf("epsilon must not be negative, got %v", c.Epsilon)
	}
	if !(c.MaxWallHeight > 0) {
		return errors.Errorf("max wall height must be positive, got %v", c.MaxWallHeight)
	}
	if !(c.ViewHeight > 0) {
		return errors.Errorf("view height must be positive, got %v", c.ViewHeight)
	}
	if _, err := project.ParseTint(c.Tint); err != nil {
		return err
	}
	if _, err := c.Intersector(); err != nil {
		return err
	}

	mode, err := c.Mode()
	if err != nil {
		return err
	}
	return mode.Validate()
}

// WallCast builds the wall casting mode
func (c *Config) WallCast() (scan.WallCast, error) {
	gap, err := scan.ParseGapFill(c.GapFill)
	if err != nil {
		return scan.WallCast{}, err
	}
	return scan.WallCast{
		FieldViewAngle:  c.FieldViewAngle,
		FieldViewLength: c.FieldViewLength,
		StepAngle:       c.ScanningStepAngle,
		GapFill:         gap,
	}, nil
}

// PortalCast builds the portal casting mode
func (c *Config) PortalCast() scan.PortalCast {
	return scan.PortalCast{ViewWidth: c.ViewWidth, ViewLength: c.ViewLength}
}

// Mode builds the configured render mode
func (c *Config) Mode() (scan.Mode, error) {
	switch c.RenderMode {
	case ModeWall:
		return c.WallCast()
	case ModePortal:
		return c.PortalCast(), nil
	default:
		return nil, errors.Wrapf(scan.ErrInvalidConfig, "unknown render mode %q", c.RenderMode)
	}
}

// Intersector builds the configured intersection policy
func (c *Config) Intersector() (geometry.Intersector, error) {
	k := geometry.Intersector{Epsilon: c.Epsilon}
	switch c.Intersection {
	case "", geometry.PolicyCramer.String():
		k.Policy = geometry.PolicyCramer
	case geometry.PolicyOrientation.String():
		k.Policy = geometry.PolicyOrientation
	default:
		return k, errors.Errorf("unknown intersection policy %q", c.Intersection)
	}
	return k, nil
}

// Projector builds the screen projector
func (c *Config) Projector() (project.Projector, error) {
	tint, err := project.ParseTint(c.Tint)
	if err != nil {
		return project.Projector{}, err
	}
	return project.Projector{
		Width:         float64(c.ScreenWidth),
		Height:        float64(c.ScreenHeight),
		MaxWallHeight: c.MaxWallHeight,
		ViewHeight:    c.ViewHeight,
		Tint:          tint,
	}, nil
}
