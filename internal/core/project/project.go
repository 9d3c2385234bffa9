// Package project turns scan results into screen-space primitives.
package project

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/scan"
	"chosenoffset.com/raycaster/internal/render"
)

// Projector maps scan results onto a Width x Height screen.
type Projector struct {
	Width         float64
	Height        float64
	MaxWallHeight float64    // half-height of a column at distance zero
	ViewHeight    float64    // distance at which portal points collapse to the horizon
	Tint          color.RGBA // full-intensity wall colour
}

// Frame holds the primitives for one projected result.
type Frame struct {
	Lines []render.Line
	Dots  []render.Dot
}

// ScreenPoint is a projected world point: its column and the top and
// bottom of the vertical span drawn there.
type ScreenPoint struct {
	X      float64
	Top    float64
	Bottom float64
}

// Project dispatches on the result type.
func (p Projector) Project(result scan.Result) Frame {
	switch r := result.(type) {
	case *scan.ColumnScan:
		return p.projectColumns(r)
	case *scan.PortalScan:
		return p.projectPortal(r)
	default:
		return Frame{}
	}
}

// Column returns the screen column and half-height for one sample. Larger
// offsets land further left and nearer walls are taller.
func (p Projector) Column(offset, distance float64, mode scan.WallCast) (x, halfHeight float64) {
	fov := mode.FieldViewAngle
	x = p.Width - (offset+fov)/(2*fov+1)*p.Width
	halfHeight = (mode.FieldViewLength - distance) / mode.FieldViewLength * p.MaxWallHeight
	return x, halfHeight
}

func (p Projector) projectColumns(r *scan.ColumnScan) Frame {
	horizon := p.Height / 2
	lines := make([]render.Line, 0, len(r.Samples))
	for _, s := range r.Samples {
		x, half := p.Column(s.Offset, s.Distance, r.Mode)
		lines = append(lines, render.Line{
			From:  render.Point{X: x, Y: horizon - half},
			To:    render.Point{X: x, Y: horizon + half},
			Color: Shade(p.Tint, Intensity(s.Distance, r.Mode.FieldViewLength)),
		})
	}
	return Frame{Lines: lines}
}

// Perspective projects world point pt for a camera at eye whose cone ends
// at left and right. The column is the share of pt's distance to the left
// boundary in the sum of both distances. ok is false when both distances
// are zero, which only happens at the eye itself.
func (p Projector) Perspective(pt, eye, left, right geometry.Point) (ScreenPoint, bool) {
	l := geometry.PerpendicularDistance(pt, eye, left)
	r := geometry.PerpendicularDistance(pt, eye, right)
	if !(l+r > 0) {
		return ScreenPoint{}, false
	}

	horizon := p.Height / 2
	depth := math.Min(geometry.Distance(eye, pt)/p.ViewHeight, 1)
	half := (1 - depth) * horizon

	return ScreenPoint{
		X:      l / (l + r) * p.Width,
		Top:    horizon - half,
		Bottom: horizon + half,
	}, true
}

func (p Projector) projectPortal(r *scan.PortalScan) Frame {
	var frame Frame
	eye := r.Pose.Position

	for _, chain := range r.Chains {
		var prev *ScreenPoint
		for _, pt := range chain {
			sp, ok := p.Perspective(pt, eye, r.Left, r.Right)
			if !ok {
				prev = nil
				continue
			}

			clr := Shade(p.Tint, Intensity(geometry.Distance(eye, pt), p.ViewHeight))
			frame.Lines = append(frame.Lines, render.Line{
				From:  render.Point{X: sp.X, Y: sp.Top},
				To:    render.Point{X: sp.X, Y: sp.Bottom},
				Color: clr,
			})
			frame.Dots = append(frame.Dots, render.Dot{At: render.Point{X: sp.X, Y: sp.Top}, Color: clr})

			if prev != nil {
				frame.Lines = append(frame.Lines,
					render.Line{From: render.Point{X: prev.X, Y: prev.Top}, To: render.Point{X: sp.X, Y: sp.Top}, Color: p.Tint},
					render.Line{From: render.Point{X: prev.X, Y: prev.Bottom}, To: render.Point{X: sp.X, Y: sp.Bottom}, Color: p.Tint},
				)
			}
			prev = &sp
		}
	}
	return frame
}

// Intensity maps distance to an 8-bit brightness, 255 at the camera and 0
// at max or beyond.
func Intensity(distance, max float64) uint8 {
	if !(max > 0) {
		return 0
	}
	ratio := math.Max(0, math.Min(distance/max, 1))
	return uint8(255 - math.Round(ratio*255))
}

// Shade scales each channel of tint by intensity/255. The result is opaque.
func Shade(tint color.RGBA, intensity uint8) color.RGBA {
	scale := func(c uint8) uint8 {
		return uint8((uint16(c)*uint16(intensity) + 127) / 255)
	}
	return color.RGBA{R: scale(tint.R), G: scale(tint.G), B: scale(tint.B), A: 255}
}

// ParseTint parses a hex colour such as "0000ff" or "#0000ff".
func ParseTint(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("invalid tint %q: want RRGGBB", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid tint %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
