// Package raster is a headless render.Surface backed by an in-memory
// image, used for snapshots and tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"

	"chosenoffset.com/raycaster/internal/render"
)

// dotSize is the side of the square drawn by DrawPoint, in pixels.
const dotSize = 3

// Surface draws primitives into an *image.RGBA. Integer coordinates
// address pixel centres, so a horizontal line at y = 5 fills row 5.
type Surface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New creates a transparent surface of the given size
func New(width, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the width and height of the surface.
func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire surface with the given color.
func (s *Surface) Fill(clr color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// DrawLine draws a one pixel wide line as a thin quad.
func (s *Surface) DrawLine(p1, p2 render.Point, clr color.Color) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.fillRect(p1.X, p1.Y, 1, clr)
		return
	}

	// half-pixel normal
	nx, ny := -dy/length/2, dx/length/2
	quad := [4]render.Point{
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p2.X + nx, Y: p2.Y + ny},
		{X: p2.X - nx, Y: p2.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
	}
	s.fillPolygon(quad[:], clr)
}

// DrawPoint draws a filled square centred on p.
func (s *Surface) DrawPoint(p render.Point, clr color.Color) {
	s.fillRect(p.X, p.Y, dotSize, clr)
}

func (s *Surface) fillRect(cx, cy, size float64, clr color.Color) {
	half := size / 2
	s.fillPolygon([]render.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}, clr)
}

func (s *Surface) fillPolygon(points []render.Point, clr color.Color) {
	w, h := s.Size()
	if !overlaps(points, w, h) {
		return
	}

	s.z.Reset(w, h)
	for i, p := range points {
		x, y := float32(p.X+0.5), float32(p.Y+0.5)
		if i == 0 {
			s.z.MoveTo(x, y)
		} else {
			s.z.LineTo(x, y)
		}
	}
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// overlaps reports whether the bounding box of points meets the surface.
func overlaps(points []render.Point, w, h int) bool {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return false
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return maxX >= -1 && maxY >= -1 && minX <= float64(w) && minY <= float64(h)
}

// WritePNG encodes the surface to path
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create snapshot %s", path)
	}

	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode snapshot %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to write snapshot %s", path)
}
