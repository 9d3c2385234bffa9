package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type call struct {
	kind string
	p1   Point
	p2   Point
}

type recordingSurface struct {
	calls []call
}

func (r *recordingSurface) DrawLine(p1, p2 Point, _ color.Color) {
	r.calls = append(r.calls, call{kind: "line", p1: p1, p2: p2})
}

func (r *recordingSurface) DrawPoint(p Point, _ color.Color) {
	r.calls = append(r.calls, call{kind: "point", p1: p})
}

func (r *recordingSurface) Fill(color.Color) {}

func (r *recordingSurface) Size() (int, int) { return 10, 10 }

func TestDrawForwardsInOrder(t *testing.T) {
	s := &recordingSurface{}
	lines := []Line{
		{From: Point{0, 0}, To: Point{1, 1}, Color: color.White},
		{From: Point{2, 2}, To: Point{3, 3}, Color: color.White},
	}
	dots := []Dot{{At: Point{5, 5}, Color: color.Black}}

	Draw(s, lines, dots)

	assert.Equal(t, []call{
		{kind: "line", p1: Point{0, 0}, p2: Point{1, 1}},
		{kind: "line", p1: Point{2, 2}, p2: Point{3, 3}},
		{kind: "point", p1: Point{5, 5}},
	}, s.calls)
}
