package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{From: Point{x1, y1}, To: Point{x2, y2}}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 Segment
		want   Point
		hit    bool
	}{
		{"plain cross", seg(0, 0, 10, 10), seg(0, 10, 10, 0), Point{5, 5}, true},
		{"ray against wall", seg(0, 0, 300, 0), seg(100, -50, 100, 50), Point{100, 0}, true},
		{"touching at start", seg(0, 0, 10, 0), seg(0, 0, 0, 10), Point{0, 0}, true},
		{"touching at end", seg(0, 0, 10, 0), seg(10, -5, 10, 5), Point{10, 0}, true},
		{"t-junction", seg(0, 0, 10, 0), seg(5, 0, 5, 5), Point{5, 0}, true},
		{"short of the wall", seg(0, 0, 9, 0), seg(10, -5, 10, 5), Point{}, false},
		{"lines cross outside s2", seg(0, 0, 10, 0), seg(5, 1, 5, 5), Point{}, false},
		{"parallel", seg(0, 0, 10, 0), seg(0, 1, 10, 1), Point{}, false},
		{"collinear overlap", seg(0, 0, 10, 0), seg(5, 0, 15, 0), Point{}, false},
		{"zero length", seg(0, 0, 10, 0), seg(5, 0, 5, 0), Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.s1, tt.s2)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.want.X, got.X, tolerance)
				assert.InDelta(t, tt.want.Y, got.Y, tolerance)
			}
		})
	}
}

func TestIntersectIsSymmetric(t *testing.T) {
	pairs := [][2]Segment{
		{seg(0, 0, 10, 10), seg(0, 10, 10, 0)},
		{seg(-3, 2, 7, -4), seg(1, -5, 2, 6)},
		{seg(0, 0, 10, 0), seg(10, -5, 10, 5)},
	}
	for _, pair := range pairs {
		p1, ok1 := Intersect(pair[0], pair[1])
		p2, ok2 := Intersect(pair[1], pair[0])
		assert.Equal(t, ok1, ok2)
		assert.InDelta(t, p1.X, p2.X, 1e-9)
		assert.InDelta(t, p1.Y, p2.Y, 1e-9)
	}
}

func TestIntersectOriented(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 Segment
		want   Point
		hit    bool
	}{
		{"plain cross", seg(0, 0, 10, 10), seg(0, 10, 10, 0), Point{5, 5}, true},
		{"touching at end", seg(0, 0, 10, 0), seg(10, -5, 10, 5), Point{10, 0}, true},
		{"parallel", seg(0, 0, 10, 0), seg(0, 1, 10, 1), Point{}, false},
		{"collinear overlap reports nearest shared point", seg(0, 0, 10, 0), seg(5, 0, 15, 0), Point{5, 0}, true},
		{"collinear overlap from behind", seg(0, 0, 10, 0), seg(-5, 0, 3, 0), Point{0, 0}, true},
		{"collinear touching", seg(0, 0, 10, 0), seg(10, 0, 20, 0), Point{10, 0}, true},
		{"collinear disjoint", seg(0, 0, 10, 0), seg(11, 0, 20, 0), Point{}, false},
		{"point on segment", seg(0, 0, 10, 0), seg(5, 0, 5, 0), Point{5, 0}, true},
		{"miss", seg(0, 0, 10, 0), seg(5, 1, 5, 5), Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectOriented(tt.s1, tt.s2)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.want.X, got.X, tolerance)
				assert.InDelta(t, tt.want.Y, got.Y, tolerance)
			}
		})
	}
}

func TestIntersectorPolicies(t *testing.T) {
	overlap := [2]Segment{seg(0, 0, 10, 0), seg(5, 0, 15, 0)}

	_, ok := Intersector{Policy: PolicyCramer}.Intersect(overlap[0], overlap[1])
	assert.False(t, ok, "cramer ignores collinear overlap")

	p, ok := Intersector{Policy: PolicyOrientation}.Intersect(overlap[0], overlap[1])
	assert.True(t, ok, "orientation reports collinear overlap")
	assert.Equal(t, Point{5, 0}, p)
}

func TestIntersectorEpsilon(t *testing.T) {
	// nearly parallel: det is 1e-12, far below any useful precision
	s1 := seg(0, 0, 1, 0)
	s2 := seg(0, -1, 1, -1+1e-12)

	_, exact := Intersector{}.Intersect(s1, s2)
	_, tolerant := Intersector{Epsilon: 1e-9}.Intersect(s1, s2)
	assert.False(t, exact)
	assert.False(t, tolerant)

	// a genuine crossing is unaffected by a small epsilon
	p, ok := Intersector{Epsilon: 1e-9}.Intersect(seg(0, 0, 10, 10), seg(0, 10, 10, 0))
	assert.True(t, ok)
	assert.InDelta(t, 5.0, p.X, tolerance)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "cramer", PolicyCramer.String())
	assert.Equal(t, "orientation", PolicyOrientation.String())
	assert.Equal(t, "unknown", Policy(42).String())
}
