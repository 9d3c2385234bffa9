// Package maploader loads the map a session is played on and indexes its
// walls for the scanner. A Map never changes after it is built.
package maploader

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
)

// R-tree branching factors; walls per map are in the tens to thousands.
const (
	indexMinChildren = 4
	indexMaxChildren = 16
)

// Map represents a loaded map: either a soup of wall segments or a closed
// polygon. Loop maps expose their edges as walls too.
type Map struct {
	name  string
	walls []geometry.Segment
	loop  []geometry.Point
	spawn camera.Pose
	index *rtreego.Rtree
}

// indexedWall is a wall stored in the R-tree
type indexedWall struct {
	id     int
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (w *indexedWall) Bounds() rtreego.Rect {
	return w.bounds
}

// NewWallMap builds a map from wall segments
func NewWallMap(name string, walls []geometry.Segment, spawn camera.Pose) *Map {
	m := &Map{
		name:  name,
		walls: slices.Clone(walls),
		spawn: spawn,
	}
	m.buildIndex()
	return m
}

// NewLoopMap builds a map from a closed polygon. Edge i joins point i to
// point (i+1) mod n.
func NewLoopMap(name string, points []geometry.Point, spawn camera.Pose) *Map {
	m := &Map{
		name:  name,
		loop:  slices.Clone(points),
		spawn: spawn,
	}
	m.walls = make([]geometry.Segment, len(points))
	for i := range points {
		m.walls[i] = m.Edge(i)
	}
	m.buildIndex()
	return m
}

func (m *Map) buildIndex() {
	objs := make([]rtreego.Spatial, len(m.walls))
	for i, w := range m.walls {
		objs[i] = &indexedWall{id: i, bounds: paddedBounds(w)}
	}
	m.index = rtreego.NewTree(2, indexMinChildren, indexMaxChildren, objs...)
}

// paddedBounds returns the bounding box of s grown on every side. The tree
// treats touching boxes as disjoint and axis-aligned segments have zero
// width, so without padding endpoint hits would be lost.
func paddedBounds(s geometry.Segment) rtreego.Rect {
	largest := math.Max(
		math.Max(math.Abs(s.From.X), math.Abs(s.From.Y)),
		math.Max(math.Abs(s.To.X), math.Abs(s.To.Y)),
	)
	pad := 1e-6 + largest*1e-9

	lo := rtreego.Point{math.Min(s.From.X, s.To.X) - pad, math.Min(s.From.Y, s.To.Y) - pad}
	hi := rtreego.Point{math.Max(s.From.X, s.To.X) + pad, math.Max(s.From.Y, s.To.Y) + pad}

	// only fails on a dimension mismatch, which cannot happen here
	r, _ := rtreego.NewRectFromPoints(lo, hi)
	return r
}

// Name returns the map's display name
func (m *Map) Name() string {
	return m.name
}

// Spawn returns the starting camera pose
func (m *Map) Spawn() camera.Pose {
	return m.spawn
}

// Walls returns every wall; for loop maps these are the polygon edges in
// loop order. The slice must not be modified.
func (m *Map) Walls() []geometry.Segment {
	return m.walls
}

// HasLoop reports whether the map was built from a closed polygon
func (m *Map) HasLoop() bool {
	return len(m.loop) > 0
}

// Loop returns the polygon vertices of a loop map. The slice must not be
// modified.
func (m *Map) Loop() []geometry.Point {
	return m.loop
}

// Contains reports whether p lies inside the loop. Wall maps have no
// inside and always report false.
func (m *Map) Contains(p geometry.Point) bool {
	return m.HasLoop() && geometry.PointInPolygon(p, m.loop)
}

// Edge returns loop edge i, from vertex i to vertex (i+1) mod n
func (m *Map) Edge(i int) geometry.Segment {
	n := len(m.loop)
	return geometry.Segment{From: m.loop[i%n], To: m.loop[(i+1)%n]}
}

// Candidates returns, in map order, the walls whose bounding boxes overlap
// the bounding box of s. It is a superset of the walls s can intersect.
func (m *Map) Candidates(s geometry.Segment) []geometry.Segment {
	found := m.index.SearchIntersect(paddedBounds(s))
	ids := make([]int, 0, len(found))
	for _, obj := range found {
		ids = append(ids, obj.(*indexedWall).id)
	}
	slices.Sort(ids)

	out := make([]geometry.Segment, len(ids))
	for i, id := range ids {
		out[i] = m.walls[id]
	}
	return out
}

func spawnPose(s SpawnPoint) camera.Pose {
	return camera.Pose{
		Position: geometry.Point{X: s.X, Y: s.Y},
		Heading:  s.Heading,
	}
}
