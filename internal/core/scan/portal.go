package scan

import (
	"cmp"
	"slices"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
)

// EdgeVisibility records what the view cone leaves of loop edge Index.
// Points holds the vertex, when visible, followed by the clip points in
// order along the edge.
type EdgeVisibility struct {
	Index         int
	Edge          geometry.Segment
	VertexVisible bool
	Clips         []geometry.Point
	Points        []geometry.Point
}

// PortalScan is the result of a PortalCast. Chains are the connected
// visible runs of the loop's silhouette in loop order.
type PortalScan struct {
	Pose   camera.Pose
	Mode   PortalCast
	Left   geometry.Point
	Right  geometry.Point
	Edges  []EdgeVisibility
	Chains [][]geometry.Point
}

func (*PortalScan) isResult() {}

func (s *Scanner) castPortal(pose camera.Pose, mode PortalCast) *PortalScan {
	left, right := pose.Cone(mode.ViewWidth, mode.ViewLength)
	bounds := [2]geometry.Segment{
		{From: pose.Position, To: left},
		{From: pose.Position, To: right},
	}

	loop := s.m.Loop()
	result := &PortalScan{
		Pose:  pose,
		Mode:  mode,
		Left:  left,
		Right: right,
		Edges: make([]EdgeVisibility, len(loop)),
	}

	for i := range loop {
		result.Edges[i] = s.edgeVisibility(i, pose.Position, left, right, bounds)
	}
	result.Chains = chainEdges(result.Edges)
	return result
}

func (s *Scanner) edgeVisibility(i int, eye, left, right geometry.Point, bounds [2]geometry.Segment) EdgeVisibility {
	edge := s.m.Edge(i)
	ev := EdgeVisibility{Index: i, Edge: edge}

	if geometry.PointInTriangle(edge.From, eye, left, right) {
		ev.VertexVisible = true
		ev.Points = append(ev.Points, edge.From)
	}

	for _, bound := range bounds {
		if p, ok := s.intersector.Intersect(edge, bound); ok {
			ev.Clips = append(ev.Clips, p)
		}
	}

	// order clips by their parameter along the edge
	dir := edge.Direction()
	slices.SortStableFunc(ev.Clips, func(a, b geometry.Point) int {
		return cmp.Compare(a.Sub(edge.From).Dot(dir), b.Sub(edge.From).Dot(dir))
	})

	for _, p := range ev.Clips {
		ev.Points = appendDistinct(ev.Points, p)
	}
	return ev
}

// chainEdges joins the points of consecutive non-empty edges. An empty
// edge ends the current chain. A chain still open after the last edge
// continues into a chain that began at edge 0. When no edge is empty the
// whole loop is visible and the chain repeats its first point to close.
func chainEdges(edges []EdgeVisibility) [][]geometry.Point {
	var chains [][]geometry.Point
	var current []geometry.Point
	broken := false

	for _, ev := range edges {
		if len(ev.Points) == 0 {
			broken = true
			if len(current) > 0 {
				chains = append(chains, current)
				current = nil
			}
			continue
		}
		for _, p := range ev.Points {
			current = appendDistinct(current, p)
		}
	}

	if len(current) == 0 {
		return chains
	}

	if !broken {
		if n := len(current); n > 1 && current[0] != current[n-1] {
			current = append(current, current[0])
		}
		return [][]geometry.Point{current}
	}

	wraps := len(edges) > 0 && len(edges[0].Points) > 0 && len(chains) > 0
	if !wraps {
		return append(chains, current)
	}

	joined := current
	for _, p := range chains[0] {
		joined = appendDistinct(joined, p)
	}
	chains[0] = joined
	return chains
}

func appendDistinct(points []geometry.Point, p geometry.Point) []geometry.Point {
	if n := len(points); n > 0 && points[n-1] == p {
		return points
	}
	return append(points, p)
}
