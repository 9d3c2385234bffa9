package geometry

import "math"

// Policy selects how a pair of segments is tested for intersection.
type Policy int

const (
	// PolicyCramer solves the 2x2 system directly. Parallel and collinear
	// pairs never intersect, even when they overlap.
	PolicyCramer Policy = iota

	// PolicyOrientation decides existence from orientation signs first, so
	// collinear pairs that touch or overlap do intersect.
	PolicyOrientation
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyCramer:
		return "cramer"
	case PolicyOrientation:
		return "orientation"
	default:
		return "unknown"
	}
}

// Intersector applies one intersection policy consistently.
// A zero Epsilon keeps exact-zero determinant checks; a positive Epsilon
// treats any determinant (or orientation cross product) with magnitude up
// to Epsilon as degenerate.
type Intersector struct {
	Policy  Policy
	Epsilon float64
}

// Intersect returns the intersection point of s1 and s2 under the
// intersector's policy.
func (k Intersector) Intersect(s1, s2 Segment) (Point, bool) {
	if k.Policy == PolicyOrientation {
		return intersectOriented(s1, s2, k.Epsilon)
	}
	return intersectCramer(s1, s2, k.Epsilon)
}

// Intersect returns where s1 and s2 cross. Both parameters must lie in the
// closed interval [0, 1], so segments meeting at an endpoint intersect.
// A determinant of exactly zero (parallel or collinear) reports no hit.
func Intersect(s1, s2 Segment) (Point, bool) {
	return intersectCramer(s1, s2, 0)
}

// IntersectOriented is Intersect with the orientation policy: collinear
// segments touching or overlapping report the shared endpoint closest to
// s1.From.
func IntersectOriented(s1, s2 Segment) (Point, bool) {
	return intersectOriented(s1, s2, 0)
}

func isDegenerate(v, epsilon float64) bool {
	if epsilon == 0 {
		return v == 0.0
	}
	return math.Abs(v) <= epsilon
}

// solve returns the parameters t along s1 and u along s2 of the crossing of
// the two supporting lines.
func solve(s1, s2 Segment, epsilon float64) (t, u float64, ok bool) {
	x1, y1 := s1.From.X, s1.From.Y
	x2, y2 := s1.To.X, s1.To.Y
	x3, y3 := s2.From.X, s2.From.Y
	x4, y4 := s2.To.X, s2.To.Y

	det := Determinant(x2-x1, x3-x4, y2-y1, y3-y4)
	if isDegenerate(det, epsilon) {
		return 0, 0, false
	}

	t = Determinant(x3-x1, x3-x4, y3-y1, y3-y4) / det
	u = Determinant(x2-x1, x3-x1, y2-y1, y3-y1) / det
	return t, u, true
}

func intersectCramer(s1, s2 Segment, epsilon float64) (Point, bool) {
	t, u, ok := solve(s1, s2, epsilon)
	if !ok {
		return Point{}, false
	}
	if 0.0 <= t && t <= 1.0 && 0.0 <= u && u <= 1.0 {
		return s1.At(t), true
	}
	return Point{}, false
}

// orientation of the ordered triplet (p, q, r): 0 collinear, 1 clockwise,
// 2 counter-clockwise.
func orientation(p, q, r Point, epsilon float64) int {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if isDegenerate(v, epsilon) {
		return 0
	}
	if v > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether q lies inside the bounding box of p-r. Only
// meaningful when the three points are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

func intersectOriented(s1, s2 Segment, epsilon float64) (Point, bool) {
	p1, q1 := s1.From, s1.To
	p2, q2 := s2.From, s2.To

	o1 := orientation(p1, q1, p2, epsilon)
	o2 := orientation(p1, q1, q2, epsilon)
	o3 := orientation(p2, q2, p1, epsilon)
	o4 := orientation(p2, q2, q1, epsilon)

	crossing := o1 != o2 && o3 != o4
	collinear := o1 == 0 && o2 == 0

	if !crossing && !collinear {
		return Point{}, false
	}

	if t, _, ok := solve(s1, s2, epsilon); ok && crossing {
		// orientation already proved the hit, keep rounding inside s1
		return s1.At(math.Max(0, math.Min(1, t))), true
	}

	// Collinear, or one segment degenerated to a point: pick the shared
	// endpoint nearest s1.From.
	var candidates []Point
	if onSegment(p1, p2, q1) && o1 == 0 {
		candidates = append(candidates, p2)
	}
	if onSegment(p1, q2, q1) && o2 == 0 {
		candidates = append(candidates, q2)
	}
	if onSegment(p2, p1, q2) && o3 == 0 {
		candidates = append(candidates, p1)
	}
	if onSegment(p2, q1, q2) && o4 == 0 {
		candidates = append(candidates, q1)
	}
	if len(candidates) == 0 {
		return Point{}, false
	}

	d := s1.Direction()
	l2 := d.Dot(d)
	best := candidates[0]
	bestT := math.Inf(1)
	for _, c := range candidates {
		t := 0.0
		if l2 != 0 {
			t = c.Sub(p1).Dot(d) / l2
		}
		if t < bestT {
			bestT = t
			best = c
		}
	}
	return best, true
}
