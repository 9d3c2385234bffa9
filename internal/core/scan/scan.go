// Package scan computes what the camera sees each frame. A Scanner is
// stateless apart from its map and options, so scans of the same pose
// always agree.
package scan

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Result is either a *ColumnScan or a *PortalScan.
type Result interface {
	isResult()
}

// Sample is the outcome of one ray. Distance is always in
// (0, FieldViewLength]; Hit is false when gap fill supplied it.
type Sample struct {
	Offset   float64
	Distance float64
	Hit      bool
}

// ColumnScan is the result of a WallCast, in ascending offset order.
type ColumnScan struct {
	Pose    camera.Pose
	Mode    WallCast
	Samples []Sample
}

func (*ColumnScan) isResult() {}

// Scanner runs scans against one map.
type Scanner struct {
	m           *maploader.Map
	intersector geometry.Intersector
	workers     int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithIntersector sets the intersection policy used for every test in a
// scan.
func WithIntersector(k geometry.Intersector) Option {
	return func(s *Scanner) {
		s.intersector = k
	}
}

// WithWorkers casts wall rays on up to n goroutines. Values below 2 keep
// the sweep sequential.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		s.workers = n
	}
}

// New creates a scanner for m
func New(m *maploader.Map, opts ...Option) *Scanner {
	s := &Scanner{m: m, workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Map returns the scanned map
func (s *Scanner) Map() *maploader.Map {
	return s.m
}

// Intersector returns the policy the scanner uses
func (s *Scanner) Intersector() geometry.Intersector {
	return s.intersector
}

// Scan computes the visibility result for pose under mode. The pose is
// copied, so callers may move the camera once Scan returns.
func (s *Scanner) Scan(pose camera.Pose, mode Mode) (Result, error) {
	if mode == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "no render mode")
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	switch m := mode.(type) {
	case WallCast:
		return s.castWalls(pose, m), nil
	case PortalCast:
		if !s.m.HasLoop() {
			return nil, errors.Wrapf(ErrModeMismatch, "portal mode needs a loop map, %q has walls", s.m.Name())
		}
		return s.castPortal(pose, m), nil
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unsupported render mode %T", mode)
	}
}

// CastRay casts the single ray at offset degrees from the heading. Gap
// fill is not applied; a miss reports FieldViewLength.
func (s *Scanner) CastRay(pose camera.Pose, offset float64, mode WallCast) (Sample, error) {
	if err := mode.Validate(); err != nil {
		return Sample{}, err
	}
	return s.cast(pose, offset, mode.FieldViewLength), nil
}

func (s *Scanner) cast(pose camera.Pose, offset, length float64) Sample {
	ray := pose.Ray(offset, length)
	sample := Sample{Offset: offset, Distance: length}

	for _, wall := range s.m.Candidates(ray) {
		p, ok := s.intersector.Intersect(ray, wall)
		if !ok {
			continue
		}
		// a wall through the camera itself is not a visible obstacle
		d := geometry.Distance(pose.Position, p)
		if d > 0 && d <= sample.Distance {
			sample.Distance = d
			sample.Hit = true
		}
	}
	sample.Distance = math.Min(sample.Distance, length)
	return sample
}

func (s *Scanner) castWalls(pose camera.Pose, mode WallCast) *ColumnScan {
	offsets := mode.Offsets()
	samples := make([]Sample, len(offsets))

	if s.workers > 1 && len(offsets) > 1 {
		s.castParallel(pose, mode, offsets, samples)
	} else {
		for i, a := range offsets {
			samples[i] = s.cast(pose, a, mode.FieldViewLength)
		}
	}

	fillGaps(samples, mode)
	return &ColumnScan{Pose: pose, Mode: mode, Samples: samples}
}

// castParallel splits the sweep into contiguous chunks, one per worker.
func (s *Scanner) castParallel(pose camera.Pose, mode WallCast, offsets []float64, samples []Sample) {
	workers := min(s.workers, len(offsets))
	chunk := (len(offsets) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(offsets); lo += chunk {
		hi := min(lo+chunk, len(offsets))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				samples[i] = s.cast(pose, offsets[i], mode.FieldViewLength)
			}
			return nil
		})
	}
	// casting never fails
	_ = g.Wait()
}

// fillGaps assigns distances to missed samples in angle order.
func fillGaps(samples []Sample, mode WallCast) {
	for i := range samples {
		if samples[i].Hit {
			continue
		}
		samples[i].Distance = mode.FieldViewLength
		if mode.GapFill == ReusePrevious && i > 0 {
			samples[i].Distance = samples[i-1].Distance
		}
	}
}
