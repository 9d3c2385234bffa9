package scan

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

const tolerance = 1e-9

func wallMap(walls ...geometry.Segment) *maploader.Map {
	return maploader.NewWallMap("test", walls, camera.Pose{})
}

func wall(x1, y1, x2, y2 float64) geometry.Segment {
	return geometry.Segment{From: geometry.Point{X: x1, Y: y1}, To: geometry.Point{X: x2, Y: y2}}
}

func columns(t *testing.T, s *Scanner, pose camera.Pose, mode WallCast) *ColumnScan {
	t.Helper()
	result, err := s.Scan(pose, mode)
	require.NoError(t, err)
	require.IsType(t, &ColumnScan{}, result)
	return result.(*ColumnScan)
}

func TestSingleWallScenario(t *testing.T) {
	s := New(wallMap(wall(100, -50, 100, 50)))
	mode := WallCast{FieldViewAngle: 10, FieldViewLength: 300, StepAngle: 10}

	scan := columns(t, s, camera.Pose{}, mode)

	// +10 is excluded by the half-open sweep
	require.Len(t, scan.Samples, 2)
	assert.Equal(t, -10.0, scan.Samples[0].Offset)
	assert.Equal(t, 0.0, scan.Samples[1].Offset)

	assert.True(t, scan.Samples[1].Hit)
	assert.InDelta(t, 100.0, scan.Samples[1].Distance, tolerance)

	slanted := 100 / math.Cos(10*math.Pi/180)
	assert.InDelta(t, slanted, scan.Samples[0].Distance, 1e-9)
	assert.InDelta(t, 101.54, scan.Samples[0].Distance, 0.01)

	up, err := s.CastRay(camera.Pose{}, 10, mode)
	require.NoError(t, err)
	assert.True(t, up.Hit)
	assert.InDelta(t, slanted, up.Distance, 1e-9)
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name string
		mode WallCast
		want []float64
	}{
		{"exact multiple", WallCast{FieldViewAngle: 10, StepAngle: 5}, []float64{-10, -5, 0, 5}},
		{"uneven step", WallCast{FieldViewAngle: 10, StepAngle: 7}, []float64{-10, -3, 4}},
		{"step wider than cone", WallCast{FieldViewAngle: 1, StepAngle: 5}, []float64{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, tt.mode.Offsets(), tolerance)
		})
	}
}

func TestScanIsIdempotent(t *testing.T) {
	m := maploader.Default()
	s := New(m)
	mode := WallCast{FieldViewAngle: 30, FieldViewLength: 300, StepAngle: 0.5}

	first := columns(t, s, m.Spawn(), mode)
	second := columns(t, s, m.Spawn(), mode)
	assert.Equal(t, first, second)
	assert.Len(t, first.Samples, 120)
}

func TestCorridorDistancesGrowTowardOpening(t *testing.T) {
	// corridor along +y, open at y = 200
	s := New(wallMap(wall(-20, 0, -20, 200), wall(20, 0, 20, 200)))
	pose := camera.Pose{Heading: 90}
	mode := WallCast{FieldViewAngle: 80, FieldViewLength: 300, StepAngle: 5}

	scan := columns(t, s, pose, mode)

	var previous float64
	for _, sample := range scan.Samples {
		if sample.Offset > -10 {
			break
		}
		require.True(t, sample.Hit, "offset %v", sample.Offset)
		assert.Greater(t, sample.Distance, previous, "offset %v", sample.Offset)
		previous = sample.Distance
	}

	// at -5 the ray leaves through the opening
	exit, err := s.CastRay(pose, -5, mode)
	require.NoError(t, err)
	assert.False(t, exit.Hit)
	assert.Equal(t, 300.0, exit.Distance)
}

func TestGapFill(t *testing.T) {
	s := New(wallMap(wall(100, -50, 100, 50)))
	base := WallCast{FieldViewAngle: 40, FieldViewLength: 300, StepAngle: 10}
	hits := []bool{false, false, true, true, true, true, true, false}

	t.Run("clamp to max", func(t *testing.T) {
		scan := columns(t, s, camera.Pose{}, base)
		require.Len(t, scan.Samples, len(hits))
		for i, sample := range scan.Samples {
			assert.Equal(t, hits[i], sample.Hit, "offset %v", sample.Offset)
			if !sample.Hit {
				assert.Equal(t, 300.0, sample.Distance)
			}
		}
	})

	t.Run("reuse previous", func(t *testing.T) {
		mode := base
		mode.GapFill = ReusePrevious
		scan := columns(t, s, camera.Pose{}, mode)
		require.Len(t, scan.Samples, len(hits))

		// nothing to reuse before the first hit
		assert.Equal(t, 300.0, scan.Samples[0].Distance)
		assert.Equal(t, 300.0, scan.Samples[1].Distance)

		last := scan.Samples[7]
		assert.False(t, last.Hit)
		assert.Equal(t, scan.Samples[6].Distance, last.Distance)
		assert.InDelta(t, 100/math.Cos(20*math.Pi/180), last.Distance, 1e-9)
	})
}

func TestDistanceStaysPositive(t *testing.T) {
	// the first wall passes through the camera
	s := New(wallMap(wall(0, -10, 0, 10), wall(50, -50, 50, 50)))
	sample, err := s.CastRay(camera.Pose{}, 0, WallCast{FieldViewAngle: 1, FieldViewLength: 300, StepAngle: 1})
	require.NoError(t, err)
	assert.True(t, sample.Hit)
	assert.InDelta(t, 50.0, sample.Distance, tolerance)
}

func TestParallelScanMatchesSequential(t *testing.T) {
	m := maploader.Default()
	pose := camera.Pose{Position: geometry.Point{X: 150, Y: -250}, Heading: 135}

	for _, gap := range []GapFill{ClampToMax, ReusePrevious} {
		mode := WallCast{FieldViewAngle: 30, FieldViewLength: 300, StepAngle: 0.25, GapFill: gap}

		sequential := columns(t, New(m), pose, mode)
		parallel := columns(t, New(m, WithWorkers(4)), pose, mode)
		assert.Equal(t, sequential, parallel, gap.String())
	}
}

func TestOrientationPolicyIsUsed(t *testing.T) {
	// a wall lying along the ray is invisible to Cramer but not to the
	// orientation test
	m := wallMap(wall(50, 0, 80, 0))
	mode := WallCast{FieldViewAngle: 1, FieldViewLength: 300, StepAngle: 1}

	cramer, err := New(m).CastRay(camera.Pose{}, 0, mode)
	require.NoError(t, err)
	assert.False(t, cramer.Hit)

	oriented := New(m, WithIntersector(geometry.Intersector{Policy: geometry.PolicyOrientation}))
	sample, err := oriented.CastRay(camera.Pose{}, 0, mode)
	require.NoError(t, err)
	assert.True(t, sample.Hit)
	assert.InDelta(t, 50.0, sample.Distance, tolerance)
}

func TestInvalidConfig(t *testing.T) {
	s := New(maploader.Default())

	tests := []struct {
		name string
		mode Mode
	}{
		{"nil mode", nil},
		{"zero step", WallCast{FieldViewAngle: 30, FieldViewLength: 300}},
		{"negative step", WallCast{FieldViewAngle: 30, FieldViewLength: 300, StepAngle: -1}},
		{"zero length", WallCast{FieldViewAngle: 30, StepAngle: 1}},
		{"nan angle", WallCast{FieldViewAngle: math.NaN(), FieldViewLength: 300, StepAngle: 1}},
		{"too many samples", WallCast{FieldViewAngle: 30, FieldViewLength: 300, StepAngle: 1e-6}},
		{"unknown gap fill", WallCast{FieldViewAngle: 30, FieldViewLength: 300, StepAngle: 1, GapFill: 7}},
		{"zero view width", PortalCast{ViewLength: 100}},
		{"infinite view length", PortalCast{ViewWidth: 100, ViewLength: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Scan(camera.Pose{}, tt.mode)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestParseGapFill(t *testing.T) {
	g, err := ParseGapFill("reuse_previous")
	require.NoError(t, err)
	assert.Equal(t, ReusePrevious, g)

	g, err = ParseGapFill("")
	require.NoError(t, err)
	assert.Equal(t, ClampToMax, g)

	_, err = ParseGapFill("interpolate")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
