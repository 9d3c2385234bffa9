package scan

import (
	"math"

	"github.com/pkg/errors"
)

// MaxSamples bounds the number of rays a single wall cast may produce.
const MaxSamples = 1 << 16

var (
	// ErrInvalidConfig is wrapped by every mode validation failure.
	ErrInvalidConfig = errors.New("invalid scan configuration")

	// ErrModeMismatch is returned when a mode needs a map model the
	// scanner's map does not have.
	ErrModeMismatch = errors.New("render mode does not match map model")
)

// Mode selects what a scan computes. It is implemented only by WallCast
// and PortalCast.
type Mode interface {
	Validate() error
	isMode()
}

// GapFill decides the distance reported by a ray that hits nothing.
type GapFill int

const (
	// ClampToMax reports the full view length.
	ClampToMax GapFill = iota
	// ReusePrevious repeats the previous sample's distance.
	ReusePrevious
)

// String returns the configuration name of the gap fill.
func (g GapFill) String() string {
	switch g {
	case ClampToMax:
		return "clamp_to_max"
	case ReusePrevious:
		return "reuse_previous"
	default:
		return "unknown"
	}
}

// ParseGapFill maps a configuration name to a GapFill.
func ParseGapFill(name string) (GapFill, error) {
	switch name {
	case "", "clamp_to_max":
		return ClampToMax, nil
	case "reuse_previous":
		return ReusePrevious, nil
	default:
		return 0, errors.Wrapf(ErrInvalidConfig, "unknown gap fill %q", name)
	}
}

// WallCast casts one ray per StepAngle across [-FieldViewAngle,
// FieldViewAngle) and reports the nearest wall on each.
type WallCast struct {
	FieldViewAngle  float64 // half-angle, degrees
	FieldViewLength float64
	StepAngle       float64
	GapFill         GapFill
}

func (WallCast) isMode() {}

// Validate checks the cast parameters
func (w WallCast) Validate() error {
	if !(w.StepAngle > 0) || math.IsInf(w.StepAngle, 0) {
		return errors.Wrapf(ErrInvalidConfig, "step angle must be positive, got %v", w.StepAngle)
	}
	if !(w.FieldViewLength > 0) || math.IsInf(w.FieldViewLength, 0) {
		return errors.Wrapf(ErrInvalidConfig, "field view length must be positive, got %v", w.FieldViewLength)
	}
	if !(w.FieldViewAngle > 0) || math.IsInf(w.FieldViewAngle, 0) {
		return errors.Wrapf(ErrInvalidConfig, "field view angle must be positive, got %v", w.FieldViewAngle)
	}
	if w.GapFill != ClampToMax && w.GapFill != ReusePrevious {
		return errors.Wrapf(ErrInvalidConfig, "unknown gap fill %d", int(w.GapFill))
	}
	if n := 2 * w.FieldViewAngle / w.StepAngle; n > MaxSamples {
		return errors.Wrapf(ErrInvalidConfig, "step angle %v yields %.0f samples, limit is %d", w.StepAngle, n, MaxSamples)
	}
	return nil
}

// Offsets returns the ray offsets in ascending order. The last offset is
// the largest -FieldViewAngle + i*StepAngle strictly below FieldViewAngle.
func (w WallCast) Offsets() []float64 {
	var offsets []float64
	for i := 0; ; i++ {
		a := -w.FieldViewAngle + float64(i)*w.StepAngle
		if a >= w.FieldViewAngle {
			break
		}
		offsets = append(offsets, a)
	}
	return offsets
}

// PortalCast clips a loop map to a view cone ViewWidth wide at ViewLength
// ahead of the camera.
type PortalCast struct {
	ViewWidth  float64
	ViewLength float64
}

func (PortalCast) isMode() {}

// Validate checks the cone dimensions
func (p PortalCast) Validate() error {
	if !(p.ViewWidth > 0) || math.IsInf(p.ViewWidth, 0) {
		return errors.Wrapf(ErrInvalidConfig, "view width must be positive, got %v", p.ViewWidth)
	}
	if !(p.ViewLength > 0) || math.IsInf(p.ViewLength, 0) {
		return errors.Wrapf(ErrInvalidConfig, "view length must be positive, got %v", p.ViewLength)
	}
	return nil
}
