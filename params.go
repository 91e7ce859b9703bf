package svgtrace

import (
	"svgtrace/internal/contour"
	"svgtrace/internal/errs"
)

// TurnPolicy names the ambiguous-turn resolution rule the contour
// decomposer applies; it mirrors contour.TurnPolicy as a string enum
// so Params stays a plain, comparable value type.
type TurnPolicy string

const (
	TurnBlack    TurnPolicy = "black"
	TurnWhite    TurnPolicy = "white"
	TurnLeft     TurnPolicy = "left"
	TurnRight    TurnPolicy = "right"
	TurnMinority TurnPolicy = "minority"
	TurnMajority TurnPolicy = "majority"
)

func (t TurnPolicy) toContour() contour.TurnPolicy {
	switch t {
	case TurnBlack:
		return contour.TurnBlack
	case TurnWhite:
		return contour.TurnWhite
	case TurnLeft:
		return contour.TurnLeft
	case TurnRight:
		return contour.TurnRight
	case TurnMajority:
		return contour.TurnMajority
	default:
		return contour.TurnMinority
	}
}

func (t TurnPolicy) valid() bool {
	switch t {
	case TurnBlack, TurnWhite, TurnLeft, TurnRight, TurnMinority, TurnMajority:
		return true
	default:
		return false
	}
}

// AutoThreshold is the Threshold sentinel requesting Otsu automatic
// binarization instead of a fixed cutoff.
const AutoThreshold = -1

// ColorAuto is the Color/Background sentinel resolved at render time:
// Color resolves to "black"/"white" by BlackOnWhite, Background
// resolves to the svg package's Transparent constant.
const ColorAuto = "auto"

// Params configures a Tracer. The zero value is not valid; use
// DefaultParams.
type Params struct {
	TurnPolicy   TurnPolicy
	TurdSize     int
	AlphaMax     float64
	OptCurve     bool
	OptTolerance float64
	Threshold    int // AutoThreshold or [0,255]
	BlackOnWhite bool
	Color        string // CSS color, or ColorAuto
	Background   string // CSS color, "transparent", or ColorAuto
	Width        int    // 0 means "use source width"
	Height       int    // 0 means "use source height"
}

// DefaultParams returns the Tracer parameter defaults.
func DefaultParams() Params {
	return Params{
		TurnPolicy:   TurnMinority,
		TurdSize:     2,
		AlphaMax:     1,
		OptCurve:     true,
		OptTolerance: 0.2,
		Threshold:    AutoThreshold,
		BlackOnWhite: true,
		Color:        ColorAuto,
		Background:   "transparent",
	}
}

// Validate checks p against the constraints in the parameter schema,
// returning an InvalidParameter error naming the first offending field.
func (p Params) Validate() error {
	if !p.TurnPolicy.valid() {
		return errs.InvalidParameter("turnPolicy", "must be one of black, white, left, right, minority, majority")
	}
	if p.TurdSize < 0 {
		return errs.InvalidParameter("turdSize", "must be >= 0")
	}
	if p.AlphaMax < 0 || p.AlphaMax > 1.3334 {
		return errs.InvalidParameter("alphaMax", "must be in [0, 1.3334]")
	}
	if p.Threshold != AutoThreshold && (p.Threshold < 0 || p.Threshold > 255) {
		return errs.InvalidParameter("threshold", "must be AUTO or in [0, 255]")
	}
	if p.OptTolerance <= 0 {
		return errs.InvalidParameter("optTolerance", "must be > 0")
	}
	return nil
}

// geometryEqual reports whether a and b would produce the same
// contours/curves, i.e. whether changing from a to b should invalidate
// a cached Processed result.
func (a Params) geometryEqual(b Params) bool {
	return a.TurnPolicy == b.TurnPolicy &&
		a.TurdSize == b.TurdSize &&
		a.AlphaMax == b.AlphaMax &&
		a.OptCurve == b.OptCurve &&
		a.OptTolerance == b.OptTolerance &&
		a.Threshold == b.Threshold &&
		a.BlackOnWhite == b.BlackOnWhite
}

func (p Params) resolveColor() string {
	if p.Color == ColorAuto || p.Color == "" {
		if p.BlackOnWhite {
			return "black"
		}
		return "white"
	}
	return p.Color
}

func (p Params) resolveBackground() string {
	if p.Background == ColorAuto || p.Background == "" {
		return "transparent"
	}
	return p.Background
}
