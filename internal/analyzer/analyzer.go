package analyzer

import "svgtrace/internal/contour"

// Params configures the geometric stages of Analyze. It mirrors the
// subset of the tracer's parameters that affect curve shape rather
// than contour extraction.
type Params struct {
	AlphaMax     float64
	OptCurve     bool
	OptTolerance float64
}

// Analyze runs the full Potrace path-analysis pipeline over a single
// closed contour: prefix sums, the longest-straight-subpath table, the
// optimal-polygon dynamic program, vertex adjustment, orientation
// normalization, corner/curve smoothing, and, if enabled, Bézier
// curve optimization.
func Analyze(c *contour.Path, params Params) *Curve {
	p := newPath(c)
	p.calcSums()
	p.calcLon()
	p.bestPolygon()
	p.adjustVertices()

	p.cur.Sign = c.Sign

	if c.Sign == '-' {
		reverseOrientation(&p.cur)
	}
	smooth(&p.cur, params.AlphaMax)

	if params.OptCurve {
		return opticurve(&p.cur, params.OptTolerance)
	}
	return &p.cur
}
