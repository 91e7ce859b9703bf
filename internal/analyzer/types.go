// Package analyzer turns a single closed integer contour into a
// smoothed, optionally curve-optimized Bézier curve: the longest-
// straight-subpath table, the optimal-polygon dynamic program, vertex
// adjustment by least-squares line fit, corner/curve smoothing, and
// Bézier optimization described in the design. The math here is
// Potrace's (Selinger), ported point-for-point rather than
// reinvented, since the DP penalties and smoothing constants are
// exact tuning values, not approximations.
package analyzer

import (
	"honnef.co/go/curve"

	"svgtrace/internal/contour"
)

// SegmentTag distinguishes a smoothed corner from a Bézier curve
// segment.
type SegmentTag int

const (
	Corner SegmentTag = iota
	CurveSeg
)

// Segment is one edge of a Curve: a vertex and, for CurveSeg, the two
// control points leading into it (Pnt[2] is always the segment's
// endpoint, used as the corner's second line target too).
type Segment struct {
	Tag    SegmentTag
	Pnt    [3]curve.Point
	Vertex curve.Point
	Alpha  float64
	Alpha0 float64
	Beta   float64
}

// Curve is the closed sequence of segments produced for one contour.
// Segment i's Vertex is reached by drawing from segment (i-1)'s
// Pnt[2]; rendering walks this cyclically starting at the last
// segment's Pnt[2] (see the svg package).
type Curve struct {
	Segments []Segment
	Sign     byte
}

// sums holds prefix sums of x, y, x*y, x*x, y*y relative to the
// contour's first point, enabling O(1) least-squares fits over any
// sub-range.
type sums struct {
	x, y, x2, xy, y2 float64
}

// path is the analyzer's working state for one contour: the original
// integer points plus every derived table built while tracking the
// algorithm's stages.
type path struct {
	pt   []contour.Point
	n    int
	sums []sums // len n+1
	lon  []int

	origX, origY int

	po []int // optimal polygon vertex indices, len m

	cur Curve // after adjustVertices/reverse/smooth
}

func newPath(c *contour.Path) *path {
	return &path{pt: c.Points, n: len(c.Points)}
}
