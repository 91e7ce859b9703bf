// Package svg renders analyzer curves into SVG path data and assembles
// the surrounding document/symbol markup.
package svg

import (
	"strconv"
	"strings"

	"honnef.co/go/curve"

	"svgtrace/internal/analyzer"
)

// fixed formats x with up to 3 decimals, stripping a trailing ".000"
// (or any run of trailing zeros and a bare decimal point) so whole
// numbers render without noise.
func fixed(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func point(p curve.Point) string {
	return fixed(p.X) + " " + fixed(p.Y)
}

// pathData renders one curve's segments as SVG path commands, starting
// with an M to the last segment's third control point — the contour's
// starting vertex after smoothing/optimization.
func pathData(c *analyzer.Curve) string {
	if len(c.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	start := c.Segments[len(c.Segments)-1].Pnt[2]
	b.WriteString("M")
	b.WriteString(point(start))

	for _, seg := range c.Segments {
		switch seg.Tag {
		case analyzer.CurveSeg:
			b.WriteString("C")
			b.WriteString(point(seg.Pnt[0]))
			b.WriteString(", ")
			b.WriteString(point(seg.Pnt[1]))
			b.WriteString(", ")
			b.WriteString(point(seg.Pnt[2]))
		default:
			b.WriteString("L")
			b.WriteString(point(seg.Pnt[1]))
			b.WriteString(" ")
			b.WriteString(point(seg.Pnt[2]))
		}
	}
	return b.String()
}

// PathData renders every curve into a single combined "d" attribute
// value, concatenating each curve's own M..C/L sequence.
func PathData(curves []*analyzer.Curve) string {
	var b strings.Builder
	for _, c := range curves {
		b.WriteString(pathData(c))
	}
	return b.String()
}
