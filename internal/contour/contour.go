// Package contour extracts signed closed integer contours from a
// binary bitmap using Selinger's edge-following algorithm: the same
// decomposition Potrace performs, reworked into an explicit decomposer
// object per the module's re-architecture notes (no closures capturing
// mutable outer state).
package contour

import (
	"fmt"

	"svgtrace/internal/bitmap"
)

// TurnPolicy resolves the ambiguous "diagonal" turn the edge-follower
// hits when both the ahead-left and ahead-right pixels disagree with
// straight-ahead continuation.
type TurnPolicy int

const (
	TurnBlack TurnPolicy = iota
	TurnWhite
	TurnLeft
	TurnRight
	TurnMinority
	TurnMajority
)

// Point is an integer grid point; contour points lie on pixel corners,
// not centers.
type Point struct{ X, Y int }

// Path is one closed contour as extracted from the bitmap.
type Path struct {
	Sign   byte // '+' or '-'
	Points []Point
	Area   int
	BBox   BBox
}

type BBox struct{ X0, Y0, X1, Y1 int }

// Decomposer holds the policy used to resolve ambiguous turns; it
// carries no bitmap or position state between calls, so one
// Decomposer can run concurrently over independent bitmaps.
type Decomposer struct {
	TurnPolicy TurnPolicy
}

func New(policy TurnPolicy) *Decomposer {
	return &Decomposer{TurnPolicy: policy}
}

// Decompose extracts every contour of bin (1 = foreground) whose
// enclosed area exceeds turdSize. bin is consumed destructively (its
// interior is XOR-filled as contours are discovered); callers pass a
// copy if the binary bitmap is needed afterward.
func (d *Decomposer) Decompose(bin *bitmap.Bitmap, turdSize int) ([]*Path, error) {
	var out []*Path
	orig := bin.Copy(func(v byte) byte { return v })
	x, y := 0, 0
	for d.findNext(bin, &x, &y) {
		sign := byte('-')
		if orig.Get(x, y) != 0 {
			sign = '+'
		}
		p, err := d.findPath(bin, x, y, sign)
		if err != nil {
			return nil, fmt.Errorf("contour: %w", err)
		}
		xorPath(bin, p)
		if p.Area > turdSize {
			out = append(out, p)
		}
	}
	return out, nil
}

// findNext scans row-major (top to bottom, left to right within a
// row) for the next foreground pixel at or after (*xp,*yp).
func (d *Decomposer) findNext(bin *bitmap.Bitmap, xp, yp *int) bool {
	y0 := *yp
	x0 := *xp
	for y := y0; y < bin.Height; y++ {
		startX := 0
		if y == y0 {
			startX = x0
		}
		for x := startX; x < bin.Width; x++ {
			if bin.Get(x, y) != 0 {
				*xp, *yp = x, y
				return true
			}
		}
	}
	return false
}

// findPath follows the boundary between foreground and background
// starting at the upper-left corner (x0,y0) of the seed pixel,
// accumulating points, signed area, and bounding box until it returns
// to the start point and direction.
func (d *Decomposer) findPath(bin *bitmap.Bitmap, x0, y0 int, sign byte) (*Path, error) {
	x, y := x0, y0
	dirx, diry := 0, 1
	area := 0
	bbox := BBox{X0: x0, Y0: y0, X1: x0, Y1: y0}

	var points []Point
	const limit = 1 << 24
	for i := 0; ; i++ {
		if i >= limit {
			return nil, fmt.Errorf("contour exceeded iteration limit")
		}
		points = append(points, Point{x, y})
		updateBBox(&bbox, x, y)

		x += dirx
		y += diry
		area -= x * diry

		if x == x0 && y == y0 {
			break
		}

		l := bin.Get(x+(dirx+diry-1)/2, y+(diry-dirx-1)/2) != 0
		r := bin.Get(x+(dirx-diry-1)/2, y+(diry+dirx-1)/2) != 0

		switch {
		case r && !l:
			if d.resolveAmbiguous(bin, x, y, sign) {
				dirx, diry = -diry, dirx // right
			} else {
				dirx, diry = diry, -dirx // left
			}
		case r:
			dirx, diry = -diry, dirx
		case !l:
			dirx, diry = diry, -dirx
		}
	}

	return &Path{Sign: sign, Points: points, Area: area, BBox: bbox}, nil
}

func updateBBox(b *BBox, x, y int) {
	if x < b.X0 {
		b.X0 = x
	}
	if x > b.X1 {
		b.X1 = x
	}
	if y < b.Y0 {
		b.Y0 = y
	}
	if y > b.Y1 {
		b.Y1 = y
	}
}

// resolveAmbiguous returns true to turn right, false to turn left.
func (d *Decomposer) resolveAmbiguous(bin *bitmap.Bitmap, x, y int, sign byte) bool {
	switch d.TurnPolicy {
	case TurnRight:
		return true
	case TurnLeft:
		return false
	case TurnBlack:
		return sign == '+'
	case TurnWhite:
		return sign == '-'
	case TurnMajority:
		majorityFG, found := majority(bin, x, y)
		if !found {
			return false
		}
		return majorityFG
	case TurnMinority:
		majorityFG, found := majority(bin, x, y)
		if !found {
			return false
		}
		return !majorityFG
	default:
		return false
	}
}

// majority inspects expanding square neighborhoods (radius 2..4)
// around (x,y) counting foreground vs background, returning the
// majority color and whether any radius broke the tie.
func majority(bin *bitmap.Bitmap, x, y int) (foreground bool, found bool) {
	for i := 2; i < 5; i++ {
		ct := 0
		for a := -i + 1; a <= i-1; a++ {
			if bin.Get(x+a, y+i-1) != 0 {
				ct++
			} else {
				ct--
			}
			if bin.Get(x+i-1, y+a-1) != 0 {
				ct++
			} else {
				ct--
			}
			if bin.Get(x+a-1, y-i) != 0 {
				ct++
			} else {
				ct--
			}
			if bin.Get(x-i, y+a) != 0 {
				ct++
			} else {
				ct--
			}
		}
		if ct > 0 {
			return true, true
		}
		if ct < 0 {
			return false, true
		}
	}
	return false, false
}

// xorPath implements the scanline fill trick: each vertical step the
// contour takes toggles the row immediately below it, from the
// contour's reference column xa to the step's column. Accumulated
// over every vertical edge this XORs the whole interior to
// foreground, so the next findNext scan skips it. Single-row, not a
// range — a common mis-port of this algorithm is to toggle every row
// between the old and new y, which double-fills nested contours.
func xorPath(bin *bitmap.Bitmap, p *Path) {
	if len(p.Points) == 0 {
		return
	}
	xa := p.Points[0].X
	y1 := p.Points[len(p.Points)-1].Y
	for _, pt := range p.Points {
		if pt.Y != y1 {
			row := pt.Y
			if y1 < row {
				row = y1
			}
			lo, hi := xa, pt.X
			if lo > hi {
				lo, hi = hi, lo
			}
			for xx := lo; xx < hi; xx++ {
				bin.Set(xx, row, bin.Get(xx, row)^1)
			}
			y1 = pt.Y
		}
	}
}
