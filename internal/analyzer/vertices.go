package analyzer

import (
	"math"

	"honnef.co/go/curve"
)

// pointslope computes the center and principal direction of the best-fit
// line through points i..j (cyclically), via the larger eigenvalue of
// the sub-range's covariance matrix.
func (p *path) pointslope(i, j int) (ctr, dir curve.Point) {
	n := p.n
	sums := p.sums
	r := 0

	for j >= n {
		j -= n
		r++
	}
	for i >= n {
		i -= n
		r--
	}
	for j < 0 {
		j += n
		r--
	}
	for i < 0 {
		i += n
		r++
	}

	x := sums[j+1].x - sums[i].x + float64(r)*sums[n].x
	y := sums[j+1].y - sums[i].y + float64(r)*sums[n].y
	x2 := sums[j+1].x2 - sums[i].x2 + float64(r)*sums[n].x2
	xy := sums[j+1].xy - sums[i].xy + float64(r)*sums[n].xy
	y2 := sums[j+1].y2 - sums[i].y2 + float64(r)*sums[n].y2
	k := float64(j + 1 - i + r*n)

	ctr.X = x / k
	ctr.Y = y / k

	a := (x2 - x*x/k) / k
	b := (xy - x*y/k) / k
	c := (y2 - y*y/k) / k

	lambda2 := (a + c + math.Sqrt((a-c)*(a-c)+4*b*b)) / 2

	a -= lambda2
	c -= lambda2

	var l float64
	if fabs(a) >= fabs(c) {
		l = math.Sqrt(a*a + b*b)
		if l != 0 {
			dir.X = -b / l
			dir.Y = a / l
		}
	} else {
		l = math.Sqrt(c*c + b*b)
		if l != 0 {
			dir.X = -c / l
			dir.Y = b / l
		}
	}
	if l == 0 {
		dir.X, dir.Y = 0, 0
	}
	return
}

// adjustVertices replaces each optimal-polygon vertex with the point
// that minimizes its squared distance to the two adjoining "optimal"
// line segments, clamped to the unit square around the original
// integer vertex so curves stay anchored to the traced contour.
func (p *path) adjustVertices() {
	po := p.po
	m := len(po)
	pt := p.pt
	n := p.n
	x0, y0 := p.origX, p.origY

	ctr := make([]curve.Point, m)
	dir := make([]curve.Point, m)
	q := make([]quadForm, m)

	p.cur = Curve{Segments: make([]Segment, m)}

	for i := 0; i < m; i++ {
		j := po[mod(i+1, m)]
		j = mod(j-po[i], n) + po[i]
		ctr[i], dir[i] = p.pointslope(po[i], j)
	}

	for i := 0; i < m; i++ {
		d := dir[i].X*dir[i].X + dir[i].Y*dir[i].Y
		if d == 0.0 {
			q[i] = quadForm{}
		} else {
			v := [3]float64{dir[i].Y, -dir[i].X, 0}
			v[2] = -v[1]*ctr[i].Y - v[0]*ctr[i].X
			for l := 0; l < 3; l++ {
				for k := 0; k < 3; k++ {
					q[i][l][k] = v[l] * v[k] / d
				}
			}
		}
	}

	for i := 0; i < m; i++ {
		var Q quadForm
		var w curve.Point
		var s curve.Point

		s.X = float64(pt[po[i]].X - x0)
		s.Y = float64(pt[po[i]].Y - y0)

		j := mod(i-1, m)

		for l := 0; l < 3; l++ {
			for k := 0; k < 3; k++ {
				Q[l][k] = q[j][l][k] + q[i][l][k]
			}
		}

		var dx, dy, det float64
		for {
			det = Q[0][0]*Q[1][1] - Q[0][1]*Q[1][0]
			if det != 0.0 {
				w.X = (-Q[0][2]*Q[1][1] + Q[1][2]*Q[0][1]) / det
				w.Y = (Q[0][2]*Q[1][0] - Q[1][2]*Q[0][0]) / det
				break
			}

			var v [3]float64
			if Q[0][0] > Q[1][1] {
				v[0] = -Q[0][1]
				v[1] = Q[0][0]
			} else if Q[1][1] != 0 {
				v[0] = -Q[1][1]
				v[1] = Q[1][0]
			} else {
				v[0] = 1
				v[1] = 0
			}
			dd := v[0]*v[0] + v[1]*v[1]
			v[2] = -v[1]*s.Y - v[0]*s.X
			for l := 0; l < 3; l++ {
				for k := 0; k < 3; k++ {
					Q[l][k] += v[l] * v[k] / dd
				}
			}
		}
		dx = fabs(w.X - s.X)
		dy = fabs(w.Y - s.Y)
		if dx <= .5 && dy <= .5 {
			p.cur.Segments[i].Vertex = curve.Pt(w.X+float64(x0), w.Y+float64(y0))
			continue
		}

		min := quadform(Q, s)
		xmin, ymin := s.X, s.Y

		if Q[0][0] != 0.0 {
			for z := 0; z < 2; z++ {
				w.Y = s.Y - 0.5 + float64(z)
				w.X = -(Q[0][1]*w.Y + Q[0][2]) / Q[0][0]
				dx = fabs(w.X - s.X)
				cand := quadform(Q, w)
				if dx <= .5 && cand < min {
					min, xmin, ymin = cand, w.X, w.Y
				}
			}
		}
		if Q[1][1] != 0.0 {
			for z := 0; z < 2; z++ {
				w.X = s.X - 0.5 + float64(z)
				w.Y = -(Q[1][0]*w.X + Q[1][2]) / Q[1][1]
				dy = fabs(w.Y - s.Y)
				cand := quadform(Q, w)
				if dy <= .5 && cand < min {
					min, xmin, ymin = cand, w.X, w.Y
				}
			}
		}
		for l := 0; l < 2; l++ {
			for k := 0; k < 2; k++ {
				w.X = s.X - 0.5 + float64(l)
				w.Y = s.Y - 0.5 + float64(k)
				cand := quadform(Q, w)
				if cand < min {
					min, xmin, ymin = cand, w.X, w.Y
				}
			}
		}

		p.cur.Segments[i].Vertex = curve.Pt(xmin+float64(x0), ymin+float64(y0))
	}
}
