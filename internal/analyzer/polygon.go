package analyzer

import "math"

// penalty is the cost of approximating the sub-path [i..j] (cyclically,
// j may wrap past n) with a single straight edge: the root-mean-square
// distance of that sub-path from the chord through points i and j,
// scaled by the chord's length, computed in O(1) from the prefix sums
// built by calcSums.
func (p *path) penalty(i, j int) float64 {
	n := p.n
	pt := p.pt
	sums := p.sums

	r := 0
	if j >= n {
		j -= n
		r = 1
	}

	var x, y, x2, xy, y2, k float64
	if r == 0 {
		x = sums[j+1].x - sums[i].x
		y = sums[j+1].y - sums[i].y
		x2 = sums[j+1].x2 - sums[i].x2
		xy = sums[j+1].xy - sums[i].xy
		y2 = sums[j+1].y2 - sums[i].y2
		k = float64(j + 1 - i)
	} else {
		x = sums[j+1].x - sums[i].x + sums[n].x
		y = sums[j+1].y - sums[i].y + sums[n].y
		x2 = sums[j+1].x2 - sums[i].x2 + sums[n].x2
		xy = sums[j+1].xy - sums[i].xy + sums[n].xy
		y2 = sums[j+1].y2 - sums[i].y2 + sums[n].y2
		k = float64(j + 1 - i + n)
	}

	px := float64(pt[i].X+pt[j].X)/2.0 - float64(p.origX)
	py := float64(pt[i].Y+pt[j].Y)/2.0 - float64(p.origY)
	ey := float64(pt[j].X - pt[i].X)
	ex := -float64(pt[j].Y - pt[i].Y)

	a := (x2-2*x*px)/k + px*px
	b := (xy-x*py-y*px)/k + px*py
	c := (y2-2*y*py)/k + py*py

	s := ex*ex*a + 2*ex*ey*b + ey*ey*c
	return math.Sqrt(s)
}

// bestPolygon fills p.po with the vertex indices of the minimum-penalty
// polygon whose edges are all admissible per p.lon, via the dynamic
// program over segment counts described in the design (non-cyclic:
// index 0 is always a vertex).
func (p *path) bestPolygon() {
	n := p.n

	pen := make([]float64, n+1)
	prev := make([]int, n+1)
	clip0 := make([]int, n)
	clip1 := make([]int, n+1)
	seg0 := make([]int, n+1)
	seg1 := make([]int, n+1)

	for i := 0; i < n; i++ {
		c := mod(p.lon[mod(i-1, n)]-1, n)
		if c == i {
			c = mod(i+1, n)
		}
		if c < i {
			clip0[i] = n
		} else {
			clip0[i] = c
		}
	}

	j := 1
	for i := 0; i < n; i++ {
		for j <= clip0[i] {
			clip1[j] = i
			j++
		}
	}

	i := 0
	for j = 0; i < n; j++ {
		seg0[j] = i
		i = clip0[i]
	}
	seg0[j] = n
	m := j

	i = n
	for j = m; j > 0; j-- {
		seg1[j] = i
		i = clip1[i]
	}
	seg1[0] = 0

	pen[0] = 0
	for j = 1; j <= m; j++ {
		for i = seg1[j]; i <= seg0[j]; i++ {
			best := -1.0
			for k := seg0[j-1]; k >= clip1[i]; k-- {
				thisPen := p.penalty(k, i) + pen[k]
				if best < 0 || thisPen < best {
					prev[i] = k
					best = thisPen
				}
			}
			pen[i] = best
		}
	}

	p.po = make([]int, m)
	for i, j = n, m-1; i > 0; j-- {
		i = prev[i]
		p.po[j] = i
	}
}
