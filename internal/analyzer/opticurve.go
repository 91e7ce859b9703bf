package analyzer

import (
	"errors"
	"math"

	"honnef.co/go/curve"
)

// opti is one candidate replacement of a run of Bézier segments by a
// single Bézier curve, produced by optiPenalty.
type opti struct {
	pen   float64
	c     [2]curve.Point
	t, s  float64
	alpha float64
}

var errNotOptimizable = errors.New("analyzer: segment run cannot be merged into a single curve")

// optiPenalty scores merging segments i+1..j (cyclically) of cur into a
// single Bézier, requiring consistent convexity, no embedded corners,
// and no bend sharper than 179 degrees; it returns errNotOptimizable
// when the run fails any of those admissibility checks.
func optiPenalty(cur *Curve, i, j int, tolerance float64, convex []int, area []float64) (opti, error) {
	segs := cur.Segments
	m := len(segs)

	if i == j {
		return opti{}, errNotOptimizable
	}

	k := i
	i1 := mod(i+1, m)
	k1 := mod(k+1, m)
	conv := convex[k1]
	if conv == 0 {
		return opti{}, errNotOptimizable
	}
	d := ddist(segs[i].Vertex, segs[i1].Vertex)
	for k = k1; k != j; k = k1 {
		k1 = mod(k+1, m)
		k2 := mod(k+2, m)
		if convex[k1] != conv {
			return opti{}, errNotOptimizable
		}
		if int(signf(cprod(segs[i].Vertex, segs[i1].Vertex, segs[k1].Vertex, segs[k2].Vertex))) != conv {
			return opti{}, errNotOptimizable
		}
		if iprod1(segs[i].Vertex, segs[i1].Vertex, segs[k1].Vertex, segs[k2].Vertex) < d*ddist(segs[k1].Vertex, segs[k2].Vertex)*cCos179 {
			return opti{}, errNotOptimizable
		}
	}

	p0 := segs[mod(i, m)].Pnt[2]
	p1 := segs[mod(i+1, m)].Vertex
	p2 := segs[mod(j, m)].Vertex
	p3 := segs[mod(j, m)].Pnt[2]

	a := area[j] - area[i]
	a -= dpara(segs[0].Vertex, segs[i].Pnt[2], segs[j].Pnt[2]) / 2
	if i >= j {
		a += area[m]
	}

	a1 := dpara(p0, p1, p2)
	a2 := dpara(p0, p1, p3)
	a3 := dpara(p0, p2, p3)
	a4 := a1 + a3 - a2

	if a2 == a1 {
		return opti{}, errNotOptimizable
	}

	t := a3 / (a3 - a4)
	s := a2 / (a2 - a1)
	areaTri := a2 * t / 2.0

	if areaTri == 0.0 {
		return opti{}, errNotOptimizable
	}

	r := a / areaTri
	alpha := 2 - math.Sqrt(4-r/0.3)

	var res opti
	res.c[0] = interval(t*alpha, p0, p1)
	res.c[1] = interval(s*alpha, p3, p2)
	res.alpha = alpha
	res.t = t
	res.s = s

	p1 = res.c[0]
	p2 = res.c[1]

	for k = mod(i+1, m); k != j; k = k1 {
		k1 = mod(k+1, m)
		tt := tangent(p0, p1, p2, p3, segs[k].Vertex, segs[k1].Vertex)
		if tt < -0.5 {
			return opti{}, errNotOptimizable
		}
		pt := bezierPoint(tt, p0, p1, p2, p3)
		d = ddist(segs[k].Vertex, segs[k1].Vertex)
		if d == 0.0 {
			return opti{}, errNotOptimizable
		}
		d1 := dpara(segs[k].Vertex, segs[k1].Vertex, pt) / d
		if fabs(d1) > tolerance {
			return opti{}, errNotOptimizable
		}
		if iprod(segs[k].Vertex, segs[k1].Vertex, pt) < 0 || iprod(segs[k1].Vertex, segs[k].Vertex, pt) < 0 {
			return opti{}, errNotOptimizable
		}
		res.pen += d1 * d1
	}

	for k = i; k != j; k = k1 {
		k1 = mod(k+1, m)
		tt := tangent(p0, p1, p2, p3, segs[k].Pnt[2], segs[k1].Pnt[2])
		if tt < -0.5 {
			return opti{}, errNotOptimizable
		}
		pt := bezierPoint(tt, p0, p1, p2, p3)
		d = ddist(segs[k].Pnt[2], segs[k1].Pnt[2])
		if d == 0.0 {
			return opti{}, errNotOptimizable
		}
		d1 := dpara(segs[k].Pnt[2], segs[k1].Pnt[2], pt) / d
		d2 := dpara(segs[k].Pnt[2], segs[k1].Pnt[2], segs[k1].Vertex) / d
		d2 *= 0.75 * segs[k1].Alpha
		if d2 < 0 {
			d1, d2 = -d1, -d2
		}
		if d1 < d2-tolerance {
			return opti{}, errNotOptimizable
		}
		if d1 < d2 {
			res.pen += (d1 - d2) * (d1 - d2)
		}
	}

	return res, nil
}

// opticurve replaces runs of consecutive Bézier segments in cur with a
// single segment wherever doing so stays within tolerance, via a
// shortest-path dynamic program over candidate merges.
func opticurve(cur *Curve, tolerance float64) *Curve {
	segs := cur.Segments
	m := len(segs)

	convex := make([]int, m)
	for i := 0; i < m; i++ {
		if segs[i].Tag == CurveSeg {
			convex[i] = int(signf(dpara(segs[mod(i-1, m)].Vertex, segs[i].Vertex, segs[mod(i+1, m)].Vertex)))
		} else {
			convex[i] = 0
		}
	}

	area := make([]float64, m+1)
	acc := 0.0
	area[0] = 0.0
	p0 := segs[0].Vertex
	for i := 0; i < m; i++ {
		i1 := mod(i+1, m)
		if segs[i1].Tag == CurveSeg {
			alpha := segs[i1].Alpha
			acc += 0.3 * alpha * (4 - alpha) * dpara(segs[i].Pnt[2], segs[i1].Vertex, segs[i1].Pnt[2]) / 2
			acc += dpara(p0, segs[i].Pnt[2], segs[i1].Pnt[2]) / 2
		}
		area[i+1] = acc
	}

	pt := make([]int, m+1)
	pen := make([]float64, m+1)
	length := make([]int, m+1)
	opt := make([]opti, m+1)

	pt[0] = -1
	pen[0] = 0
	length[0] = 0

	for j := 1; j <= m; j++ {
		pt[j] = j - 1
		pen[j] = pen[j-1]
		length[j] = length[j-1] + 1

		for i := j - 2; i >= 0; i-- {
			o, err := optiPenalty(cur, i, mod(j, m), tolerance, convex, area)
			if err != nil {
				break
			}
			if length[j] > length[i]+1 || (length[j] == length[i]+1 && pen[j] > pen[i]+o.pen) {
				pt[j] = i
				pen[j] = pen[i] + o.pen
				length[j] = length[i] + 1
				opt[j] = o
			}
		}
	}

	om := length[m]
	out := make([]Segment, om)
	s := make([]float64, om)
	t := make([]float64, om)

	j := m
	for i := om - 1; i >= 0; i-- {
		if pt[j] == j-1 {
			out[i] = segs[mod(j, m)]
			s[i], t[i] = 1.0, 1.0
		} else {
			out[i] = Segment{
				Tag:    CurveSeg,
				Pnt:    [3]curve.Point{opt[j].c[0], opt[j].c[1], segs[mod(j, m)].Pnt[2]},
				Vertex: interval(opt[j].s, segs[mod(j, m)].Pnt[2], segs[mod(j, m)].Vertex),
				Alpha:  opt[j].alpha,
				Alpha0: opt[j].alpha,
			}
			s[i], t[i] = opt[j].s, opt[j].t
		}
		j = pt[j]
	}

	for i := 0; i < om; i++ {
		i1 := mod(i+1, om)
		out[i].Beta = s[i] / (s[i] + t[i1])
	}

	return &Curve{Segments: out, Sign: cur.Sign}
}
