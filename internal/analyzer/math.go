package analyzer

import (
	"math"

	"honnef.co/go/curve"
)

func mod(a, n int) int {
	if n == 0 {
		return a
	}
	if a >= n {
		return a % n
	}
	if a >= 0 {
		return a
	}
	return a%n + n
}

func floordiv(a, n int) int {
	if n == 0 {
		return 0
	}
	if a >= 0 {
		return a / n
	}
	return -1 - (-a-1)/n
}

func signInt(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func signf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// cyclic reports a<=b<c<a in a cyclic (mod n) sense.
func cyclic(a, b, c int) bool {
	if a <= c {
		return a <= b && b < c
	}
	return a <= b || b < c
}

// xprod computes the integer cross product of two grid vectors.
func xprod(p1, p2 contourPoint) int {
	return p1.X*p2.Y - p1.Y*p2.X
}

type contourPoint struct{ X, Y int }

// dorthInfty returns a direction 90deg counterclockwise from p2-p0,
// restricted to one of the 8 major wind directions.
func dorthInfty(p0, p2 curve.Point) curve.Point {
	return curve.Pt(-signf(p2.Y-p0.Y), signf(p2.X-p0.X))
}

// dpara returns (p1-p0)x(p2-p0), the parallelogram area.
func dpara(p0, p1, p2 curve.Point) float64 {
	x1 := p1.X - p0.X
	y1 := p1.Y - p0.Y
	x2 := p2.X - p0.X
	y2 := p2.Y - p0.Y
	return x1*y2 - x2*y1
}

// ddenom together with dpara satisfies: the unit circle centered at
// p1 intersects line p0p2 iff |dpara(p0,p1,p2)| <= ddenom(p0,p2).
func ddenom(p0, p2 curve.Point) float64 {
	r := dorthInfty(p0, p2)
	return r.Y*(p2.X-p0.X) - r.X*(p2.Y-p0.Y)
}

// cprod returns (p1-p0)x(p3-p2).
func cprod(p0, p1, p2, p3 curve.Point) float64 {
	x1 := p1.X - p0.X
	y1 := p1.Y - p0.Y
	x2 := p3.X - p2.X
	y2 := p3.Y - p2.Y
	return x1*y2 - x2*y1
}

// iprod returns (p1-p0).(p2-p0).
func iprod(p0, p1, p2 curve.Point) float64 {
	x1 := p1.X - p0.X
	y1 := p1.Y - p0.Y
	x2 := p2.X - p0.X
	y2 := p2.Y - p0.Y
	return x1*x2 + y1*y2
}

// iprod1 returns (p1-p0).(p3-p2).
func iprod1(p0, p1, p2, p3 curve.Point) float64 {
	x1 := p1.X - p0.X
	y1 := p1.Y - p0.Y
	x2 := p3.X - p2.X
	y2 := p3.Y - p2.Y
	return x1*x2 + y1*y2
}

func ddist(p, q curve.Point) float64 {
	x, y := p.X-q.X, p.Y-q.Y
	return math.Sqrt(x*x + y*y)
}

// interval returns the point a fraction t of the way from a to b.
func interval(t float64, a, b curve.Point) curve.Point {
	return curve.Pt(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y))
}

func bezierPoint(t float64, p0, p1, p2, p3 curve.Point) curve.Point {
	s := 1 - t
	return curve.Pt(
		s*s*s*p0.X+3*(s*s*t)*p1.X+3*(t*t*s)*p2.X+t*t*t*p3.X,
		s*s*s*p0.Y+3*(s*s*t)*p1.Y+3*(t*t*s)*p2.Y+t*t*t*p3.Y,
	)
}

// tangent finds t in [0,1] on cubic (p0,p1,p2,p3) tangent to q1-q0,
// or -1 if there is none.
func tangent(p0, p1, p2, p3, q0, q1 curve.Point) float64 {
	A := cprod(p0, p1, q0, q1)
	B := cprod(p1, p2, q0, q1)
	C := cprod(p2, p3, q0, q1)

	a := A - 2*B + C
	b := -2*A + 2*B
	c := A

	d := b*b - 4*a*c
	if a == 0 || d < 0 {
		return -1
	}
	s := math.Sqrt(d)
	r1 := (-b + s) / (2 * a)
	r2 := (-b - s) / (2 * a)
	if r1 >= 0 && r1 <= 1 {
		return r1
	}
	if r2 >= 0 && r2 <= 1 {
		return r2
	}
	return -1
}

// quadForm is a symmetric 3x3 matrix representing a quadratic form
// over homogeneous 2D points (x,y,1).
type quadForm [3][3]float64

func quadform(q quadForm, w curve.Point) float64 {
	v := [3]float64{w.X, w.Y, 1}
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += v[i] * q[i][j] * v[j]
		}
	}
	return sum
}

func fabs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

const cCos179 = -0.999847695156
