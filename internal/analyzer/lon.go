package analyzer

// calcLon fills lon[i] with the furthest index j such that the
// sub-path [i..j] is straight: its unit-step direction vector never
// visits more than a 180-degree arc of the 8-direction compass. It
// first finds, for each point, the next point reachable by a pure
// horizontal/vertical run (nc), then walks forward from each i using a
// 2-point "constraint cone" so only points where the cone is
// violated need to be checked against all four direction buckets.
// Finally it enforces cyclic monotonicity so lon[i] is truly the
// furthest straight endpoint reachable from i on the closed curve.
func (p *path) calcLon() {
	n := p.n
	pt := p.pt

	nc := make([]int, n)
	k := 0
	for i := n - 1; i >= 0; i-- {
		if pt[i].X != pt[k].X && pt[i].Y != pt[k].Y {
			k = i + 1
		}
		nc[i] = k
	}

	pivk := make([]int, n)
	p.lon = make([]int, n)

	var ct [4]int
	var constraint [2]contourPoint

	for i := n - 1; i >= 0; i-- {
		ct[0], ct[1], ct[2], ct[3] = 0, 0, 0, 0

		dir := (3 + 3*signInt(pt[mod(i+1, n)].X-pt[i].X) + signInt(pt[mod(i+1, n)].Y-pt[i].Y)) / 2
		ct[dir]++

		constraint[0] = contourPoint{}
		constraint[1] = contourPoint{}

		k = nc[i]
		k1 := i
		var cur, off, dk contourPoint
		var a, b, c, d int
		found := false
		for {
			dir = (3 + 3*signInt(pt[k].X-pt[k1].X) + signInt(pt[k].Y-pt[k1].Y)) / 2
			ct[dir]++

			if ct[0] != 0 && ct[1] != 0 && ct[2] != 0 && ct[3] != 0 {
				pivk[i] = k1
				found = true
				break
			}

			cur.X = pt[k].X - pt[i].X
			cur.Y = pt[k].Y - pt[i].Y

			if xprod(constraint[0], cur) < 0 || xprod(constraint[1], cur) > 0 {
				break
			}

			if absInt(cur.X) <= 1 && absInt(cur.Y) <= 1 {
				// no constraint
			} else {
				if cur.Y >= 0 && (cur.Y > 0 || cur.X < 0) {
					off.X = cur.X + 1
				} else {
					off.X = cur.X - 1
				}
				if cur.X <= 0 && (cur.X < 0 || cur.Y < 0) {
					off.Y = cur.Y + 1
				} else {
					off.Y = cur.Y - 1
				}
				if xprod(constraint[0], off) >= 0 {
					constraint[0] = off
				}
				if cur.Y <= 0 && (cur.Y < 0 || cur.X < 0) {
					off.X = cur.X + 1
				} else {
					off.X = cur.X - 1
				}
				if cur.X >= 0 && (cur.X > 0 || cur.Y < 0) {
					off.Y = cur.Y + 1
				} else {
					off.Y = cur.Y - 1
				}
				if xprod(constraint[1], off) <= 0 {
					constraint[1] = off
				}
			}
			k1 = k
			k = nc[k1]
			if !cyclic(k, i, k1) {
				break
			}
		}
		if found {
			continue
		}

		dk.X = signInt(pt[k].X - pt[k1].X)
		dk.Y = signInt(pt[k].Y - pt[k1].Y)
		cur.X = pt[k1].X - pt[i].X
		cur.Y = pt[k1].Y - pt[i].Y

		a = xprod(constraint[0], cur)
		b = xprod(constraint[0], dk)
		c = xprod(constraint[1], cur)
		d = xprod(constraint[1], dk)

		j := 1 << 30
		if b < 0 {
			j = floordiv(a, -b)
		}
		if d > 0 {
			if alt := floordiv(-c, d); alt < j {
				j = alt
			}
		}
		pivk[i] = mod(k1+j, n)
	}

	j := pivk[n-1]
	p.lon[n-1] = j
	for i := n - 2; i >= 0; i-- {
		if cyclic(i+1, pivk[i], j) {
			j = pivk[i]
		}
		p.lon[i] = j
	}
	for i := n - 1; cyclic(mod(i+1, n), j, p.lon[i]); i-- {
		p.lon[i] = j
	}
}
