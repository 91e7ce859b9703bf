package analyzer

// reverseOrientation flips the vertex order of a curve traced as a hole
// (negative area) so every segment's outward normal is consistent
// before smoothing and rendering.
func reverseOrientation(cur *Curve) {
	segs := cur.Segments
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i].Vertex, segs[j].Vertex = segs[j].Vertex, segs[i].Vertex
	}
}

// smooth classifies each vertex as a pointed Corner or a rounded
// CurveSeg based on how sharply the polygon turns there, and computes
// the Bézier control points for the curved case.
func smooth(cur *Curve, alphaMax float64) {
	segs := cur.Segments
	m := len(segs)
	for i := 0; i < m; i++ {
		j := mod(i+1, m)
		k := mod(i+2, m)
		p4 := interval(0.5, segs[k].Vertex, segs[j].Vertex)

		var alpha float64
		denom := ddenom(segs[i].Vertex, segs[k].Vertex)
		if denom != 0.0 {
			dd := dpara(segs[i].Vertex, segs[j].Vertex, segs[k].Vertex) / denom
			dd = fabs(dd)
			if dd > 1 {
				alpha = 1 - 1.0/dd
			} else {
				alpha = 0
			}
			alpha = alpha / 0.75
		} else {
			alpha = 4 / 3.0
		}
		segs[j].Alpha0 = alpha

		if alpha >= alphaMax {
			segs[j].Tag = Corner
			segs[j].Pnt[1] = segs[j].Vertex
			segs[j].Pnt[2] = p4
		} else {
			if alpha < 0.55 {
				alpha = 0.55
			} else if alpha > 1 {
				alpha = 1
			}
			p2 := interval(.5+.5*alpha, segs[i].Vertex, segs[j].Vertex)
			p3 := interval(.5+.5*alpha, segs[k].Vertex, segs[j].Vertex)
			segs[j].Tag = CurveSeg
			segs[j].Pnt[0] = p2
			segs[j].Pnt[1] = p3
			segs[j].Pnt[2] = p4
		}
		segs[j].Alpha = alpha
		segs[j].Beta = 0.5
	}
}
