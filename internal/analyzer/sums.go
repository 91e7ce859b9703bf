package analyzer

// calcSums translates points to an origin at the first point and
// builds prefix sums of x, y, x*y, x*x, y*y so any sub-range's
// least-squares line fit is an O(1) lookup.
func (p *path) calcSums() {
	p.sums = make([]sums, p.n+1)
	p.origX, p.origY = p.pt[0].X, p.pt[0].Y
	for i, pt := range p.pt {
		x := float64(pt.X - p.origX)
		y := float64(pt.Y - p.origY)
		p.sums[i+1].x = p.sums[i].x + x
		p.sums[i+1].y = p.sums[i].y + y
		p.sums[i+1].x2 = p.sums[i].x2 + x*x
		p.sums[i+1].xy = p.sums[i].xy + x*y
		p.sums[i+1].y2 = p.sums[i].y2 + y*y
	}
}
