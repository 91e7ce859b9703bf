package histogram

// otsuTable lazily builds the prefix sums of per-level probability p_l
// and l*p_l across the full [0,255] domain. From these, H(i,j) =
// S(i,j)^2 / P(i,j) (0 when P(i,j)=0) is computed on demand rather
// than materializing the full 256x256 matrix, since each threshold
// search only ever touches O(k) segment boundaries per candidate
// tuple.
func (h *Histogram) otsuTable() {
	h.tableOnce.Do(func() {
		if h.total == 0 {
			return
		}
		inv := 1.0 / float64(h.total)
		var runningP, runningS float64
		for l := 0; l < bins; l++ {
			p := float64(h.counts[l]) * inv
			runningP += p
			runningS += float64(l) * p
			h.p0[l] = runningP
			h.s0[l] = runningS
		}
	})
}

// segP returns P(i,j) = sum_{l=i}^{j} p_l.
func (h *Histogram) segP(i, j int) float64 {
	if i > j {
		return 0
	}
	p := h.p0[j]
	if i > 0 {
		p -= h.p0[i-1]
	}
	return p
}

// segS returns S(i,j) = sum_{l=i}^{j} l*p_l.
func (h *Histogram) segS(i, j int) float64 {
	if i > j {
		return 0
	}
	s := h.s0[j]
	if i > 0 {
		s -= h.s0[i-1]
	}
	return s
}

// segH returns H(i,j) = S(i,j)^2/P(i,j), 0 if P(i,j) == 0.
func (h *Histogram) segH(i, j int) float64 {
	p := h.segP(i, j)
	if p == 0 {
		return 0
	}
	s := h.segS(i, j)
	return s * s / p
}

// populatedBins counts distinct levels in [min,max] with a nonzero
// pixel count.
func (h *Histogram) populatedBins(min, max int) int {
	n := 0
	for l := min; l <= max; l++ {
		if h.counts[l] > 0 {
			n++
		}
	}
	return n
}

// MultilevelThresholding finds k' = min(k, max-min-2) thresholds in
// (min,max) maximizing the sum of between-class H over the k'+1
// resulting segments, via bounded recursive enumeration. Ties are
// broken by the smallest lexicographic tuple. Returns nil when k'<1
// or the histogram has no pixels in [min,max].
func (h *Histogram) MultilevelThresholding(k, min, max int) []int {
	kPrime := k
	if room := max - min - 2; room < kPrime {
		kPrime = room
	}
	if kPrime < 1 || h.total == 0 {
		return nil
	}

	h.otsuTable()

	if h.segP(min, max) == 0 {
		return nil
	}

	// A split into kPrime+1 nonempty segments needs at least that many
	// distinct populated levels; a uniform (or near-uniform) histogram
	// otherwise lets the lone bin's contribution land on either side of
	// every candidate threshold with an identical score, so the search
	// degenerates to returning the first-evaluated tuple instead of
	// reporting that no real split exists.
	if h.populatedBins(min, max) < kPrime+1 {
		return nil
	}

	best := make([]int, kPrime)
	bestScore := -1.0
	found := false
	current := make([]int, kPrime)

	var recurse func(level, lowerBound int, segStart int, scoreSoFar float64)
	recurse = func(level, lowerBound, segStart int, scoreSoFar float64) {
		remaining := kPrime - level
		// The last threshold must leave room for the final
		// non-empty segment [t_k+1, max], so t_level can range up
		// to max-remaining.
		upperBound := max - remaining
		for t := lowerBound; t <= upperBound; t++ {
			current[level] = t
			segScore := scoreSoFar + h.segH(segStart, t)
			if level == kPrime-1 {
				total := segScore + h.segH(t+1, max)
				if total > bestScore {
					bestScore = total
					copy(best, current)
					found = true
				}
				continue
			}
			recurse(level+1, t+1, t+1, segScore)
		}
	}
	recurse(0, min+1, min, 0)

	if !found {
		return nil
	}
	return best
}

// AutoThreshold returns multilevelThresholding(1,min,max)'s single
// value, or false if no threshold could be determined.
func (h *Histogram) AutoThreshold(min, max int) (int, bool) {
	t := h.MultilevelThresholding(1, min, max)
	if len(t) == 0 {
		return 0, false
	}
	return t[0], true
}
