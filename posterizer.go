package svgtrace

import (
	"math"
	"sort"

	"golang.org/x/exp/slices"

	"svgtrace/internal/bitmap"
	"svgtrace/internal/errs"
	"svgtrace/internal/histogram"
	"svgtrace/internal/svg"
	"svgtrace/internal/xlog"
)

// FillStrategy selects the representative color of a posterization
// range.
type FillStrategy string

const (
	FillSpread   FillStrategy = "spread"
	FillDominant FillStrategy = "dominant"
	FillMean     FillStrategy = "mean"
	FillMedian   FillStrategy = "median"
)

// RangeDistribution selects how posterization range boundaries are
// chosen within the usable half of the luminance scale.
type RangeDistribution string

const (
	RangeAuto  RangeDistribution = "auto"
	RangeEqual RangeDistribution = "equal"
)

// Steps configures the posterizer's layer count: Auto chooses 3 or 4
// based on the usable color range, Count fixes a layer count (clamped
// to the usable range), and Values supplies explicit thresholds
// directly, taking precedence over Count when non-empty.
type Steps struct {
	Auto   bool
	Count  int
	Values []int
}

// PosterizerParams configures a Posterizer; it embeds Params so every
// Tracer option (turnPolicy, turdSize, alphaMax, ...) also applies to
// each of the posterizer's tracer passes.
type PosterizerParams struct {
	Params
	Steps             Steps
	FillStrategy      FillStrategy
	RangeDistribution RangeDistribution
}

// DefaultPosterizerParams returns the posterizer defaults.
func DefaultPosterizerParams() PosterizerParams {
	return PosterizerParams{
		Params:            DefaultParams(),
		Steps:             Steps{Auto: true},
		FillStrategy:      FillDominant,
		RangeDistribution: RangeAuto,
	}
}

// Posterizer composes N tracer passes at different thresholds into a
// single SVG, with deeper layers painted at decreasing opacity to
// approximate continuous tone from a handful of binary silhouettes.
type Posterizer struct {
	params PosterizerParams
	logger xlog.Logger

	lum    *bitmap.Bitmap
	hist   *histogram.Histogram
	width  int
	height int
	loaded bool
}

// NewPosterizer constructs an unloaded Posterizer.
func NewPosterizer(params PosterizerParams, logger xlog.Logger) (*Posterizer, error) {
	if err := params.Params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = (*xlog.Adapter)(nil)
	}
	return &Posterizer{params: params, logger: logger}, nil
}

// SetParameters replaces the posterizer's parameters.
func (p *Posterizer) SetParameters(params PosterizerParams) error {
	if err := params.Params.Validate(); err != nil {
		return err
	}
	p.params = params
	return nil
}

// LoadBitmap loads a luminance bitmap for posterization.
func (p *Posterizer) LoadBitmap(b *bitmap.Bitmap) {
	p.lum = b
	p.width, p.height = b.Width, b.Height
	p.hist = nil
	p.loaded = true
}

// LoadRGBA decodes an RGBA source and loads it.
func (p *Posterizer) LoadRGBA(src bitmap.RGBASource) {
	p.LoadBitmap(bitmap.FromRGBA(src))
}

func (p *Posterizer) histogramOf() (*histogram.Histogram, error) {
	if !p.loaded {
		return nil, errs.ErrNotLoaded
	}
	if p.hist == nil {
		p.hist = histogram.Build(p.lum)
	}
	return p.hist, nil
}

// posterRange is one tonal layer: the threshold that produced it and
// its normalized color intensity in [0,1].
type posterRange struct {
	threshold int
	intensity float64
}

func (p *Posterizer) effectiveThreshold(hist *histogram.Histogram) int {
	if p.params.Threshold != AutoThreshold {
		return p.params.Threshold
	}
	auto, ok := hist.AutoThreshold(0, 255)
	if !ok {
		return 128
	}
	return auto
}

// usableRange returns the span of luminance values between the
// effective threshold and the extreme the posterizer paints toward.
func usableRange(threshold int, blackOnWhite bool) int {
	if blackOnWhite {
		return threshold
	}
	return 255 - threshold
}

// resolveStepCount applies the step-count resolution rules against a
// scalar Steps spec (Values handled separately by the caller).
func (p *Posterizer) resolveStepCount(threshold int) int {
	s := p.params.Steps
	usable := usableRange(threshold, p.params.BlackOnWhite)

	if !s.Auto && s.Count > 0 {
		n := s.Count
		if n < 2 {
			n = 2
		}
		if n > usable {
			n = usable
		}
		if n < 2 {
			n = 2
		}
		return n
	}

	if p.params.Threshold == AutoThreshold {
		return 4
	}
	if usable > 200 {
		return 4
	}
	return 3
}

// thresholdsFromExplicitSteps handles the "steps is an explicit array"
// case: unique entries sorted by saturation order, with the effective
// threshold prepended/appended if it falls outside the outermost stop.
func thresholdsFromExplicitSteps(values []int, threshold int, blackOnWhite bool) []int {
	uniq := make([]int, 0, len(values))
	for _, v := range values {
		if v >= 0 && v <= 255 {
			uniq = append(uniq, v)
		}
	}
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)
	if blackOnWhite {
		// descending: most-saturated (closest to 0) last per the
		// layering convention, but the stop LIST itself is requested
		// in descending numeric order by the design notes' fixtures.
		slices.Reverse(uniq)
	}

	if len(uniq) == 0 {
		return []int{threshold}
	}

	if blackOnWhite {
		if threshold > uniq[0] {
			uniq = append([]int{threshold}, uniq...)
		} else if threshold < uniq[len(uniq)-1] {
			uniq = append(uniq, threshold)
		}
	} else {
		if threshold < uniq[0] {
			uniq = append([]int{threshold}, uniq...)
		} else if threshold > uniq[len(uniq)-1] {
			uniq = append(uniq, threshold)
		}
	}
	return uniq
}

// distributeEqual returns n evenly spaced thresholds across the usable
// half, ordered toward the most saturated stop last.
func distributeEqual(n, threshold int, blackOnWhite bool) []int {
	out := make([]int, n)
	if blackOnWhite {
		step := float64(threshold) / float64(n)
		for i := 0; i < n; i++ {
			out[i] = threshold - int(math.Round(step*float64(i)))
		}
	} else {
		step := float64(255-threshold) / float64(n)
		for i := 0; i < n; i++ {
			out[i] = threshold + int(math.Round(step*float64(i)))
		}
	}
	return out
}

// distributeAuto uses Otsu multilevel thresholding to pick n
// thresholds over the whole 0..255 scale when the threshold is
// automatic; otherwise it picks n-1 thresholds within the usable half
// and injects the explicit threshold at the appropriate end.
func (p *Posterizer) distributeAuto(hist *histogram.Histogram, n, threshold int) []int {
	if p.params.Threshold == AutoThreshold {
		return hist.MultilevelThresholding(n, 0, 255)
	}

	var sub []int
	if p.params.BlackOnWhite {
		sub = hist.MultilevelThresholding(n-1, 0, threshold)
		return append(sub, threshold)
	}
	sub = hist.MultilevelThresholding(n-1, threshold, 255)
	return append([]int{threshold}, sub...)
}

// buildRanges resolves the full ordered list of (threshold, intensity)
// ranges per the step-count, distribution, and fill-strategy rules,
// including the ≥10-range extra-stop heuristic.
func (p *Posterizer) buildRanges(hist *histogram.Histogram) []posterRange {
	threshold := p.effectiveThreshold(hist)

	var thresholds []int
	if len(p.params.Steps.Values) > 0 {
		thresholds = thresholdsFromExplicitSteps(p.params.Steps.Values, threshold, p.params.BlackOnWhite)
	} else {
		n := p.resolveStepCount(threshold)
		if p.params.RangeDistribution == RangeEqual {
			thresholds = distributeEqual(n, threshold, p.params.BlackOnWhite)
		} else {
			thresholds = p.distributeAuto(hist, n, threshold)
		}
	}

	sort.Ints(thresholds)
	if p.params.BlackOnWhite {
		// least-saturated -> most-saturated means descending thresholds
		// for black-on-white (closer to 0 is darker/more saturated).
		for i, j := 0, len(thresholds)-1; i < j; i, j = i+1, j-1 {
			thresholds[i], thresholds[j] = thresholds[j], thresholds[i]
		}
	}

	ranges := make([]posterRange, 0, len(thresholds))
	lo := 0
	for i, t := range thresholds {
		a, b := lo, t
		if p.params.BlackOnWhite {
			a, b = t, lo
			if i > 0 {
				a, b = t, thresholds[i-1]
			} else {
				a, b = t, 255
			}
		}
		intensity := p.rangeIntensity(hist, minInt(a, b), maxInt(a, b), i, len(thresholds), usableRange(threshold, p.params.BlackOnWhite))
		ranges = append(ranges, posterRange{threshold: t, intensity: intensity})
		lo = t
	}

	ranges = p.maybeAddExtraStop(hist, ranges)
	return ranges
}

func (p *Posterizer) rangeIntensity(hist *histogram.Histogram, min, max, index, total, fullRange int) float64 {
	if min > max {
		min, max = max, min
	}
	stats, err := hist.RangeStats(min, max)
	if err != nil || stats.Pixels == 0 {
		return 0
	}

	var c float64
	switch p.params.FillStrategy {
	case FillSpread:
		factor := float64(index) / math.Max(1, float64(total-1))
		scale := math.Max(0.5, float64(fullRange)/255)
		if p.params.BlackOnWhite {
			c = 255 - factor*scale*255
		} else {
			c = factor * scale * 255
		}
	case FillMean:
		c = stats.Levels.Mean
	case FillMedian:
		c = stats.Levels.Median
	default: // FillDominant
		tol := max - min
		if tol < 1 {
			tol = 1
		}
		if tol > 5 {
			tol = 5
		}
		dom, err := hist.DominantColor(min, max, tol)
		if err != nil || dom < 0 {
			return 0
		}
		c = float64(dom)
	}

	if index > 0 {
		guard := 0.10 * float64(max-min)
		if p.params.BlackOnWhite {
			if c > float64(max)-guard {
				c = float64(max) - guard
			}
		} else {
			if c < float64(min)+guard {
				c = float64(min) + guard
			}
		}
	}

	if p.params.BlackOnWhite {
		return clamp01((255 - c) / 255)
	}
	return clamp01(c / 255)
}

// maybeAddExtraStop implements the ≥10-range extra-stop heuristic:
// when the last range is wide and not yet fully saturated, pull an
// additional near-extreme threshold from the residual sub-range's
// mean/stdDev to recover detail near the tonal extreme.
func (p *Posterizer) maybeAddExtraStop(hist *histogram.Histogram, ranges []posterRange) []posterRange {
	if len(ranges) < 10 {
		return ranges
	}
	last := ranges[len(ranges)-1]
	var span int
	var lo, hi int
	if p.params.BlackOnWhite {
		lo, hi = 0, last.threshold
	} else {
		lo, hi = last.threshold, 255
	}
	span = hi - lo
	if span <= 25 || last.intensity >= 1 {
		return ranges
	}

	stats, err := hist.RangeStats(lo, hi)
	if err != nil || stats.Pixels == 0 {
		return ranges
	}

	var extra int
	if p.params.BlackOnWhite {
		extra = int(math.Round(stats.Levels.Mean - stats.Levels.StdDev))
		if extra > 25 {
			extra = 25
		}
		if extra < 0 {
			extra = 0
		}
	} else {
		extra = int(math.Round(stats.Levels.Mean + stats.Levels.StdDev))
		if extra < 255-25 {
			extra = 255 - 25
		}
		if extra > 255 {
			extra = 255
		}
	}

	threshold := p.effectiveThreshold(hist)
	intensity := p.rangeIntensity(hist, minInt(lo, extra), maxInt(lo, extra), len(ranges), len(ranges)+1, usableRange(threshold, p.params.BlackOnWhite))
	return append(ranges, posterRange{threshold: extra, intensity: intensity})
}

// GetSVG composites every non-empty, non-zero-opacity range into a
// single SVG document using the one-pass layering opacity model.
func (p *Posterizer) GetSVG() (string, error) {
	hist, err := p.histogramOf()
	if err != nil {
		return "", err
	}

	ranges := p.buildRanges(hist)

	var layers []svg.Layer
	actualPrev := 0.0
	fg := p.params.resolveColor()

	for _, r := range ranges {
		curves, err := traceThreshold(p.lum, p.params.Params, r.threshold)
		if err != nil {
			return "", err
		}
		d := svg.PathData(curves)
		if d == "" {
			continue
		}

		opacity := r.intensity
		if actualPrev != 0 && r.intensity != 1 {
			opacity = clamp01(round3((actualPrev - r.intensity) / (actualPrev - 1)))
		}
		if opacity <= 0 {
			continue
		}
		actualPrev += (1 - actualPrev) * opacity

		layers = append(layers, svg.Layer{D: d, Fill: fg, FillOpacity: opacity})
	}

	w, h := p.width, p.height
	if p.params.Width > 0 {
		w = p.params.Width
	}
	if p.params.Height > 0 {
		h = p.params.Height
	}
	return svg.Document(w, h, p.params.resolveBackground(), layers), nil
}

// GetSymbol renders the posterization as a <symbol> element, clearing
// the per-layer fill color per the symbol grammar.
func (p *Posterizer) GetSymbol(id string) (string, error) {
	hist, err := p.histogramOf()
	if err != nil {
		return "", err
	}
	ranges := p.buildRanges(hist)

	var layers []svg.Layer
	actualPrev := 0.0
	for _, r := range ranges {
		curves, err := traceThreshold(p.lum, p.params.Params, r.threshold)
		if err != nil {
			return "", err
		}
		d := svg.PathData(curves)
		if d == "" {
			continue
		}
		opacity := r.intensity
		if actualPrev != 0 && r.intensity != 1 {
			opacity = clamp01(round3((actualPrev - r.intensity) / (actualPrev - 1)))
		}
		if opacity <= 0 {
			continue
		}
		actualPrev += (1 - actualPrev) * opacity
		layers = append(layers, svg.Layer{D: d, FillOpacity: opacity})
	}

	w, h := p.width, p.height
	if p.params.Width > 0 {
		w = p.params.Width
	}
	if p.params.Height > 0 {
		h = p.params.Height
	}
	return svg.Symbol(id, w, h, layers), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
