package svgtrace

import (
	"fmt"

	"svgtrace/internal/analyzer"
	"svgtrace/internal/bitmap"
	"svgtrace/internal/contour"
	"svgtrace/internal/errs"
	"svgtrace/internal/histogram"
	"svgtrace/internal/svg"
	"svgtrace/internal/xlog"
)

type tracerState int

const (
	stateUnloaded tracerState = iota
	stateLoaded
	stateProcessed
)

// Tracer traces a single binarization threshold into SVG path data. It
// is a mutable, single-threaded object: concurrent calls on the same
// instance are undefined, but independent Tracers are safe to use in
// parallel.
type Tracer struct {
	params Params
	logger xlog.Logger

	state   tracerState
	lum     *bitmap.Bitmap
	hist    *histogram.Histogram
	width   int
	height  int
	loadGen uint64

	curves []*analyzer.Curve
}

// NewTracer constructs an unloaded Tracer. A nil logger is valid and
// discards every log event.
func NewTracer(params Params, logger xlog.Logger) (*Tracer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = (*xlog.Adapter)(nil)
	}
	return &Tracer{params: params, logger: logger}, nil
}

// SetParameters validates and applies new parameters. Any change to a
// field that affects geometry (turnPolicy, turdSize, alphaMax,
// optCurve, optTolerance, threshold, blackOnWhite) invalidates a cached
// Processed result, reverting to Loaded; cosmetic-only changes (color,
// background, width, height) never do.
func (t *Tracer) SetParameters(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if t.state == stateProcessed && !t.params.geometryEqual(p) {
		t.state = stateLoaded
		t.curves = nil
	}
	t.params = p
	return nil
}

// Params returns the Tracer's current parameters.
func (t *Tracer) Params() Params {
	return t.params
}

// LoadBitmap loads an already-binarized-ready luminance bitmap,
// discarding any prior processed result.
func (t *Tracer) LoadBitmap(b *bitmap.Bitmap) {
	t.lum = b
	t.width, t.height = b.Width, b.Height
	t.hist = nil
	t.state = stateLoaded
	t.curves = nil
	t.loadGen++
	t.logger.Debug("tracer", "bitmap loaded", map[string]interface{}{"width": b.Width, "height": b.Height})
}

// LoadRGBA decodes an RGBA source into a luminance bitmap and loads it.
func (t *Tracer) LoadRGBA(src bitmap.RGBASource) {
	t.LoadBitmap(bitmap.FromRGBA(src))
}

// LoadToken returns the monotonically increasing counter bumped by
// every load; an async decoder adapter compares this after a decode
// completes and returns Superseded if it no longer matches.
func (t *Tracer) LoadToken() uint64 {
	return t.loadGen
}

// CheckToken reports errs.ErrSuperseded if token no longer matches the
// Tracer's current load generation, for an async decode adapter to
// call before applying a completed decode's result.
func (t *Tracer) CheckToken(token uint64) error {
	if token != t.loadGen {
		return errs.ErrSuperseded
	}
	return nil
}

// Histogram returns the luminance histogram of the currently loaded
// bitmap, building it on first use. Posterizer does not call it; it
// builds its own histogram from its loaded bitmap.
func (t *Tracer) Histogram() (*histogram.Histogram, error) {
	if t.state == stateUnloaded {
		return nil, errs.ErrNotLoaded
	}
	if t.hist == nil {
		t.hist = histogram.Build(t.lum)
	}
	return t.hist, nil
}

func (t *Tracer) process() error {
	if t.state == stateProcessed {
		return nil
	}
	if t.state == stateUnloaded {
		return errs.ErrNotLoaded
	}

	threshold := t.params.Threshold
	if threshold == AutoThreshold {
		hist, err := t.Histogram()
		if err != nil {
			return err
		}
		auto, ok := hist.AutoThreshold(0, 255)
		if !ok {
			auto = 128
		}
		threshold = auto
	}

	curves, err := traceThreshold(t.lum, t.params, threshold)
	if err != nil {
		return err
	}

	t.curves = curves
	t.state = stateProcessed
	t.logger.Info("tracer", "processed", map[string]interface{}{"paths": len(curves), "threshold": threshold})
	return nil
}

// traceThreshold runs binarize -> decompose -> analyze for a single
// threshold against an already-loaded luminance bitmap. It is the
// shared core between Tracer.process and Posterizer's per-range
// passes, so a posterization never needs to spin up one Tracer per
// layer just to reuse this pipeline.
func traceThreshold(lum *bitmap.Bitmap, p Params, threshold int) ([]*analyzer.Curve, error) {
	bin := lum.Binarize(threshold, p.BlackOnWhite)
	dec := contour.New(p.TurnPolicy.toContour())
	paths, err := dec.Decompose(bin, p.TurdSize)
	if err != nil {
		return nil, fmt.Errorf("svgtrace: %w", err)
	}

	curves := make([]*analyzer.Curve, len(paths))
	for i, path := range paths {
		curves[i] = analyzer.Analyze(path, analyzer.Params{
			AlphaMax:     p.AlphaMax,
			OptCurve:     p.OptCurve,
			OptTolerance: p.OptTolerance,
		})
	}
	return curves, nil
}

func (t *Tracer) outputDims() (int, int) {
	w, h := t.width, t.height
	if t.params.Width > 0 {
		w = t.params.Width
	}
	if t.params.Height > 0 {
		h = t.params.Height
	}
	return w, h
}

// GetSVG renders the current trace to a full SVG document string.
func (t *Tracer) GetSVG() (string, error) {
	if err := t.process(); err != nil {
		return "", err
	}
	w, h := t.outputDims()
	layer := svg.Layer{D: svg.PathData(t.curves), Fill: t.params.resolveColor()}
	return svg.Document(w, h, t.params.resolveBackground(), []svg.Layer{layer}), nil
}

// GetPathTag renders just the <path> element (no surrounding <svg>),
// optionally overriding the fill color.
func (t *Tracer) GetPathTag(fillOverride *string) (string, error) {
	if err := t.process(); err != nil {
		return "", err
	}
	fill := t.params.resolveColor()
	if fillOverride != nil {
		fill = *fillOverride
	}
	d := svg.PathData(t.curves)
	tag := fmt.Sprintf(`<path d="%s" stroke="none" fill="%s" fill-rule="evenodd"/>`, d, fill)
	return tag, nil
}

// GetSymbol renders the current trace as a <symbol id viewBox> element.
func (t *Tracer) GetSymbol(id string) (string, error) {
	if err := t.process(); err != nil {
		return "", err
	}
	w, h := t.outputDims()
	layer := svg.Layer{D: svg.PathData(t.curves)}
	return svg.Symbol(id, w, h, []svg.Layer{layer}), nil
}

// Curves exposes the processed curve list, running the trace first if
// it has not been run since the last load or geometry change.
func (t *Tracer) Curves() ([]*analyzer.Curve, error) {
	if err := t.process(); err != nil {
		return nil, err
	}
	return t.curves, nil
}

// Dimensions returns the output width/height that GetSVG/GetSymbol
// would use.
func (t *Tracer) Dimensions() (int, int, error) {
	if t.state == stateUnloaded {
		return 0, 0, errs.ErrNotLoaded
	}
	w, h := t.outputDims()
	return w, h, nil
}
