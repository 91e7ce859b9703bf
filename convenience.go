package svgtrace

import "svgtrace/internal/bitmap"

// Trace bundles construction, load, and render: trace an RGBA source
// with params (DefaultParams() if nil) and return the SVG document.
func Trace(src bitmap.RGBASource, params *Params) (string, error) {
	p := DefaultParams()
	if params != nil {
		p = *params
	}
	tr, err := NewTracer(p, nil)
	if err != nil {
		return "", err
	}
	tr.LoadRGBA(src)
	return tr.GetSVG()
}

// Posterize bundles construction, load, and render for the Posterizer
// façade, mirroring Trace.
func Posterize(src bitmap.RGBASource, params *PosterizerParams) (string, error) {
	p := DefaultPosterizerParams()
	if params != nil {
		p = *params
	}
	ps, err := NewPosterizer(p, nil)
	if err != nil {
		return "", err
	}
	ps.LoadRGBA(src)
	return ps.GetSVG()
}
