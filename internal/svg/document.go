package svg

import (
	"fmt"
	"strings"
)

// Transparent is the background sentinel that suppresses the
// background <rect>.
const Transparent = "transparent"

// Layer is one rendered path: the tracer emits one per call, the
// posterizer emits one per tonal range.
type Layer struct {
	D           string
	Fill        string
	FillOpacity float64 // 0 means "omit the attribute", i.e. fully opaque
}

// Document assembles the full <svg> wrapper around a set of layers.
func Document(width, height int, background string, layers []Layer) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" version="1.1">`,
		width, height, width, height)

	if background != "" && background != Transparent {
		fmt.Fprintf(&b, `<rect x="0" y="0" width="100%%" height="100%%" fill="%s"/>`, background)
	}

	for _, l := range layers {
		if l.D == "" {
			continue
		}
		b.WriteString(`<path d="`)
		b.WriteString(l.D)
		b.WriteString(`" stroke="none" fill="`)
		b.WriteString(l.Fill)
		b.WriteString(`" fill-rule="evenodd"`)
		if l.FillOpacity > 0 && l.FillOpacity < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, fixed(l.FillOpacity))
		}
		b.WriteString(`/>`)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// Symbol assembles the <symbol> form: no background, no fill colors —
// callers style the instantiated <use> element instead.
func Symbol(id string, width, height int, layers []Layer) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<symbol viewBox="0 0 %d %d" id="%s">`, width, height, id)

	for _, l := range layers {
		if l.D == "" {
			continue
		}
		b.WriteString(`<path d="`)
		b.WriteString(l.D)
		b.WriteString(`" stroke="none" fill-rule="evenodd"`)
		if l.FillOpacity > 0 && l.FillOpacity < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, fixed(l.FillOpacity))
		}
		b.WriteString(`/>`)
	}

	b.WriteString(`</symbol>`)
	return b.String()
}
