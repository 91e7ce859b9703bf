package svg

import (
	"testing"

	"honnef.co/go/curve"

	"github.com/stretchr/testify/assert"

	"svgtrace/internal/analyzer"
)

func TestFixedStripsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1", fixed(1.0))
	assert.Equal(t, "1.5", fixed(1.5))
	assert.Equal(t, "1.234", fixed(1.2344))
	assert.Equal(t, "0", fixed(0))
}

func squareCurve() *analyzer.Curve {
	return &analyzer.Curve{
		Sign: '+',
		Segments: []analyzer.Segment{
			{Tag: analyzer.Corner, Pnt: [3]curve.Point{{}, curve.Pt(2, 1), curve.Pt(2, 2)}},
			{Tag: analyzer.Corner, Pnt: [3]curve.Point{{}, curve.Pt(1, 2), curve.Pt(1, 1)}},
		},
	}
}

func TestPathDataStartsWithM(t *testing.T) {
	d := PathData([]*analyzer.Curve{squareCurve()})
	assert.True(t, len(d) > 0)
	assert.Equal(t, byte('M'), d[0])
}

func TestDocumentOmitsRectWhenTransparent(t *testing.T) {
	out := Document(10, 10, Transparent, []Layer{{D: "M0 0", Fill: "black"}})
	assert.NotContains(t, out, "<rect")
	assert.Contains(t, out, `viewBox="0 0 10 10"`)
}

func TestDocumentOmitsEmptyLayers(t *testing.T) {
	out := Document(10, 10, "white", []Layer{{D: ""}})
	assert.NotContains(t, out, "<path")
}

func TestSymbolHasNoFillOrBackground(t *testing.T) {
	out := Symbol("a", 10, 10, []Layer{{D: "M0 0", Fill: "black"}})
	assert.NotContains(t, out, `fill="black"`)
	assert.NotContains(t, out, "<rect")
}

func TestSetAttrInsertsWhenMissing(t *testing.T) {
	out := SetAttr(`<path d="M0 0"/>`, "fill", "red")
	assert.Contains(t, out, `<path fill="red" d="M0 0"/>`)
}

func TestSetAttrReplacesWhenPresent(t *testing.T) {
	out := SetAttr(`<path fill="black" d="M0 0"/>`, "fill", "red")
	assert.Contains(t, out, `fill="red"`)
	assert.NotContains(t, out, `fill="black"`)
}
