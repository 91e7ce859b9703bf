package analyzer

import (
	"testing"

	"svgtrace/internal/contour"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePath() *contour.Path {
	return &contour.Path{
		Sign: '+',
		Points: []contour.Point{
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
		},
		Area: 1,
		BBox: contour.BBox{X0: 1, Y0: 1, X1: 2, Y1: 2},
	}
}

func TestAnalyzeSquareProducesFourSegments(t *testing.T) {
	cur := Analyze(squarePath(), Params{AlphaMax: 1, OptCurve: false, OptTolerance: 0.2})
	require.NotNil(t, cur)
	assert.Len(t, cur.Segments, 4)
}

func TestAnalyzeOptCurveNeverGrowsSegmentCount(t *testing.T) {
	p := squarePath()
	plain := Analyze(p, Params{AlphaMax: 1, OptCurve: false, OptTolerance: 0.2})
	opt := Analyze(p, Params{AlphaMax: 1, OptCurve: true, OptTolerance: 0.2})
	assert.LessOrEqual(t, len(opt.Segments), len(plain.Segments))
}

func TestAnalyzeNegativeSignReversesOrientation(t *testing.T) {
	p := squarePath()
	p.Sign = '-'
	cur := Analyze(p, Params{AlphaMax: 1, OptCurve: false, OptTolerance: 0.2})
	assert.Equal(t, byte('-'), cur.Sign)

	plus := Analyze(squarePath(), Params{AlphaMax: 1, OptCurve: false, OptTolerance: 0.2})
	require.Len(t, cur.Segments, len(plus.Segments))
	for i, seg := range cur.Segments {
		assert.Equal(t, plus.Segments[len(plus.Segments)-1-i].Vertex, seg.Vertex)
	}
}

func TestCalcSumsOrigin(t *testing.T) {
	p := newPath(squarePath())
	p.calcSums()
	assert.Equal(t, 1, p.origX)
	assert.Equal(t, 1, p.origY)
	assert.Len(t, p.sums, p.n+1)
}

func TestCalcLonCoversAllIndices(t *testing.T) {
	p := newPath(squarePath())
	p.calcSums()
	p.calcLon()
	assert.Len(t, p.lon, p.n)
	for _, j := range p.lon {
		assert.GreaterOrEqual(t, j, 0)
	}
}
