package svgtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svgtrace/internal/bitmap"
	"svgtrace/internal/errs"
)

func blackSquareRGBA(n int) bitmap.RGBASource {
	pix := make([]byte, n*n*4)
	for i := 0; i < n*n; i++ {
		pix[i*4+3] = 255 // opaque black: R=G=B=0
	}
	return bitmap.RGBASource{Width: n, Height: n, Pix: pix}
}

func whiteRGBA(n int) bitmap.RGBASource {
	pix := make([]byte, n*n*4)
	for i := 0; i < n*n; i++ {
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = 255, 255, 255, 255
	}
	return bitmap.RGBASource{Width: n, Height: n, Pix: pix}
}

func TestGetSVGBeforeLoadFailsNotLoaded(t *testing.T) {
	tr, err := NewTracer(DefaultParams(), nil)
	require.NoError(t, err)
	_, err = tr.GetSVG()
	assert.ErrorIs(t, err, errs.ErrNotLoaded)
}

func TestGetSVGBlackSquareProducesOnePath(t *testing.T) {
	tr, err := NewTracer(DefaultParams(), nil)
	require.NoError(t, err)
	tr.LoadRGBA(blackSquareRGBA(2))
	out, err := tr.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, `fill="black"`)
	assert.Contains(t, out, `viewBox="0 0 2 2"`)
}

func TestGetSVGAllWhiteProducesNoPaths(t *testing.T) {
	tr, err := NewTracer(DefaultParams(), nil)
	require.NoError(t, err)
	tr.LoadRGBA(whiteRGBA(2))
	out, err := tr.GetSVG()
	require.NoError(t, err)
	assert.NotContains(t, out, "<path")
}

func TestSetParametersGeometryChangeInvalidatesCache(t *testing.T) {
	tr, err := NewTracer(DefaultParams(), nil)
	require.NoError(t, err)
	tr.LoadRGBA(blackSquareRGBA(2))
	_, err = tr.GetSVG()
	require.NoError(t, err)
	assert.Equal(t, stateProcessed, tr.state)

	next := tr.Params()
	next.TurdSize = 10
	require.NoError(t, tr.SetParameters(next))
	assert.Equal(t, stateLoaded, tr.state)
}

func TestSetParametersCosmeticChangeKeepsCache(t *testing.T) {
	tr, err := NewTracer(DefaultParams(), nil)
	require.NoError(t, err)
	tr.LoadRGBA(blackSquareRGBA(2))
	_, err = tr.GetSVG()
	require.NoError(t, err)

	next := tr.Params()
	next.Color = "red"
	require.NoError(t, tr.SetParameters(next))
	assert.Equal(t, stateProcessed, tr.state)
}

func TestValidateRejectsBadAlphaMax(t *testing.T) {
	p := DefaultParams()
	p.AlphaMax = 2
	assert.Error(t, p.Validate())
}

func TestValidateRejectsNegativeTurdSize(t *testing.T) {
	p := DefaultParams()
	p.TurdSize = -1
	assert.Error(t, p.Validate())
}
