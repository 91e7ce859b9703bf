package svgtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosterizerGetSVGBeforeLoadFails(t *testing.T) {
	p, err := NewPosterizer(DefaultPosterizerParams(), nil)
	require.NoError(t, err)
	_, err = p.GetSVG()
	assert.Error(t, err)
}

func TestPosterizerExplicitStepsBlackOnWhiteOrder(t *testing.T) {
	thresholds := thresholdsFromExplicitSteps([]int{20, 60, 80, 160}, 180, true)
	assert.Equal(t, []int{180, 160, 80, 60, 20}, thresholds)
}

func TestPosterizerExplicitStepsWhiteOnBlackOrder(t *testing.T) {
	thresholds := thresholdsFromExplicitSteps([]int{20, 60, 80, 160}, 180, false)
	assert.Equal(t, []int{20, 60, 80, 160, 180}, thresholds)
}

func TestPosterizerGetSVGBlackSquareProducesDocument(t *testing.T) {
	p, err := NewPosterizer(DefaultPosterizerParams(), nil)
	require.NoError(t, err)
	p.LoadRGBA(blackSquareRGBA(4))
	out, err := p.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
}

func TestPosterizerFillSpreadProducesDocument(t *testing.T) {
	params := DefaultPosterizerParams()
	params.FillStrategy = FillSpread
	p, err := NewPosterizer(params, nil)
	require.NoError(t, err)
	p.LoadRGBA(blackSquareRGBA(4))
	out, err := p.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
}

func TestOpacityStaysInUnitInterval(t *testing.T) {
	actualPrev := 0.0
	for _, intensity := range []float64{0.2, 0.5, 0.9, 1.0} {
		opacity := intensity
		if actualPrev != 0 && intensity != 1 {
			opacity = clamp01(round3((actualPrev - intensity) / (actualPrev - 1)))
		}
		assert.GreaterOrEqual(t, opacity, 0.0)
		assert.LessOrEqual(t, opacity, 1.0)
		actualPrev += (1 - actualPrev) * opacity
		assert.GreaterOrEqual(t, actualPrev, 0.0)
		assert.LessOrEqual(t, actualPrev, 1.0)
	}
}
