package histogram

import (
	"testing"

	"svgtrace/internal/bitmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(value byte, w, h int) *bitmap.Bitmap {
	b := bitmap.New(w, h)
	for i := range b.Data {
		b.Data[i] = value
	}
	return b
}

func TestDominantColorSingleColor(t *testing.T) {
	b := uniform(120, 4, 4)
	h := Build(b)
	c, err := h.DominantColor(0, 255, 1)
	require.NoError(t, err)
	assert.Equal(t, 120, c)
}

func TestDominantColorEmptyRange(t *testing.T) {
	b := uniform(120, 4, 4)
	h := Build(b)
	c, err := h.DominantColor(0, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestMultilevelThresholdingSingleColor(t *testing.T) {
	b := uniform(120, 4, 4)
	h := Build(b)
	assert.Empty(t, h.MultilevelThresholding(1, 0, 255))
	assert.Empty(t, h.MultilevelThresholding(3, 0, 255))
}

func TestMultilevelThresholdingInvariants(t *testing.T) {
	b := bitmap.New(1, 4)
	b.Data = []byte{10, 10, 200, 200}
	h := Build(b)
	got := h.MultilevelThresholding(1, 0, 255)
	require.Len(t, got, 1)
	assert.Greater(t, got[0], 0)
	assert.Less(t, got[0], 255)
}

func TestRangeStatsInvalidRange(t *testing.T) {
	b := uniform(0, 1, 1)
	h := Build(b)
	_, err := h.RangeStats(200, 10)
	assert.Error(t, err)
}

func TestRangeStatsBasic(t *testing.T) {
	b := bitmap.New(1, 4)
	b.Data = []byte{10, 10, 20, 30}
	h := Build(b)
	s, err := h.RangeStats(0, 255)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Pixels)
	assert.Equal(t, 3, s.Levels.Unique)
	assert.InDelta(t, 17.5, s.Levels.Mean, 1e-9)
}
