package contour

import (
	"testing"

	"svgtrace/internal/bitmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareBitmap() *bitmap.Bitmap {
	b := bitmap.New(4, 4)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		b.Set(p[0], p[1], 1)
	}
	return b
}

func TestDecomposeSquare(t *testing.T) {
	b := squareBitmap()
	d := New(TurnMinority)
	paths, err := d.Decompose(b, 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, byte('+'), paths[0].Sign)
	assert.Equal(t, 4, paths[0].Area)
}

func TestDecomposeEmptyBitmapHasNoContours(t *testing.T) {
	b := bitmap.New(4, 4)
	d := New(TurnMinority)
	paths, err := d.Decompose(b, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestTurdSizeMonotonicity(t *testing.T) {
	b := squareBitmap()
	d := New(TurnMinority)
	small, err := d.Decompose(b.Copy(func(v byte) byte { return v }), 0)
	require.NoError(t, err)
	large, err := d.Decompose(b.Copy(func(v byte) byte { return v }), 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(small), len(large))
}
