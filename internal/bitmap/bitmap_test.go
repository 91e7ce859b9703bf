package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutOfRangeIsZero(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, 9)
	assert.Equal(t, byte(9), b.Get(0, 0))
	assert.Equal(t, byte(0), b.Get(-1, 0))
	assert.Equal(t, byte(0), b.Get(2, 0))
	assert.Equal(t, byte(0), b.Get(0, 2))
}

func TestFromRGBAAllOpaqueBlack(t *testing.T) {
	pix := make([]byte, 2*2*4)
	for i := 0; i < 4; i++ {
		pix[i*4+3] = 255
	}
	b := FromRGBA(RGBASource{Width: 2, Height: 2, Pix: pix})
	require.Equal(t, 2, b.Width)
	for _, v := range b.Data {
		assert.Equal(t, byte(0), v)
	}
}

func TestFromRGBATransparentIsWhite(t *testing.T) {
	pix := make([]byte, 1*1*4) // fully transparent black pixel
	b := FromRGBA(RGBASource{Width: 1, Height: 1, Pix: pix})
	assert.Equal(t, byte(255), b.Data[0])
}

func TestBinarizeBlackOnWhite(t *testing.T) {
	b := New(1, 3)
	b.Data = []byte{0, 128, 255}
	bin := b.Binarize(128, true)
	assert.Equal(t, []byte{1, 1, 0}, bin.Data)
}

func TestBinarizeWhiteOnBlack(t *testing.T) {
	b := New(1, 3)
	b.Data = []byte{0, 128, 255}
	bin := b.Binarize(128, false)
	assert.Equal(t, []byte{0, 0, 1}, bin.Data)
}
