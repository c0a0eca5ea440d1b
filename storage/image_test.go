package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPutImage_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	img := solidImage(16, 8, color.RGBA{R: 200, G: 40, B: 40, A: 255})

	res := wait(t, store.PutImage(img, "photo"))
	require.NoError(t, res.Err)
	assert.Equal(t, "photo", res.ID)

	raw := wait(t, store.LoadData("photo"))
	require.True(t, raw.OK)
	assert.True(t, bytes.HasPrefix(raw.Value, []byte{0xff, 0xd8}), "stored as JPEG")

	got := wait(t, store.LoadImage("photo"))
	require.True(t, got.OK)
	assert.Equal(t, img.Bounds(), got.Value.Bounds())

	r, g, b, _ := got.Value.At(4, 4).RGBA()
	assert.InDelta(t, 200, r>>8, 8)
	assert.InDelta(t, 40, g>>8, 8)
	assert.InDelta(t, 40, b>>8, 8)
}

func TestPutNewImage(t *testing.T) {
	store := newTestStore(t)

	res := wait(t, store.PutNewImage(solidImage(2, 2, color.White)))
	require.NoError(t, res.Err)
	assert.NotEmpty(t, res.ID)

	got := wait(t, store.LoadImage(res.ID))
	assert.True(t, got.OK)
}

func TestPutImage_Nil(t *testing.T) {
	store := newTestStore(t)

	res := wait(t, store.PutImage(nil, "none"))
	assert.ErrorIs(t, res.Err, ErrNoDataProvided)
	assert.False(t, wait(t, store.LoadData("none")).OK)
}

func TestLoadImage_PNG(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(3, 5, color.Black)))
	require.NoError(t, wait(t, store.PutData(buf.Bytes(), "icon")).Err)

	got := wait(t, store.LoadImage("icon"))
	require.True(t, got.OK)
	assert.Equal(t, image.Rect(0, 0, 3, 5), got.Value.Bounds())
}

func TestLoadImage_NotAnImage(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, wait(t, store.PutData([]byte("plain text"), "text")).Err)

	got := wait(t, store.LoadImage("text"))
	assert.False(t, got.OK)
	assert.Nil(t, got.Value)
}

func TestLoadImage_Missing(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, wait(t, store.LoadImage("missing")).OK)
}
