package asset

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphx/gfx"
	"graphx/hal"
)

var (
	red  = color.RGBA{R: 0xF8, A: 0xFF}
	blue = color.RGBA{B: 0xF8, A: 0xFF}
)

// halfTransparent is 4x4: transparent left half, red top right, blue
// bottom right.
func halfTransparent() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			if y < 2 {
				m.Set(x, y, red)
			} else {
				m.Set(x, y, blue)
			}
		}
	}
	return m
}

func TestQuantizeReservesTransparentIndex(t *testing.T) {
	pm, err := Quantize(halfTransparent(), 4, true)
	require.NoError(t, err)
	require.LessOrEqual(t, len(pm.Palette), 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, uint8(TransparentIndex), pm.ColorIndexAt(x, y))
		}
	}
	r := pm.ColorIndexAt(3, 0)
	b := pm.ColorIndexAt(3, 3)
	assert.NotEqual(t, uint8(TransparentIndex), r)
	assert.NotEqual(t, uint8(TransparentIndex), b)
	assert.NotEqual(t, r, b)
	assert.Equal(t, r, pm.ColorIndexAt(2, 1))
}

func TestQuantizeOpaque(t *testing.T) {
	m := image.NewRGBA(image.Rect(5, 5, 7, 6))
	m.Set(5, 5, red)
	m.Set(6, 5, blue)

	pm, err := Quantize(m, 2, false)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 1), pm.Bounds())
	assert.NotEqual(t, pm.ColorIndexAt(0, 0), pm.ColorIndexAt(1, 0))
}

func TestQuantizePaletteSize(t *testing.T) {
	_, err := Quantize(halfTransparent(), 1, false)
	require.ErrorIs(t, err, ErrTooManyColors)
	_, err = Quantize(halfTransparent(), 257, false)
	require.ErrorIs(t, err, ErrTooManyColors)
}

func TestEncodePalette1555FeedsPaletteTable(t *testing.T) {
	buf := EncodePalette1555(color.Palette{red, blue, color.White})

	var p gfx.PaletteTable
	p.SetColors(buf, len(buf), 10)

	assert.Equal(t, hal.RGB565(0xF8, 0, 0), p.Resolve(10))
	assert.Equal(t, hal.RGB565(0, 0, 0xF8), p.Resolve(11))
	assert.Equal(t, uint16(0xFFDF), p.Resolve(12))
}

func TestRLETSpriteMatchesRaw(t *testing.T) {
	pm, err := Quantize(halfTransparent(), 4, true)
	require.NoError(t, err)

	raw := ToSprite(pm)
	rle, err := ToRLETSprite(pm)
	require.NoError(t, err)

	a := gfx.NewContext(gfx.NewFrameBuffer(8, 8), gfx.Config{})
	b := gfx.NewContext(gfx.NewFrameBuffer(8, 8), gfx.Config{})
	for i := 0; i < 4; i++ {
		a.Palette.Set(uint8(i), uint16(0x100+i))
		b.Palette.Set(uint8(i), uint16(0x100+i))
	}
	b.SetTransparentColor(TransparentIndex)

	a.RLETSprite(rle, 3, 3)
	b.TransparentSprite(raw, 3, 3)
	require.Equal(t, b.FrameBuffer().Pix, a.FrameBuffer().Pix)
}

func TestSpriteBlob(t *testing.T) {
	s := &gfx.Sprite{Width: 3, Height: 2, Data: []byte{1, 2, 3, 4, 5, 6}}

	var buf bytes.Buffer
	require.NoError(t, EncodeSprite(&buf, s))
	require.Equal(t, []byte{3, 2, 1, 2, 3, 4, 5, 6}, buf.Bytes())

	got, err := DecodeSprite(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, s, got)

	_, err = DecodeSprite(buf.Bytes()[:5])
	require.ErrorIs(t, err, ErrShortBlob)

	err = EncodeSprite(&buf, gfx.NewSprite(256, 1))
	require.ErrorIs(t, err, ErrSpriteTooLarge)
}

func TestRLETSpriteBlob(t *testing.T) {
	s := gfx.ConvertToRLETSprite(&gfx.Sprite{Width: 4, Height: 2, Data: []byte{0, 5, 5, 0, 6, 0, 0, 0}}, 0)

	var buf bytes.Buffer
	require.NoError(t, EncodeRLETSprite(&buf, s))

	// Trailing bytes after the last row are not part of the sprite.
	got, err := DecodeRLETSprite(append(buf.Bytes(), 0xAA))
	require.NoError(t, err)
	require.Equal(t, s, got)

	_, err = DecodeRLETSprite(buf.Bytes()[:buf.Len()-1])
	require.ErrorIs(t, err, ErrShortBlob)

	_, err = DecodeRLETSprite([]byte{4, 1, 2, 3, 7, 7, 7})
	require.ErrorIs(t, err, ErrBadRuns)
}

func TestScaleImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 2, 1))
	m.Set(0, 0, red)
	m.Set(1, 0, blue)

	out := ScaleImage(m, 3)
	require.Equal(t, image.Rect(0, 0, 6, 3), out.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(out.At(2, 2)))
	assert.Equal(t, color.RGBAModel.Convert(blue), color.RGBAModel.Convert(out.At(3, 0)))

	require.Same(t, image.Image(m), ScaleImage(m, 1))
}

func TestWritePNGAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, halfTransparent()))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), m.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(m.At(3, 0)))
}
