// Package asset converts host images into the renderer's data formats:
// quantized palettes, raw and run-length encoded sprites, and the 1-5-5-5
// palette import buffer.
package asset

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"graphx/gfx"
)

var (
	ErrTooManyColors  = errors.New("asset: palette size must be between 2 and 256")
	ErrSpriteTooLarge = errors.New("asset: sprite dimensions must fit in one byte")
	ErrShortBlob      = errors.New("asset: blob is truncated")
	ErrBadRuns        = errors.New("asset: run lengths do not match sprite width")
)

// TransparentIndex is the palette slot reserved when quantizing with
// transparency.
const TransparentIndex = 0

// alphaCutoff is the alpha below which a pixel maps to TransparentIndex.
const alphaCutoff = 0x8000

// Quantize reduces m to at most colors palette entries using median cut.
// With transparent set, entry TransparentIndex is reserved for pixels whose
// alpha is below one half and never chosen for any other pixel.
func Quantize(m image.Image, colors int, transparent bool) (*image.Paletted, error) {
	if colors < 2 || colors > 256 {
		return nil, ErrTooManyColors
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := make(color.Palette, 0, colors)
	if !transparent {
		pm := image.NewPaletted(b, q.Quantize(p, m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		return normalize(pm), nil
	}

	p = q.Quantize(append(p, color.RGBA{}), m)
	pm := image.NewPaletted(b, p)
	opaque := p[1:]
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if _, _, _, a := c.RGBA(); a < alphaCutoff || len(opaque) == 0 {
				pm.SetColorIndex(x, y, TransparentIndex)
				continue
			}
			pm.SetColorIndex(x, y, uint8(1+opaque.Index(c)))
		}
	}
	return normalize(pm), nil
}

// normalize moves the image origin to (0, 0).
func normalize(pm *image.Paletted) *image.Paletted {
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}
	return pm
}

// ToSprite copies the indices of pm into a raw sprite.
func ToSprite(pm *image.Paletted) *gfx.Sprite {
	b := pm.Bounds()
	s := gfx.NewSprite(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			s.Data[y*s.Width+x] = pm.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
		}
	}
	return s
}

// ToRLETSprite encodes pm with TransparentIndex as the transparent index.
func ToRLETSprite(pm *image.Paletted) (*gfx.RLETSprite, error) {
	b := pm.Bounds()
	if b.Dx() > 255 || b.Dy() > 255 {
		return nil, ErrSpriteTooLarge
	}
	return gfx.ConvertToRLETSprite(ToSprite(pm), TransparentIndex), nil
}

// EncodePalette1555 packs p as little-endian 1-5-5-5 words, the layout
// accepted by gfx.PaletteTable.SetColors.
func EncodePalette1555(p color.Palette) []byte {
	buf := make([]byte, 0, len(p)*2)
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		v := uint16(r>>11)<<10 | uint16(g>>11)<<5 | uint16(b>>11)
		buf = append(buf, byte(v), byte(v>>8))
	}
	return buf
}
