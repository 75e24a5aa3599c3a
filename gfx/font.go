package gfx

import (
	"image/color"

	"graphx/hal"

	"tinygo.org/x/tinyfont"
)

// Font is the glyph capability the text renderer draws through.
type Font interface {
	// MeasureWidth returns the advance of s in pixels.
	MeasureWidth(s string) int
	LineHeight() int
	// DrawGlyphs draws s with its top-left corner at (x, y) into dst, a
	// surface of rows stride pixels wide.
	DrawGlyphs(s string, x, y int, fg uint16, dst []uint16, stride int)
}

// TinyFont adapts a tinyfont.Fonter.
type TinyFont struct {
	font       tinyfont.Fonter
	lineHeight int
	baseline   int
}

// NewTinyFont wraps f. baseline is the distance from the top of a line to
// the glyph baseline tinyfont draws on.
func NewTinyFont(f tinyfont.Fonter, lineHeight, baseline int) *TinyFont {
	return &TinyFont{font: f, lineHeight: lineHeight, baseline: baseline}
}

// MeasureWidth returns the advance of s in pixels.
func (f *TinyFont) MeasureWidth(s string) int {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return int(outbox)
}

// LineHeight returns the height passed to NewTinyFont.
func (f *TinyFont) LineHeight() int { return f.lineHeight }

// DrawGlyphs renders s with its top-left corner at (x, y) into dst.
func (f *TinyFont) DrawGlyphs(s string, x, y int, fg uint16, dst []uint16, stride int) {
	if stride <= 0 {
		return
	}
	d := &surfaceDisplayer{pix: dst, w: stride, h: len(dst) / stride}
	r, g, b := hal.RGB888(fg)
	tinyfont.WriteLine(d, f.font, int16(x), int16(y+f.baseline), s, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

// surfaceDisplayer lets tinyfont draw into a pixel slice.
type surfaceDisplayer struct {
	pix []uint16
	w   int
	h   int
}

func (d *surfaceDisplayer) Size() (x, y int16) { return int16(d.w), int16(d.h) }

func (d *surfaceDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	d.pix[iy*d.w+ix] = hal.RGB565(c.R, c.G, c.B)
}

func (d *surfaceDisplayer) Display() error { return nil }
