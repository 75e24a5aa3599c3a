package gfx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const background = 0xBEEF

// newTestContext returns a context over a w x h buffer filled with
// background, with palette entry i set to 0x1000+i.
func newTestContext(t *testing.T, w, h int, cfg Config) *Context {
	t.Helper()
	fb := NewFrameBuffer(w, h)
	fb.Fill(background)
	c := NewContext(fb, cfg)
	for i := 0; i < 256; i++ {
		c.Palette.Set(uint8(i), uint16(0x1000+i))
	}
	return c
}

func pal(i uint8) uint16 { return uint16(0x1000 + int(i)) }

func spriteOf(w, h int, fill uint8) *Sprite {
	s := NewSprite(w, h)
	for i := range s.Data {
		s.Data[i] = fill
	}
	return s
}

// requireRect asserts that pixels inside [x0,x1)x[y0,y1) equal in and all
// other visible pixels equal out.
func requireRect(t *testing.T, fb *FrameBuffer, x0, y0, x1, y1 int, in, out uint16) {
	t.Helper()
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			want := out
			if x >= x0 && x < x1 && y >= y0 && y < y1 {
				want = in
			}
			require.Equalf(t, want, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func snapshot(fb *FrameBuffer) []uint16 {
	return append([]uint16(nil), fb.Pix...)
}
