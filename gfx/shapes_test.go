package gfx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillRectangleClipped(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetClipRegion(0, 0, 6, 6)
	c.SetColor(5)

	c.FillRectangle(2, 2, 4, 4)
	requireRect(t, c.FrameBuffer(), 2, 2, 6, 6, pal(5), background)

	c.FillRectangle(4, 4, 10, 10)
	requireRect(t, c.FrameBuffer(), 2, 2, 6, 6, pal(5), background)
}

func TestFillRectangleDegenerateWritesNothing(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(5)
	before := snapshot(c.FrameBuffer())

	c.FillRectangle(10, 10, 4, 4)
	c.FillRectangle(2, 2, 0, 3)
	c.FillRectangle(-8, 2, 4, 3)

	require.Equal(t, before, c.FrameBuffer().Pix)
}

func TestRectangleOutline(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(3)
	c.Rectangle(1, 1, 4, 3)

	fb := c.FrameBuffer()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			edge := (y == 1 || y == 3) && x >= 1 && x < 5
			edge = edge || (y == 2 && (x == 1 || x == 4))
			want := uint16(background)
			if edge {
				want = pal(3)
			}
			require.Equalf(t, want, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRectangleDegenerateStillStrokes(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(3)

	// Clipped to a negative height: the top and bottom rows are still
	// stroked at the clipped origin.
	c.Rectangle(2, -10, 3, 5)

	requireRect(t, c.FrameBuffer(), 2, 0, 5, 2, pal(3), background)
}

func TestFillCircle(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(9)
	c.FillCircle(4, 4, 2)

	fb := c.FrameBuffer()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			in := x >= 2 && x < 6 && y >= 2 && y < 6 && (x-4)*(x-4)+(y-4)*(y-4) <= 4
			want := uint16(background)
			if in {
				want = pal(9)
			}
			require.Equalf(t, want, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
	require.Equal(t, pal(9), fb.At(2, 4))
	require.Equal(t, uint16(background), fb.At(2, 2))
}

func TestFillCircleClipped(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(9)
	c.SetClipRegion(0, 0, 4, 8)
	c.FillCircle(4, 4, 3)

	fb := c.FrameBuffer()
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			require.Equal(t, uint16(background), fb.At(x, y))
		}
	}
	require.Equal(t, pal(9), fb.At(3, 4))
}

func TestFillScreenKeepsGuardRows(t *testing.T) {
	c := newTestContext(t, 4, 3, Config{})
	c.SetColor(1)
	c.FillScreen(7)

	requireRect(t, c.FrameBuffer(), 0, 0, 4, 3, pal(7), 0)
	for _, p := range c.FrameBuffer().topGuard() {
		require.Zero(t, p)
	}
	for _, p := range c.FrameBuffer().bottomGuard() {
		require.Zero(t, p)
	}

	// The draw color is unchanged.
	c.SetPixel(0, 0)
	require.Equal(t, pal(1), c.FrameBuffer().At(0, 0))
}

func TestLines(t *testing.T) {
	c := newTestContext(t, 8, 8, Config{})
	c.SetColor(2)
	c.HorizLine(1, 1, 3)
	c.VertLine(6, 5, 10)

	fb := c.FrameBuffer()
	require.Equal(t, pal(2), fb.At(1, 1))
	require.Equal(t, pal(2), fb.At(3, 1))
	require.Equal(t, uint16(background), fb.At(4, 1))
	require.Equal(t, pal(2), fb.At(6, 7))
	require.Equal(t, uint16(background), fb.At(6, 4))
}

func TestShiftDown(t *testing.T) {
	c := newTestContext(t, 2, 4, Config{})
	fb := c.FrameBuffer()
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			fb.Set(x, y, uint16(y))
		}
	}

	c.ShiftDown(1)

	require.Equal(t, []uint16{0, 0}, fb.Row(0))
	require.Equal(t, []uint16{0, 0}, fb.Row(1))
	require.Equal(t, []uint16{1, 1}, fb.Row(2))
	require.Equal(t, []uint16{2, 2}, fb.Row(3))
}
