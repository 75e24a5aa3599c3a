package gfx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridTilemap returns a 3x3 grid of 2x2 tiles where cell k holds tile k and
// tile k is filled with index 10+k.
func gridTilemap() *Tilemap {
	tm := &Tilemap{
		TileWidth:  2,
		TileHeight: 2,
		Width:      3,
		Height:     3,
		DrawWidth:  2,
		DrawHeight: 2,
		XLoc:       2,
		YLoc:       2,
	}
	for k := 0; k < 9; k++ {
		tm.Map = append(tm.Map, byte(k))
		tm.Tiles = append(tm.Tiles, spriteOf(2, 2, uint8(10+k)))
	}
	return tm
}

func TestTilemapSubTileScroll(t *testing.T) {
	c := newTestContext(t, 10, 10, Config{})
	c.Tilemap(gridTilemap(), 1, 1)

	fb := c.FrameBuffer()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := uint16(background)
			if x >= 1 && x < 7 && y >= 1 && y < 7 {
				col, row := (x-1)/2, (y-1)/2
				want = pal(uint8(10 + row*3 + col))
			}
			require.Equalf(t, want, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestTilemapAlignedScroll(t *testing.T) {
	c := newTestContext(t, 10, 10, Config{})
	c.Tilemap(gridTilemap(), 2, 0)

	fb := c.FrameBuffer()
	require.Equal(t, pal(11), fb.At(2, 2))
	require.Equal(t, pal(12), fb.At(5, 3))
	require.Equal(t, pal(15), fb.At(5, 5))
	require.Equal(t, uint16(background), fb.At(6, 2))
	require.Equal(t, uint16(background), fb.At(2, 6))
}

func TestTilemapClampsToLastRow(t *testing.T) {
	c := newTestContext(t, 10, 10, Config{})
	tm := gridTilemap()
	tm.XLoc, tm.YLoc = 0, 0
	tm.FillIndex = 99

	c.Tilemap(tm, 0, 4)

	fb := c.FrameBuffer()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := uint16(background)
			switch {
			case x < 4 && y < 2:
				want = pal(uint8(16 + x/2))
			case x < 4 && y < 4:
				want = pal(99)
			}
			require.Equalf(t, want, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestTransparentTilemap(t *testing.T) {
	c := newTestContext(t, 10, 10, Config{})
	tm := gridTilemap()
	tm.Tiles[0].Data[0] = 0
	c.SetTransparentColor(0)

	c.TransparentTilemap(tm, 0, 0)
	require.Equal(t, uint16(background), c.FrameBuffer().At(2, 2))
	require.Equal(t, pal(10), c.FrameBuffer().At(3, 2))

	c.Tilemap(tm, 0, 0)
	require.Equal(t, pal(0), c.FrameBuffer().At(2, 2))
}

func TestTilePtr(t *testing.T) {
	tm := gridTilemap()
	require.Equal(t, byte(7), *TilePtr(tm, 3, 5))
	require.Equal(t, byte(5), *TilePtrMapped(tm, 2, 1))

	*TilePtrMapped(tm, 0, 0) = 8
	require.Equal(t, byte(8), tm.Map[0])
}

func TestTilemapClampsToLastColumn(t *testing.T) {
	c := newTestContext(t, 10, 10, Config{})
	tm := gridTilemap()
	tm.DrawWidth = 3
	tm.XLoc, tm.YLoc = 0, 0

	require.NotPanics(t, func() { c.Tilemap(tm, 1, 0) })

	fb := c.FrameBuffer()
	require.Equal(t, pal(10), fb.At(0, 0))
	require.Equal(t, pal(12), fb.At(3, 1))
	require.Equal(t, pal(15), fb.At(4, 3))
	require.Equal(t, uint16(background), fb.At(5, 0))
	require.Equal(t, uint16(background), fb.At(7, 3))
}
