//go:build !gfx_release

package gfx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphx/hal"
)

func recordAsserts(c *Context) *[]string {
	var msgs []string
	c.Assert = func(msg string) { msgs = append(msgs, msg) }
	return &msgs
}

func TestHashRowSeed(t *testing.T) {
	require.Equal(t, uint16(guardSeed), hashRow(nil))
	require.NotEqual(t, hashRow([]uint16{1, 2}), hashRow([]uint16{2, 1}))
}

func TestGuardDetectsWriteAbove(t *testing.T) {
	c := newTestContext(t, 4, 4, Config{})
	msgs := recordAsserts(c)

	c.SetColor(3)
	c.SetPixel(0, -1)

	require.Equal(t, []string{"write above the visible surface"}, *msgs)
}

func TestGuardDetectsWriteBelow(t *testing.T) {
	c := newTestContext(t, 4, 4, Config{})
	msgs := recordAsserts(c)

	c.SetColor(3)
	c.SetPixel(0, 4)

	require.Equal(t, []string{"write below the visible surface"}, *msgs)
}

func TestGuardQuietForVisibleWrites(t *testing.T) {
	c := newTestContext(t, 4, 4, Config{})
	msgs := recordAsserts(c)

	c.SetColor(3)
	c.SetPixel(3, 3)
	c.FillRectangle(-5, -5, 20, 20)
	c.Sprite(spriteOf(8, 8, 1), -2, -2)

	require.Empty(t, *msgs)
}

func TestUnhandledAssertPanics(t *testing.T) {
	c := newTestContext(t, 4, 4, Config{})
	c.SetColor(3)
	require.PanicsWithValue(t, "gfx: assert failed: write below the visible surface", func() {
		c.SetPixel(0, 4)
	})
}

func TestUnsupportedLocations(t *testing.T) {
	c := newTestContext(t, 4, 4, Config{})
	msgs := recordAsserts(c)

	c.SetDraw(Screen)
	c.Blit(Screen)
	c.BlitLines(Screen, 0, 1)
	c.SetDraw(Buffer)

	require.Len(t, *msgs, 3)
}

func TestChannelTransportGranularity(t *testing.T) {
	panel := hal.NewMemFramebuffer(8, 4)
	c := newTestContext(t, 5, 4, Config{Transport: NewChannelTransport(hal.NewSimChannel(panel, 0), 8)})
	msgs := recordAsserts(c)

	c.BlitLines(Buffer, 0, 1)
	c.WaitBlit()

	require.Equal(t, []string{"BlitRows: size is not a multiple of the transfer unit"}, *msgs)
}
