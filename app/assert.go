package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"graphx/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// assertHandler returns a gfx assert hook that logs msg with a stack trace,
// paints it over the panel and records the failure so the next step stops
// the run.
func (g *Game) assertHandler() func(msg string) {
	return func(msg string) {
		stack := strings.Split(string(debug.Stack()), "\n")

		g.log.WriteLineString("graphx assert: " + msg)
		for _, line := range stack {
			if line != "" {
				g.log.WriteLineString(line)
			}
		}

		if g.failed == nil {
			g.failed = fmt.Errorf("assert: %s", msg)
		}
		paintAssertScreen(g.panel, msg, stack)
	}
}

func paintAssertScreen(fb hal.Framebuffer, msg string, stack []string) {
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	fontHeight, fontOffset := int16(10), int16(7)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := panelDisplay{fb: fb}
	lines := append([]string{"graphx assert:", msg, "stack:"}, stack...)
	fg := color.RGBA{A: 255}

	y := int16(0)
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fontOffset, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func drawTextLine(d panelDisplay, font tinyfont.Fonter, fontWidth, fontOffset, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+fontOffset, r, fg)
		x += fontWidth
	}
}

// panelDisplay draws straight onto the panel, bypassing the frame buffer
// whose state is suspect once an assertion fires.
type panelDisplay struct {
	fb hal.Framebuffer
}

func (d panelDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panelDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panelDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
