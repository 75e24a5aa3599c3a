package gfx

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// SetTextXY moves the text cursor.
func (c *Context) SetTextXY(x, y int) {
	c.textX = x
	c.textY = y
}

// GetTextX and GetTextY report the text cursor.
func (c *Context) GetTextX() int { return c.textX }
func (c *Context) GetTextY() int { return c.textY }

// SetMonospaceFont makes every rune advance by spacing pixels. Zero restores
// the font's own metrics.
func (c *Context) SetMonospaceFont(spacing int) { c.monospace = spacing }

// GetStringWidth returns the width of s in pixels.
func (c *Context) GetStringWidth(s string) int {
	if c.monospace > 0 {
		return utf8.RuneCountInString(s) * c.monospace
	}
	if c.font == nil {
		return 0
	}
	return c.font.MeasureWidth(s)
}

// PrintStringXY draws s at (x, y) and leaves the cursor just past it. The
// background is filled first unless the text background index equals the
// text transparent index. Lines that would reach the bottom edge are
// dropped.
func (c *Context) PrintStringXY(s string, x, y int) {
	defer c.guard()()
	if c.font == nil {
		return
	}
	lh := c.font.LineHeight()
	if y+lh >= c.fb.Height {
		return
	}

	w := c.GetStringWidth(s)
	if c.textBG.index != c.textClear.index {
		c.fillRect(x, y, w, lh, c.textBG.color)
	}
	c.drawGlyphs(s, x, y)
	c.textX = x + w
	c.textY = y
}

// PrintString draws s at the text cursor.
func (c *Context) PrintString(s string) { c.PrintStringXY(s, c.textX, c.textY) }

// PrintUInt draws n left-padded with zeros to at least length digits.
func (c *Context) PrintUInt(n uint, length int) {
	c.PrintString(padDigits(strconv.FormatUint(uint64(n), 10), length))
}

// PrintInt is PrintUInt with a leading minus for negative values. length
// counts digits only.
func (c *Context) PrintInt(n int, length int) {
	if n < 0 {
		c.PrintString("-" + padDigits(strconv.FormatUint(uint64(-int64(n)), 10), length))
		return
	}
	c.PrintUInt(uint(n), length)
}

func padDigits(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat("0", length-len(s)) + s
}

func (c *Context) drawGlyphs(s string, x, y int) {
	dst := c.fb.Visible()
	if c.monospace <= 0 {
		c.font.DrawGlyphs(s, x, y, c.textFG.color, dst, c.fb.Width)
		return
	}
	for _, r := range s {
		c.font.DrawGlyphs(string(r), x, y, c.textFG.color, dst, c.fb.Width)
		x += c.monospace
	}
}
