// Package console is an on-screen text console drawn into a region of the
// off-screen frame buffer.
package console

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"graphx/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// ErrWindowTooSmall is returned when the console window cannot hold a single
// character cell.
var ErrWindowTooSmall = errors.New("console: window smaller than one character cell")

var background = color.RGBA{A: 0xFF}

// Console renders terminal output into a window of a FrameBuffer. It also
// satisfies hal.Logger so log lines can be routed to the screen.
//
// Output only touches the frame buffer; callers blit it like any other
// drawing.
type Console struct {
	mu sync.Mutex

	d *fbDisplay
	t *tinyterm.Terminal

	font       *tinyfont.Font
	fontHeight int16
	fontOffset int16
}

// New returns a console occupying r, clipped to the bounds of fb.
// fontHeight is the line pitch and fontOffset the baseline within a line.
func New(fb *gfx.FrameBuffer, r image.Rectangle, font *tinyfont.Font, fontHeight, fontOffset int16) (*Console, error) {
	r = r.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	_, cellWidth := tinyfont.LineWidth(font, "0")
	if fontHeight <= 0 || cellWidth == 0 || r.Dy() < int(fontHeight) || r.Dx() < int(cellWidth) {
		return nil, ErrWindowTooSmall
	}

	c := &Console{
		d:          &fbDisplay{fb: fb, r: r},
		font:       font,
		fontHeight: fontHeight,
		fontOffset: fontOffset,
	}
	c.reset()
	return c, nil
}

// Bounds returns the frame buffer window the console draws into.
func (c *Console) Bounds() image.Rectangle { return c.d.r }

func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.Write(p)
}

func (c *Console) WriteLineString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Write([]byte(s))
	c.t.Write([]byte("\r\n"))
}

func (c *Console) WriteLineBytes(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Write(b)
	c.t.Write([]byte("\r\n"))
}

// Reset clears the window and moves the cursor to the top-left cell.
func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Console) reset() {
	w, h := c.d.Size()
	c.d.FillRectangle(0, 0, w, h, background)
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:       c.font,
		FontHeight: c.fontHeight,
		FontOffset: c.fontOffset,
	})
}
