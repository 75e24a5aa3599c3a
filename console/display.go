package console

import (
	"image"
	"image/color"

	"graphx/gfx"
	"graphx/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay exposes a window of a gfx.FrameBuffer as a tinyterm display.
// Coordinates are window-relative; writes outside the window are dropped.
type fbDisplay struct {
	fb *gfx.FrameBuffer
	r  image.Rectangle
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.r.Dx()), int16(d.r.Dy())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || iy < 0 || ix >= d.r.Dx() || iy >= d.r.Dy() {
		return
	}
	d.fb.Set(d.r.Min.X+ix, d.r.Min.Y+iy, hal.RGB565(c.R, c.G, c.B))
}

// Display is a no-op: the owner of the frame buffer decides when to blit.
func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	rect := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).
		Add(d.r.Min).
		Intersect(d.r)
	if rect.Empty() {
		return nil
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		row := d.fb.Row(py)[rect.Min.X:rect.Max.X]
		for i := range row {
			row[i] = pixel
		}
	}
	return nil
}

// SetScroll is a no-op. Without hardware scrolling the terminal wraps back
// to the top row once the window is full.
func (d *fbDisplay) SetScroll(line int16) {}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	return hal.ErrNotImplemented
}
