package gfx

// FillScreen paints the visible surface with the color of index. The draw
// color is left unchanged.
func (c *Context) FillScreen(index uint8) {
	c.fb.Fill(c.Palette.Resolve(index))
}

// ZeroScreen paints the visible surface with palette index 0.
func (c *Context) ZeroScreen() { c.FillScreen(0) }

// SetPixel writes the draw color at (x, y) without clipping.
func (c *Context) SetPixel(x, y int) {
	defer c.guard()()
	c.fb.Pix[c.fb.offset(x, y)] = c.draw.color
}

// Rectangle draws a clipped one-pixel outline in the draw color.
//
// The clipped size is not checked: a rectangle clipped to nothing still
// strokes its top and bottom rows at the clipped origin.
func (c *Context) Rectangle(x, y, w, h int) {
	defer c.guard()()
	x, y, w, h = c.Clip.ClipRect(x, y, w, h)
	c.RectangleNoClip(x, y, w, h)
}

// RectangleNoClip draws an outline without clipping. The top and bottom rows
// are always stroked, so a rectangle of height 0 or 1 covers two rows.
func (c *Context) RectangleNoClip(x, y, w, h int) {
	defer c.guard()()
	pix := c.fb.Pix
	col := c.draw.color
	line := c.fb.offset(x, y)

	for i := 0; i < w; i++ {
		pix[line+i] = col
	}
	line += c.fb.Width

	for row := 1; row+1 < h; row++ {
		pix[line] = col
		pix[line+w-1] = col
		line += c.fb.Width
	}

	for i := 0; i < w; i++ {
		pix[line+i] = col
	}
}

// FillRectangle fills a clipped rectangle with the draw color.
func (c *Context) FillRectangle(x, y, w, h int) {
	c.fillRect(x, y, w, h, c.draw.color)
}

// FillRectangleNoClip fills a rectangle without clipping.
func (c *Context) FillRectangleNoClip(x, y, w, h int) {
	defer c.guard()()
	c.fillRectNoClip(x, y, w, h, c.draw.color)
}

// HorizLine draws a clipped horizontal line of length n.
func (c *Context) HorizLine(x, y, n int) { c.fillRect(x, y, n, 1, c.draw.color) }

// VertLine draws a clipped vertical line of length n.
func (c *Context) VertLine(x, y, n int) { c.fillRect(x, y, 1, n, c.draw.color) }

func (c *Context) fillRect(x, y, w, h int, col uint16) {
	defer c.guard()()
	x, y, w, h = c.Clip.ClipRect(x, y, w, h)
	if w <= 0 || h <= 0 {
		return
	}
	c.fillRectNoClip(x, y, w, h, col)
}

func (c *Context) fillRectNoClip(x, y, w, h int, col uint16) {
	pix := c.fb.Pix
	line := c.fb.offset(x, y)
	for row := 0; row < h; row++ {
		for i := 0; i < w; i++ {
			pix[line+i] = col
		}
		line += c.fb.Width
	}
}

// FillCircle fills the pixels of the clipped bounding box
// [x-r, x+r) x [y-r, y+r) whose squared distance from (x, y) is at most r*r.
func (c *Context) FillCircle(x, y, r int) {
	defer c.guard()()
	x1, y1, w, h := c.Clip.ClipRect(x-r, y-r, r*2, r*2)
	x2 := x1 + w
	y2 := y1 + h
	rSq := r * r

	pix := c.fb.Pix
	col := c.draw.color
	for cy := y1; cy < y2; cy++ {
		line := c.fb.offset(0, cy)
		dy := (y - cy) * (y - cy)
		for cx := x1; cx < x2; cx++ {
			if (x-cx)*(x-cx)+dy <= rSq {
				pix[line+cx] = col
			}
		}
	}
}

// ShiftDown moves the visible surface down by n rows. The top n rows keep
// their previous content.
func (c *Context) ShiftDown(n int) {
	defer c.guard()()
	if n <= 0 {
		return
	}
	v := c.fb.Visible()
	shift := n * c.fb.Width
	if shift >= len(v) {
		return
	}
	copy(v[shift:], v[:len(v)-shift])
}
