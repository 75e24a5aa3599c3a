package gfx

import "graphx/hal"

// Location selects a blit source or draw target.
type Location uint8

const (
	// Buffer is the off-screen FrameBuffer.
	Buffer Location = iota
	// Screen is the panel itself. Drawing to it directly is not supported.
	Screen
)

// Config wires a Context to its collaborators. Every field is optional.
type Config struct {
	Transport Transport
	Font      Font
	Logger    hal.Logger
}

// colorSlot caches the last selected index and its resolved color.
type colorSlot struct {
	index uint8
	color uint16
}

func (s *colorSlot) set(p *PaletteTable, index uint8) uint8 {
	prev := s.index
	s.color = p.Resolve(index)
	s.index = index
	return prev
}

// Context is the rendering state: the frame buffer, palette, clip region,
// draw colors and text cursor. Create one at startup and pass it to every
// drawing call.
type Context struct {
	Palette PaletteTable
	Clip    ClipRegion

	// Assert receives debug assertion failures. When nil a failure is logged
	// and panics.
	Assert func(msg string)

	fb        *FrameBuffer
	transport Transport
	font      Font
	log       hal.Logger

	transparentIndex uint8

	draw      colorSlot
	textFG    colorSlot
	textBG    colorSlot
	textClear colorSlot

	textX     int
	textY     int
	monospace int
}

// NewContext returns a context drawing into fb with a full-surface clip.
func NewContext(fb *FrameBuffer, cfg Config) *Context {
	c := &Context{
		fb:        fb,
		transport: cfg.Transport,
		font:      cfg.Font,
		log:       cfg.Logger,
	}
	c.Clip.SetRegion(0, 0, fb.Width, fb.Height)
	c.textFG.set(&c.Palette, 0)
	c.textBG.set(&c.Palette, 255)
	c.textClear.set(&c.Palette, 255)
	if b, ok := cfg.Transport.(assertBinder); ok {
		b.bindAssert(c.fail)
	}
	return c
}

// FrameBuffer returns the surface the context draws into.
func (c *Context) FrameBuffer() *FrameBuffer { return c.fb }

// SetClipRegion replaces the clip bounds.
func (c *Context) SetClipRegion(minX, minY, maxX, maxY int) {
	c.Clip.SetRegion(minX, minY, maxX, maxY)
}

// SetPalette imports 1-5-5-5 colors; see PaletteTable.SetColors.
func (c *Context) SetPalette(buf []byte, byteCount int, startIndex int) {
	c.Palette.SetColors(buf, byteCount, startIndex)
}

// SetColor selects the draw color and returns the previous index.
func (c *Context) SetColor(index uint8) uint8 { return c.draw.set(&c.Palette, index) }

// SetTransparentColor selects the sprite transparent index and returns the
// previous one.
func (c *Context) SetTransparentColor(index uint8) uint8 {
	prev := c.transparentIndex
	c.transparentIndex = index
	return prev
}

// SetTextFGColor selects the text color and returns the previous index.
func (c *Context) SetTextFGColor(index uint8) uint8 { return c.textFG.set(&c.Palette, index) }

// SetTextBGColor selects the text background and returns the previous index.
func (c *Context) SetTextBGColor(index uint8) uint8 { return c.textBG.set(&c.Palette, index) }

// SetTextTransparentColor selects the background index that disables the
// text background fill.
func (c *Context) SetTextTransparentColor(index uint8) uint8 {
	return c.textClear.set(&c.Palette, index)
}

// SetDraw selects the draw target. Only Buffer is supported.
func (c *Context) SetDraw(loc Location) {
	c.check(loc == Buffer, "SetDraw: unsupported location")
}

func (c *Context) check(cond bool, msg string) {
	if debugChecks && !cond {
		c.fail(msg)
	}
}

func (c *Context) fail(msg string) {
	if c.Assert != nil {
		c.Assert(msg)
		return
	}
	if c.log != nil {
		c.log.WriteLineString("gfx: assert failed: " + msg)
	}
	panic("gfx: assert failed: " + msg)
}
