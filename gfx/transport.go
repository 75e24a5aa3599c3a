package gfx

import "graphx/hal"

// Transport copies rows of a FrameBuffer to the panel.
type Transport interface {
	// BlitRows copies visible rows [y0, y0+h).
	BlitRows(fb *FrameBuffer, y0, h int)
	// Wait blocks until any transfer started by BlitRows has finished.
	Wait()
}

type assertBinder interface {
	bindAssert(fn func(msg string))
}

// DirectTransport copies rows straight into the panel framebuffer, centred
// horizontally.
type DirectTransport struct {
	// BlankSides clears the panel columns left and right of the surface.
	BlankSides bool

	panel hal.Framebuffer
	log   hal.Logger
}

// NewDirectTransport returns a transport writing to panel. log may be nil.
func NewDirectTransport(panel hal.Framebuffer, log hal.Logger) *DirectTransport {
	return &DirectTransport{panel: panel, log: log}
}

// BlitRows copies the rows and presents the panel. Present errors are logged.
func (t *DirectTransport) BlitRows(fb *FrameBuffer, y0, h int) {
	buf := t.panel.Buffer()
	stride := t.panel.StrideBytes()
	xoff := (t.panel.Width() - fb.Width) / 2

	for y := y0; y < y0+h; y++ {
		line := y * stride
		if t.BlankSides {
			clear(buf[line : line+xoff*2])
			clear(buf[line+(xoff+fb.Width)*2 : line+stride])
		}
		o := line + xoff*2
		for _, p := range fb.Row(y) {
			buf[o] = byte(p)
			buf[o+1] = byte(p >> 8)
			o += 2
		}
	}

	if err := t.panel.Present(); err != nil && t.log != nil {
		t.log.WriteLineString("gfx: present: " + err.Error())
	}
}

// Wait returns immediately; BlitRows is synchronous.
func (t *DirectTransport) Wait() {}

// ChannelTransport streams rows to the panel through a transfer channel.
// BlitRows returns as soon as the transfer is started; the next BlitRows or
// Wait spins until it completes.
type ChannelTransport struct {
	ch         hal.TransferChannel
	panelWidth int
	busy       bool
	assert     func(msg string)
}

// NewChannelTransport returns a transport over ch for a panel panelWidth pixels wide.
func NewChannelTransport(ch hal.TransferChannel, panelWidth int) *ChannelTransport {
	return &ChannelTransport{ch: ch, panelWidth: panelWidth}
}

func (t *ChannelTransport) bindAssert(fn func(msg string)) { t.assert = fn }

// BlitRows starts a transfer of rows [y0, y0+h). The byte length of the range
// must be a multiple of hal.TransferUnitBytes.
func (t *ChannelTransport) BlitRows(fb *FrameBuffer, y0, h int) {
	t.Wait()

	src := fb.Rows(y0, h)
	size := len(src) * 2
	if debugChecks && size%hal.TransferUnitBytes != 0 && t.assert != nil {
		t.assert("BlitRows: size is not a multiple of the transfer unit")
	}

	t.ch.SetSource(src)
	t.ch.SetDestination((t.panelWidth-fb.Width)/2, y0, fb.Width, h)
	t.ch.SetCount(size / hal.TransferUnitBytes)
	t.ch.Start()
	t.busy = true
}

// Wait spins until the channel reports completion or an address error, then
// clears the channel. It has no timeout.
func (t *ChannelTransport) Wait() {
	if !t.busy {
		return
	}
	for t.ch.Status()&(hal.ChannelTransferEnd|hal.ChannelAddressError) == 0 {
	}
	t.ch.Clear()
	t.busy = false
}

// Blit copies the whole buffer to the panel.
func (c *Context) Blit(src Location) {
	c.check(src == Buffer, "Blit: unsupported source")
	if src == Buffer {
		c.blitRows(0, c.fb.Height)
	}
}

// BlitBuffer is Blit(Buffer).
func (c *Context) BlitBuffer() { c.Blit(Buffer) }

// BlitLines copies n rows starting at y.
func (c *Context) BlitLines(src Location, y, n int) {
	c.check(src == Buffer, "BlitLines: unsupported source")
	if src == Buffer {
		c.blitRows(y, n)
	}
}

// BlitRectangle copies the full rows spanned by the rectangle.
func (c *Context) BlitRectangle(src Location, _, y, _, h int) {
	c.BlitLines(src, y, h)
}

// WaitBlit blocks until the last transfer has finished.
func (c *Context) WaitBlit() {
	if c.transport != nil {
		c.transport.Wait()
	}
}

func (c *Context) blitRows(y, n int) {
	if c.transport == nil {
		return
	}
	c.transport.BlitRows(c.fb, y, n)
}
