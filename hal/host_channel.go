package hal

// SimChannel simulates a DMA channel feeding a MemFramebuffer.
//
// A started transfer completes after Latency calls to Status; the pixel copy
// happens at that point, so the panel stays untouched while the transfer is
// in flight.
type SimChannel struct {
	fb      *MemFramebuffer
	latency int

	src   []uint16
	x, y  int
	w, h  int
	units int

	status    ChannelStatus
	remaining int
	transfers int
}

// NewSimChannel returns a channel writing into fb. Each transfer completes
// after latency Status polls.
func NewSimChannel(fb *MemFramebuffer, latency int) *SimChannel {
	if latency < 0 {
		latency = 0
	}
	return &SimChannel{fb: fb, latency: latency}
}

func (c *SimChannel) SetSource(src []uint16) { c.src = src }

func (c *SimChannel) SetDestination(x, y, w, h int) {
	c.x, c.y, c.w, c.h = x, y, w, h
}

func (c *SimChannel) SetCount(units int) { c.units = units }

func (c *SimChannel) Start() {
	c.status = ChannelEnable
	if !c.valid() {
		c.status |= ChannelAddressError
		return
	}
	c.remaining = c.latency
}

func (c *SimChannel) valid() bool {
	if c.fb == nil || c.units <= 0 || c.w <= 0 || c.h <= 0 {
		return false
	}
	if c.x < 0 || c.y < 0 || c.x+c.w > c.fb.width || c.y+c.h > c.fb.height {
		return false
	}
	n := c.units * TransferUnitBytes / 2
	return n <= len(c.src) && n <= c.w*c.h
}

func (c *SimChannel) Status() ChannelStatus {
	if c.status&ChannelEnable == 0 || c.status&(ChannelTransferEnd|ChannelAddressError) != 0 {
		return c.status
	}
	if c.remaining > 0 {
		c.remaining--
		return c.status
	}
	n := c.units * TransferUnitBytes / 2
	c.fb.writeWindow(c.x, c.y, c.w, c.src[:n])
	c.transfers++
	c.status |= ChannelTransferEnd
	return c.status
}

func (c *SimChannel) Clear() {
	c.status = 0
	c.remaining = 0
}

// Transfers reports how many transfers completed.
func (c *SimChannel) Transfers() int { return c.transfers }
