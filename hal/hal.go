package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNotImplemented is returned by features a platform lacks.
var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian in memory.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Default panel geometry (Casio Prizm class LCD).
const (
	PanelWidth  = 384
	PanelHeight = 216
)

// Framebuffer is the physical panel surface plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the panel framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// TransferUnitBytes is the block granularity of a channel transfer.
const TransferUnitBytes = 32

// ChannelStatus mirrors the channel control register flags.
type ChannelStatus uint8

const (
	ChannelEnable ChannelStatus = 1 << iota
	ChannelTransferEnd
	ChannelAddressError
)

// TransferChannel is a register-level DMA channel that copies RGB565 pixels
// from memory into a window of the panel.
//
// At most one transfer is in flight. Completion is observed by polling Status.
type TransferChannel interface {
	// SetSource loads the source address register.
	SetSource(src []uint16)
	// SetDestination selects the panel window the transfer fills row-major.
	SetDestination(x, y, w, h int)
	// SetCount loads the transfer count register, in TransferUnitBytes units.
	SetCount(units int)
	// Start sets the enable flag.
	Start()
	Status() ChannelStatus
	// Clear resets the enable and status flags.
	Clear()
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Channel() TransferChannel
}
