package hal

import (
	"fmt"
	"os"
	"sync"
)

// Options configures the host simulation.
type Options struct {
	PanelWidth  int
	PanelHeight int
	// ChannelLatency is the number of status polls a channel transfer takes.
	ChannelLatency int
}

func (o Options) withDefaults() Options {
	if o.PanelWidth <= 0 {
		o.PanelWidth = PanelWidth
	}
	if o.PanelHeight <= 0 {
		o.PanelHeight = PanelHeight
	}
	if o.ChannelLatency < 0 {
		o.ChannelLatency = 0
	}
	return o
}

type hostHAL struct {
	logger *hostLogger
	fb     *MemFramebuffer
	ch     *SimChannel
}

// New returns a host HAL implementation with the default panel.
func New() HAL {
	return NewWithOptions(Options{ChannelLatency: 4})
}

// NewWithOptions returns a host HAL implementation.
func NewWithOptions(opts Options) HAL {
	opts = opts.withDefaults()
	fb := NewMemFramebuffer(opts.PanelWidth, opts.PanelHeight)
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     fb,
		ch:     NewSimChannel(fb, opts.ChannelLatency),
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) Display() Display         { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Channel() TransferChannel { return h.ch }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
