package hal

import "sync"

// MemFramebuffer is an in-memory RGB565 panel used by the host simulation.
type MemFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents int
}

func NewMemFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

// Presents reports how many times Present was called.
func (f *MemFramebuffer) Presents() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// PixelAt returns the native pixel at (x, y). Out of range reads return 0.
func (f *MemFramebuffer) PixelAt(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *MemFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// writeWindow copies src row-major into the window at (x, y) of width w.
func (f *MemFramebuffer) writeWindow(x, y, w int, src []uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range src {
		off := (y+i/w)*f.stride + (x+i%w)*2
		f.buf[off] = byte(p)
		f.buf[off+1] = byte(p >> 8)
	}
}
