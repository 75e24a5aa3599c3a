package gfx

// FrameBuffer is the off-screen RGB565 surface.
//
// Pix holds one guard row above the visible rows and one below. Drawing
// offsets are computed without bounds checks, so a routine that strays one
// row outside the surface lands in a guard row instead of in a neighbouring
// allocation.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint16
}

// NewFrameBuffer allocates a w x h surface. It is never resized.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, w*(h+2)),
	}
}

// offset is the index into Pix of visible pixel (x, y).
func (f *FrameBuffer) offset(x, y int) int {
	return f.Width + y*f.Width + x
}

// At returns the visible pixel at (x, y).
func (f *FrameBuffer) At(x, y int) uint16 { return f.Pix[f.offset(x, y)] }

// Set writes the visible pixel at (x, y).
func (f *FrameBuffer) Set(x, y int, c uint16) { f.Pix[f.offset(x, y)] = c }

// Row returns visible row y.
func (f *FrameBuffer) Row(y int) []uint16 {
	o := f.offset(0, y)
	return f.Pix[o : o+f.Width]
}

// Rows returns visible rows [y, y+n) as one contiguous slice.
func (f *FrameBuffer) Rows(y, n int) []uint16 {
	o := f.offset(0, y)
	return f.Pix[o : o+n*f.Width]
}

// Visible returns every visible row.
func (f *FrameBuffer) Visible() []uint16 { return f.Rows(0, f.Height) }

func (f *FrameBuffer) topGuard() []uint16 { return f.Pix[:f.Width] }

func (f *FrameBuffer) bottomGuard() []uint16 {
	o := f.offset(0, f.Height)
	return f.Pix[o : o+f.Width]
}

// Fill sets every visible pixel to c.
func (f *FrameBuffer) Fill(c uint16) {
	v := f.Visible()
	for i := range v {
		v[i] = c
	}
}
