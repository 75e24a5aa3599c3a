package hal

import "image"

// Snapshot converts the panel into an RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}

	src := make([]byte, len(fb.Buffer()))
	if m, ok := fb.(*MemFramebuffer); ok {
		m.snapshotRGB565(src)
	} else {
		copy(src, fb.Buffer())
	}
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*stride + x*2
			if off+1 >= len(src) {
				continue
			}
			r, g, b := RGB888(uint16(src[off]) | uint16(src[off+1])<<8)
			j := img.PixOffset(x, y)
			img.Pix[j+0] = r
			img.Pix[j+1] = g
			img.Pix[j+2] = b
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}
