package gfx

// Sprite is a row-major image of palette indices.
type Sprite struct {
	Width  int
	Height int
	Data   []byte
}

// NewSprite allocates a zeroed w x h sprite.
func NewSprite(w, h int) *Sprite {
	return &Sprite{Width: w, Height: h, Data: make([]byte, w*h)}
}

// Sprite draws s clipped and opaque.
func (c *Context) Sprite(s *Sprite, x, y int) { c.renderSprite(s, x, y, true, false) }

// SpriteNoClip draws s opaque without clipping.
func (c *Context) SpriteNoClip(s *Sprite, x, y int) { c.renderSprite(s, x, y, false, false) }

// TransparentSprite draws s clipped, skipping the transparent index.
func (c *Context) TransparentSprite(s *Sprite, x, y int) { c.renderSprite(s, x, y, true, true) }

// TransparentSpriteNoClip draws s without clipping, skipping the transparent index.
func (c *Context) TransparentSpriteNoClip(s *Sprite, x, y int) {
	c.renderSprite(s, x, y, false, true)
}

func (c *Context) renderSprite(s *Sprite, x, y int, clip, transparent bool) {
	defer c.guard()()
	if s == nil {
		return
	}

	x0, y0, x1, y1 := 0, 0, s.Width, s.Height
	if clip {
		x0, y0, x1, y1 = c.Clip.ClipSprite(x, y, s.Width, s.Height)
	}

	pix := c.fb.Pix
	ti := c.transparentIndex
	for sy := y0; sy < y1; sy++ {
		src := s.Data[sy*s.Width : (sy+1)*s.Width]
		line := c.fb.offset(x, y+sy)
		for sx := x0; sx < x1; sx++ {
			idx := src[sx]
			if transparent && idx == ti {
				continue
			}
			pix[line+sx] = c.Palette[idx]
		}
	}
}

// ScaledTransparentSpriteNoClip draws every non-transparent pixel of s as a
// widthScale x heightScale block. The whole sprite is drawn; nothing is
// clipped.
func (c *Context) ScaledTransparentSpriteNoClip(s *Sprite, x, y int, widthScale, heightScale uint8) {
	c.renderScaled(s, x, y, int(widthScale), int(heightScale), true)
}

// ScaledSpriteNoClip is the opaque form of ScaledTransparentSpriteNoClip.
func (c *Context) ScaledSpriteNoClip(s *Sprite, x, y int, widthScale, heightScale uint8) {
	c.renderScaled(s, x, y, int(widthScale), int(heightScale), false)
}

func (c *Context) renderScaled(s *Sprite, x, y, ws, hs int, transparent bool) {
	defer c.guard()()
	if s == nil {
		return
	}

	pix := c.fb.Pix
	stride := c.fb.Width
	ti := c.transparentIndex
	line := c.fb.offset(x, y)
	for sy := 0; sy < s.Height; sy++ {
		src := s.Data[sy*s.Width : (sy+1)*s.Width]
		block := line
		for _, idx := range src {
			if !transparent || idx != ti {
				col := c.Palette[idx]
				o := block
				for yy := 0; yy < hs; yy++ {
					for xx := 0; xx < ws; xx++ {
						pix[o+xx] = col
					}
					o += stride
				}
			}
			block += ws
		}
		line += stride * hs
	}
}

// FlipSpriteY mirrors in about its vertical axis into out and returns out.
// out must hold at least Width*Height bytes and must not alias in.
func FlipSpriteY(in, out *Sprite) *Sprite {
	w := in.Width
	for y := 0; y < in.Height; y++ {
		src := in.Data[y*w : (y+1)*w]
		dst := out.Data[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			dst[w-1-x] = src[x]
		}
	}
	out.Width = in.Width
	out.Height = in.Height
	return out
}

// FlipSpriteX mirrors in about its horizontal axis into out and returns out.
func FlipSpriteX(in, out *Sprite) *Sprite {
	w := in.Width
	for y := 0; y < in.Height; y++ {
		dy := in.Height - 1 - y
		copy(out.Data[dy*w:(dy+1)*w], in.Data[y*w:(y+1)*w])
	}
	out.Width = in.Width
	out.Height = in.Height
	return out
}
