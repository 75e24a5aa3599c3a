package gfx

// RLETSprite is a run-length encoded sprite with transparency.
//
// Each row is a sequence of runs that alternate between "skip n transparent
// pixels" and "emit n literal indices", starting with a skip run that may be
// zero. A row ends once its runs add up to Width. There is no row index, so
// rows can only be decoded in order from the start. The data is trusted:
// runs that do not add up to Width corrupt every following row.
type RLETSprite struct {
	Width  int
	Height int
	Data   []byte
}

// RLETSprite draws s clipped.
func (c *Context) RLETSprite(s *RLETSprite, x, y int) { c.renderRLET(s, x, y, true) }

// RLETSpriteNoClip draws s without clipping.
func (c *Context) RLETSpriteNoClip(s *RLETSprite, x, y int) { c.renderRLET(s, x, y, false) }

func (c *Context) renderRLET(s *RLETSprite, x, y int, clip bool) {
	defer c.guard()()
	if s == nil {
		return
	}

	x0, y0, x1, y1 := 0, 0, s.Width, s.Height
	if clip {
		x0, y0, x1, y1 = c.Clip.ClipSprite(x, y, s.Width, s.Height)
		if x1 <= x0 || y1 <= y0 {
			return
		}
	}

	data := s.Data
	i := 0
	for row := 0; row < y0; row++ {
		i = skipRLERow(data, i, s.Width)
	}

	pix := c.fb.Pix
	for row := y0; row < y1; row++ {
		line := c.fb.offset(x, y+row)
		col := 0
		for {
			col += int(data[i])
			i++
			if col >= s.Width {
				break
			}
			n := int(data[i])
			i++
			for k := 0; k < n; k++ {
				if col >= x0 && col < x1 {
					pix[line+col] = c.Palette[data[i]]
				}
				col++
				i++
			}
			if col >= s.Width {
				break
			}
		}
	}
}

// skipRLERow walks one encoded row starting at i and returns the index of the
// next row.
func skipRLERow(data []byte, i, width int) int {
	col := 0
	for {
		col += int(data[i])
		i++
		if col >= width {
			return i
		}
		n := int(data[i])
		i += 1 + n
		col += n
		if col >= width {
			return i
		}
	}
}

// ConvertToRLETSprite encodes s, treating transparentIndex as transparent.
// s.Width must not exceed 255.
func ConvertToRLETSprite(s *Sprite, transparentIndex uint8) *RLETSprite {
	out := &RLETSprite{Width: s.Width, Height: s.Height}
	w := s.Width
	for y := 0; y < s.Height; y++ {
		row := s.Data[y*w : (y+1)*w]
		col := 0
		for {
			start := col
			for col < w && row[col] == transparentIndex {
				col++
			}
			out.Data = append(out.Data, byte(col-start))
			if col >= w {
				break
			}
			start = col
			for col < w && row[col] != transparentIndex {
				col++
			}
			out.Data = append(out.Data, byte(col-start))
			out.Data = append(out.Data, row[start:col]...)
			if col >= w {
				break
			}
		}
	}
	return out
}

// ConvertFromRLETSprite decodes s into a raw sprite whose skipped pixels are
// set to transparentIndex.
func ConvertFromRLETSprite(s *RLETSprite, transparentIndex uint8) *Sprite {
	out := NewSprite(s.Width, s.Height)
	for i := range out.Data {
		out.Data[i] = transparentIndex
	}
	data := s.Data
	i := 0
	for y := 0; y < s.Height; y++ {
		row := out.Data[y*s.Width : (y+1)*s.Width]
		col := 0
		for {
			col += int(data[i])
			i++
			if col >= s.Width {
				break
			}
			n := int(data[i])
			i++
			copy(row[col:col+n], data[i:i+n])
			col += n
			i += n
			if col >= s.Width {
				break
			}
		}
	}
	return out
}
