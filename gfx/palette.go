package gfx

// PaletteTable maps palette indices to native RGB565 colors.
type PaletteTable [256]uint16

// SetColors imports packed little-endian 1-5-5-5 colors starting at
// startIndex, one entry per two bytes of buf[:byteCount]. The top bit of each
// source color carries no information and is dropped.
func (p *PaletteTable) SetColors(buf []byte, byteCount int, startIndex int) {
	n := byteCount / 2
	for i := 0; i < n; i++ {
		c := uint16(buf[i*2]) | uint16(buf[i*2+1])<<8
		p[startIndex+i] = Convert1555(c)
	}
}

// Convert1555 converts a 1-5-5-5 color to RGB565. The 5-bit green field lands
// in the top five bits of the six-bit green field.
func Convert1555(c uint16) uint16 {
	return (c&0x7C00)<<1 | (c&0x03E0)<<1 | c&0x001F
}

// Resolve returns the native color for index.
func (p *PaletteTable) Resolve(index uint8) uint16 { return p[index] }

// Set writes a native color directly.
func (p *PaletteTable) Set(index uint8, c uint16) { p[index] = c }

// Colors returns a copy of the table.
func (p *PaletteTable) Colors() [256]uint16 { return *p }
