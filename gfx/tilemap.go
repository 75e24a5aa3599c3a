package gfx

// Tilemap is a grid of tile indices drawn through a small set of tile sprites.
type Tilemap struct {
	// Map holds Width*Height tile indices, row-major.
	Map   []byte
	Tiles []*Sprite

	TileWidth  int
	TileHeight int

	// Width and Height are the grid size in tiles.
	Width  int
	Height int

	// DrawWidth and DrawHeight are the viewport size in tiles.
	DrawWidth  int
	DrawHeight int

	// XLoc and YLoc place the viewport on screen.
	XLoc int
	YLoc int

	// FillIndex paints viewport rows that lie below the last grid row.
	FillIndex uint8
}

// Tilemap draws the viewport of tm scrolled by (xOffset, yOffset) pixels.
// Tiles are clipped and opaque. Viewport rows below the grid are filled with
// FillIndex; columns right of the grid are left untouched.
func (c *Context) Tilemap(tm *Tilemap, xOffset, yOffset int) {
	c.renderTilemap(tm, xOffset, yOffset, false)
}

// TransparentTilemap is Tilemap with transparent tiles.
func (c *Context) TransparentTilemap(tm *Tilemap, xOffset, yOffset int) {
	c.renderTilemap(tm, xOffset, yOffset, true)
}

func (c *Context) renderTilemap(tm *Tilemap, xOffset, yOffset int, transparent bool) {
	defer c.guard()()

	tw, th := tm.TileWidth, tm.TileHeight
	baseX, baseY := tm.XLoc, tm.YLoc
	tileX := xOffset / tw
	tileY := yOffset / th

	cols := tm.DrawWidth
	rows := tm.DrawHeight
	if m := xOffset % tw; m != 0 {
		baseX -= m
		cols++
	}
	if m := yOffset % th; m != 0 {
		baseY -= m
		rows++
	}

	if avail := max(tm.Height-tileY, 0); rows > avail {
		c.fillRect(baseX, baseY+avail*th, cols*tw, (rows-avail)*th, c.Palette.Resolve(tm.FillIndex))
		rows = avail
	}
	cols = min(cols, max(tm.Width-tileX, 0))

	y := baseY
	for r := 0; r < rows; r++ {
		x := baseX
		cell := (tileY + r) * tm.Width
		for col := 0; col < cols; col++ {
			tile := tm.Tiles[tm.Map[cell+tileX+col]]
			c.renderSprite(tile, x, y, true, transparent)
			x += tw
		}
		y += th
	}
}

// TilePtr returns the map cell under pixel offset (xOffset, yOffset).
func TilePtr(tm *Tilemap, xOffset, yOffset int) *uint8 {
	return &tm.Map[xOffset/tm.TileWidth+(yOffset/tm.TileHeight)*tm.Width]
}

// TilePtrMapped returns the map cell at grid position (col, row).
func TilePtrMapped(tm *Tilemap, col, row int) *uint8 {
	return &tm.Map[col+row*tm.Width]
}
